package cmd

import (
	"encoding/json"
	"fmt"

	"asset-bridge/core/resources"
	"asset-bridge/core/storage"
	"asset-bridge/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish <audio|models> <name>...",
	Short: "Upload resolved assets to object storage",
	Long: `Resolves each asset exactly as the shell would and uploads it to the
configured bucket. Model archives are uploaded as their extracted FBX scene.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := resources.ParseCategory(args[0])
		if err != nil {
			return err
		}

		cfg, logg, resolver, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		logg.Info("Publishing assets",
			zap.Stringer("category", category),
			zap.Int("count", len(args)-1),
			zap.String("bucket", cfg.Storage.Bucket))

		svc := publish.NewService(resolver, client, cfg.Storage, logg)
		report, err := svc.Publish(cmd.Context(), category, args[1:])
		if report != nil {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(report); encErr != nil {
				return encErr
			}
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
