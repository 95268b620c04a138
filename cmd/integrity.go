package cmd

import (
	"encoding/json"
	"fmt"

	"asset-bridge/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var manifestPath string

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check that every asset in the manifest resolves",
	Long:  `Resolves each asset listed in the manifest (audio and models) and reports missing or unusable ones. Outputs a summary by default or the full report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, logg, resolver, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()

		manifest := cfg.Resources.Manifest
		if manifestPath != "" {
			manifest = manifestPath
		}

		svc := integrity.NewService(resolver, manifest, cfg.Storage.Workers, logg)
		report, err := svc.CheckConfigured(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			for _, a := range report.Assets {
				if a.Status != integrity.StatusOK {
					fmt.Fprintf(out, "%-8s %-7s %s: %s\n", a.Status, a.Category, a.Name, a.Error)
				}
			}
			fmt.Fprintf(out, "total=%d ok=%d missing=%d failed=%d\n", report.Total, report.OK, report.Missing, report.Failed)
		}

		if !report.Healthy() {
			logg.Warn("Integrity check found problems", zap.Int("missing", report.Missing), zap.Int("failed", report.Failed))
			return fmt.Errorf("%d of %d assets unavailable", report.Total-report.OK, report.Total)
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().StringVar(&manifestPath, "manifest", "", "manifest file (default: RESOURCES_MANIFEST)")
	integrityCmd.Flags().Bool("json", false, "print the full report as JSON")
	RootCmd.AddCommand(integrityCmd)
}
