package cmd

import (
	"fmt"
	"os"

	"asset-bridge/feature/shell"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outputPath string

// greetCmd represents the greet command
var greetCmd = &cobra.Command{
	Use:   "greet <name>",
	Short: "Print a greeting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), shell.Greet(args[0]))
	},
}

// audioCmd represents the audio command
var audioCmd = &cobra.Command{
	Use:   "audio <filename>",
	Short: "Resolve an audio asset and write its bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsset(cmd, args[0], (*shell.Service).LoadAudioAsset)
	},
}

// modelCmd represents the model command
var modelCmd = &cobra.Command{
	Use:   "model <zip_filename>",
	Short: "Resolve a model archive and write its first FBX entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsset(cmd, args[0], (*shell.Service).LoadModelFBXFromZip)
	},
}

func runAsset(cmd *cobra.Command, name string, load func(*shell.Service, string) ([]byte, error)) error {
	_, logg, resolver, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logg.Sync()

	data, err := load(shell.NewService(resolver, logg), name)
	if err != nil {
		return err
	}

	if outputPath == "" || outputPath == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	logg.Info("Asset written", zap.String("name", name), zap.String("output", outputPath), zap.Int("bytes", len(data)))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{audioCmd, modelCmd} {
		c.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	}
	RootCmd.AddCommand(greetCmd, audioCmd, modelCmd)
}
