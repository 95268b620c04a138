package cmd

import (
	"fmt"
	"os"

	"asset-bridge/core/config"
	"asset-bridge/core/logger"
	"asset-bridge/core/resources"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configDir   string
	devMode     bool
	projectRoot string
	baseDir     string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "asset-bridge",
	Short: "Native asset backend for the desktop shell",
	Long: `asset-bridge serves audio files and FBX models to the desktop shell.
Assets are resolved from the development tree or the packaged resources
directory and returned as raw bytes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config for readable CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", ".", "directory holding the .env file")
	flags.BoolVar(&devMode, "dev", false, "search the project tree before packaged resources")
	flags.StringVar(&projectRoot, "project-root", "", "project root searched in dev mode")
	flags.StringVar(&baseDir, "base-dir", "", "packaged resources directory (default: next to the executable)")
}

// loadConfig loads configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("dev") {
		cfg.Resources.DevMode = devMode
	}
	if flags.Changed("project-root") {
		cfg.Resources.ProjectRoot = projectRoot
	}
	if flags.Changed("base-dir") {
		cfg.Resources.BaseDir = baseDir
	}
	return cfg, nil
}

// setup loads configuration and builds the logger and resolver every command needs.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, *resources.Resolver, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	resolver, err := resources.NewResolver(cfg.Resources)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	logg.Debug("Resolver ready",
		zap.Bool("dev_mode", resolver.DevMode()),
		zap.String("base_dir", resolver.BaseDir()))

	return cfg, logg, resolver, nil
}
