package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"asset-bridge/core/loader"
	"asset-bridge/core/logger"
	"asset-bridge/core/middleware/auth"
	"asset-bridge/core/middleware/rayid"
	"asset-bridge/core/storage"
	"asset-bridge/feature/integrity"
	"asset-bridge/feature/publish"
	"asset-bridge/feature/shell"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the command server",
	Long:  `Starts the HTTP server the desktop shell invokes commands on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, resolver, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// Storage is optional: without it the publish feature stays disabled.
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Storage client unavailable, publishing disabled", zap.Error(err))
			store = nil
		}

		mgr := loader.NewManager(logg)
		mgr.Register(shell.NewFeature(resolver, logg, cfg.Server.RoutePrefix()))
		mgr.Register(integrity.NewFeature(resolver, cfg.Resources.Manifest, cfg.Storage.Workers, logg))
		mgr.Register(publish.NewFeature(resolver, store, cfg.Storage, logg))

		// RayID first so everything after it is traceable
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server",
				zap.String("address", cfg.Server.Address()),
				zap.Bool("dev_mode", resolver.DevMode()),
				zap.String("base_dir", resolver.BaseDir()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
