package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-dashboard/core/config"
	"inventory-dashboard/core/loader"
	"inventory-dashboard/core/logger"
	"inventory-dashboard/core/middleware/auth"
	"inventory-dashboard/core/middleware/rayid"

	"inventory-dashboard/core/clock"
	"inventory-dashboard/feature/inventory"
	"inventory-dashboard/feature/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dashboard server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Store
		st, err := buildStore(context.Background(), cfg.Store)
		if err != nil {
			logg.Fatal("Failed to create store", zap.Error(err))
		}
		logg.Info("Store ready", zap.String("backend", cfg.Store.Backend))

		if !cfg.Server.HasEditorPin() {
			logg.Warn("No editor PIN configured, dashboard is read-only")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Editor gate (PIN unlock)
		gate := auth.New(auth.Config{
			Pin:        cfg.Server.EditorPin,
			SessionTTL: time.Duration(cfg.Server.SessionTTLMinutes) * time.Minute,
		})
		gate.RegisterRoutes(app)

		// 5. Load Features
		clk := clock.NewSystem()
		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(st, clk, logg, cfg.Store, gate))
		mgr.Register(orders.NewFeature(st, clk, logg, cfg.Store, gate))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
