package orders

import (
	"inventory-dashboard/core/clock"
	"inventory-dashboard/core/middleware/auth"
	"inventory-dashboard/core/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the orders service into the application.
type Feature struct {
	handler *Handler
	gate    *auth.Gate
}

// NewFeature creates the orders feature.
func NewFeature(st store.Store, clk clock.Clock, logger *zap.Logger, cfg store.Config, gate *auth.Gate) *Feature {
	service := NewService(st, clk, logger, cfg)
	return &Feature{handler: NewHandler(service), gate: gate}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "orders" }

// IsEnabled reports whether the feature is active.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.gate)
	return nil
}
