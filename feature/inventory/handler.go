package inventory

import (
	"inventory-dashboard/core/logger"
	"inventory-dashboard/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory ledger.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes. Reads are open (manager
// mode); the replace route requires an editor session.
func (h *Handler) RegisterRoutes(app fiber.Router, gate *auth.Gate) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Put("/", gate.RequireEditor(), h.HandleReplace)
}

// HandleList returns the inventory view with KPI and timestamps.
// Query params: q (substring filter on item/code), low (low-stock only).
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.List(c.Context(), c.Query("q"), c.QueryBool("low", false))
	if err != nil {
		l.Error("Inventory list failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

type replaceRequest struct {
	Items []Edit `json:"items"`
}

// HandleReplace merges the edited grid into the ledger and persists it.
func (h *Handler) HandleReplace(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req replaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	inv, err := h.service.Replace(c.Context(), req.Items)
	if err != nil {
		l.Error("Inventory replace failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"items":         inv,
		"lowStockCount": inv.LowStockCount(),
	})
}
