package orders

import (
	"inventory-dashboard/core/logger"
	"inventory-dashboard/core/middleware/auth"
	"inventory-dashboard/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the order ledger.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the order routes. Reads are open (manager
// mode); the completion commit requires an editor session.
func (h *Handler) RegisterRoutes(app fiber.Router, gate *auth.Gate) {
	group := app.Group("/orders")
	group.Get("/", h.HandleList)
	group.Post("/complete", gate.RequireEditor(), h.HandleComplete)
}

// HandleList returns order lines.
// Query params: q (substring filter), completed (true/false, omit for both).
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var completed *bool
	if raw := c.Query("completed"); raw != "" {
		v := utils.ToBool(raw)
		completed = &v
	}

	lines, err := h.service.List(c.Context(), c.Query("q"), completed)
	if err != nil {
		l.Error("Orders list failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"lines": lines})
}

type completeRequest struct {
	Lines []LineEdit `json:"lines"`
}

// HandleComplete commits completion edits: reconciles newly-completed
// lines into the inventory ledger and persists both tables.
func (h *Handler) HandleComplete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req completeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Complete(c.Context(), req.Lines)
	if err != nil {
		l.Error("Completion commit failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	if len(result.Warnings) > 0 {
		l.Warn("Completion commit finished with warnings", zap.Strings("warnings", result.Warnings))
	}
	return c.JSON(result)
}
