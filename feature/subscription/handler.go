package subscription

import (
	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for subscription sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the subscription routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/subscriptions")
	group.Post("/forward", h.HandleForward)
	group.Post("/reverse", h.HandleReverse)
}

// HandleForward syncs a DataZone subscription request to Collibra.
// @Summary Forward Subscription Request
// @Description Starts the Collibra subscription workflow for a pending DataZone request. Accepts the EventBridge envelope and reads detail.data.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param event body map[string]interface{} true "EventBridge Subscription Request Created event"
// @Success 200 {object} ForwardResult
// @Failure 400 {object} map[string]string "Invalid event"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /subscriptions/forward [post]
func (h *Handler) HandleForward(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ev, err := ParseEvent(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, run, err := h.service.Forward(c.Context(), ev)
	c.Set("X-Run-Id", run.ID)
	if err != nil {
		l.Error("Subscription forward failed", zap.String("run_id", run.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleReverse syncs approved Collibra requests to DataZone.
// @Summary Reverse Subscription Sync
// @Description Grants or rejects every Collibra subscription request in status Approved.
// @Tags subscriptions
// @Produce json
// @Success 200 {object} ReverseReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /subscriptions/reverse [post]
func (h *Handler) HandleReverse(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, run, err := h.service.Reverse(c.Context())
	c.Set("X-Run-Id", run.ID)
	if err != nil {
		l.Error("Subscription reverse failed", zap.String("run_id", run.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
