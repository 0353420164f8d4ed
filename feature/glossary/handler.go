package glossary

import (
	"catalog-sync/core/logger"
	"catalog-sync/core/payload"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the glossary engines.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the glossary routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync/glossary")
	group.Post("/", h.HandleSyncTerms)
	group.Post("/hierarchy", h.HandlePropagateHierarchy)
}

// HandleSyncTerms syncs one page of business terms.
// @Summary Sync Glossary Terms
// @Description Creates or updates the DataZone glossary terms for the next page of Collibra business terms. The payload is returned with last_seen_glossary_term_id replaced.
// @Tags glossary
// @Accept json
// @Produce json
// @Param payload body map[string]interface{} false "Invocation payload, e.g. {\"last_seen_glossary_term_id\": null}"
// @Success 200 {object} map[string]interface{} "Payload with the next cursor"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/glossary [post]
func (h *Handler) HandleSyncTerms(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body := c.Body()
	cursor, err := payload.Cursor(body, payload.GlossaryTermCursor)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	next, run, err := h.service.SyncTerms(c.Context(), cursor)
	c.Set("X-Run-Id", run.ID)
	if err != nil {
		l.Error("Glossary sync failed", zap.String("run_id", run.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := payload.WithCursor(body, payload.GlossaryTermCursor, next)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}

// HandlePropagateHierarchy replicates the business term hierarchy.
// @Summary Propagate Term Hierarchy
// @Description Writes the isA and classifies relations of every synced glossary term. The payload is echoed back.
// @Tags glossary
// @Accept json
// @Produce json
// @Param payload body map[string]interface{} false "Invocation payload"
// @Success 200 {object} map[string]interface{} "Echoed payload"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/glossary/hierarchy [post]
func (h *Handler) HandlePropagateHierarchy(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body, err := payload.Normalize(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	run, err := h.service.PropagateHierarchy(c.Context())
	c.Set("X-Run-Id", run.ID)
	if err != nil {
		l.Error("Hierarchy propagation failed", zap.String("run_id", run.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
