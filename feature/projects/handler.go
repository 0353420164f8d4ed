package projects

import (
	"catalog-sync/core/logger"
	"catalog-sync/core/payload"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for project sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the project sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/sync/projects", h.HandleSyncProjects)
}

// HandleSyncProjects syncs one page of DataZone projects to Collibra.
// @Summary Sync Projects
// @Description Mirrors a page of the admin's DataZone projects, their listings and SSO members into Collibra, starting at next_project_token.
// @Tags projects
// @Accept json
// @Produce json
// @Param payload body map[string]interface{} false "Invocation payload, e.g. {\"next_project_token\": null}"
// @Success 200 {object} map[string]interface{} "Payload with the next page token"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/projects [post]
func (h *Handler) HandleSyncProjects(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body := c.Body()
	token, err := payload.Cursor(body, payload.ProjectToken)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	next, run, err := h.service.Sync(c.Context(), token)
	c.Set("X-Run-Id", run.ID)
	if err != nil {
		l.Error("Project sync failed", zap.String("run_id", run.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := payload.WithCursor(body, payload.ProjectToken, next)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
