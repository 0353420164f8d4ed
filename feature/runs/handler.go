package runs

import (
	"errors"

	"catalog-sync/core/history"
	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for run history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the run history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/runs")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Get("/:id/report", h.HandleReport)
}

// HandleList lists recent runs.
// @Summary List Runs
// @Description Lists the most recent engine invocations, newest first.
// @Tags runs
// @Produce json
// @Param engine query string false "Engine name (assets, glossary, hierarchy, projects, subscription_forward, subscription_reverse)"
// @Param limit query int false "Maximum number of runs (default 50, max 500)"
// @Success 200 {array} history.Run
// @Failure 503 {object} map[string]string "Run history disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	runs, err := h.service.List(c.Context(), c.Query("engine"), c.QueryInt("limit", 50))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(runs)
}

// HandleGet returns a single run.
// @Summary Get Run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} history.Run
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 503 {object} map[string]string "Run history disabled"
// @Router /runs/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	run, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(run)
}

// HandleReport returns the archived report of a run.
// @Summary Get Run Report
// @Description Returns the report archived in object storage for a run, including the plan of asset syncs.
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Run or report not found"
// @Failure 503 {object} map[string]string "Run history disabled"
// @Router /runs/{id}/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	body, err := h.service.Report(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrHistoryDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, history.ErrNotFound), errors.Is(err, ErrNoReport):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Failed to read run history", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
