package integrity

import (
	"errors"

	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/:check", h.HandleSingleCheck)
}

// HandleIntegrityCheck runs every readiness check.
// @Summary Run All Integrity Checks
// @Description Probes the report bucket, run history, DataZone glossary and admin profile, and Collibra.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create a missing bucket or glossary"
// @Success 200 {object} Report "All checks passed"
// @Failure 503 {object} Report "At least one check failed"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.CheckAll(c.Context(), c.QueryBool("fix", false))
	if !report.Healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleSingleCheck runs one readiness check.
// @Summary Run One Integrity Check
// @Tags integrity
// @Produce json
// @Param check path string true "storage, history, glossary, admin or collibra"
// @Param fix query boolean false "Create a missing bucket or glossary"
// @Success 200 {object} checks.Result "Check result"
// @Failure 404 {object} map[string]string "Unknown check"
// @Router /integrity/{check} [get]
func (h *Handler) HandleSingleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("check")

	res, err := h.service.Check(c.Context(), name, c.QueryBool("fix", false))
	if errors.Is(err, ErrUnknownCheck) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if !res.Healthy() {
		l.Warn("Integrity check failed", zap.String("check", name), zap.String("detail", res.Detail))
	}
	return c.JSON(res)
}
