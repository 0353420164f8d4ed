package assets

import (
	"catalog-sync/core/logger"
	"catalog-sync/core/payload"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for asset metadata sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the asset sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/sync/assets", h.HandleSyncAssets)
}

// HandleSyncAssets runs one time-boxed asset metadata sync.
// @Summary Sync Asset Metadata
// @Description Pushes Collibra table descriptions, PII columns and glossary terms onto the matching DataZone assets, starting after last_seen_asset_id. With dry_run the computed revisions are returned under "plan" and nothing is written.
// @Tags assets
// @Accept json
// @Produce json
// @Param dry_run query bool false "Compute revisions without writing them"
// @Param payload body map[string]interface{} false "Invocation payload, e.g. {\"last_seen_asset_id\": null}"
// @Success 200 {object} map[string]interface{} "Payload with the next cursor"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/assets [post]
func (h *Handler) HandleSyncAssets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.QueryBool("dry_run", false)

	body := c.Body()
	cursor, err := payload.Cursor(body, payload.AssetCursor)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	next, plan, run, err := h.service.Sync(c.Context(), cursor, dryRun)
	c.Set("X-Run-Id", run.ID)
	if err != nil {
		l.Error("Asset sync failed", zap.String("run_id", run.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := payload.WithCursor(body, payload.AssetCursor, next)
	if err == nil && dryRun {
		out, err = sjson.SetBytes(out, "plan", plan)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
