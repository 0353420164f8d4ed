package glossary

import (
	"catalog-sync/core/collibra"
	"catalog-sync/core/datazone"
	"catalog-sync/core/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new glossary feature.
func NewFeature(c collibra.Client, dz datazone.Client, glossary *datazone.GlossaryResolver, tracker *history.Tracker, logger *zap.Logger) *Feature {
	svc := NewService(c, dz, glossary, tracker, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "glossary"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
