package shell

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	prefix  string
}

// NewFeature creates the shell command feature mounted under prefix.
func NewFeature(resolver Resolver, logger *zap.Logger, prefix string) *Feature {
	svc := NewService(resolver, logger)
	return &Feature{service: svc, handler: NewHandler(svc), prefix: prefix}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "shell"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	router := app
	if f.prefix != "" {
		router = app.Group(f.prefix)
	}
	f.handler.RegisterRoutes(router)
	return nil
}
