package integrity

import (
	"asset-bridge/core/logger"

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
	group.Get("/", h.HandleConfiguredCheck)
	group.Post("/", h.HandleManifestCheck)
}

// HandleConfiguredCheck checks the configured manifest.
// @Summary Check Configured Manifest
// @Description Resolves every asset listed in the configured manifest.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Integrity Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleConfiguredCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting integrity check")

	report, err := h.service.CheckConfigured(c.Context())
	if err != nil {
		l.Error("Integrity check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Integrity check completed",
		zap.Int("total", report.Total),
		zap.Int("ok", report.OK))

	return c.JSON(report)
}

// HandleManifestCheck checks a manifest posted in the request body.
// @Summary Check Manifest
// @Description Resolves every asset listed in the posted manifest.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} Report "Integrity Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /integrity [post]
func (h *Handler) HandleManifestCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var m Manifest
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.Check(c.Context(), &m)
	if err != nil {
		l.Error("Integrity check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
