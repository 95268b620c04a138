package publish

import (
	"asset-bridge/core/logger"
	"asset-bridge/core/resources"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for publishing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Request is the body accepted by POST /publish.
type Request struct {
	Category string   `json:"category"`
	Names    []string `json:"names"`
}

// RegisterRoutes registers the publish routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/publish", h.HandlePublish)
}

// HandlePublish uploads resolved assets to the bucket.
// @Summary Publish Assets
// @Description Resolves the named assets and uploads them to object storage.
// @Tags publish
// @Accept json
// @Produce json
// @Success 200 {object} Report "Publish Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]interface{} "Partial Failure"
// @Router /publish [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	category, err := resources.ParseCategory(req.Category)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(req.Names) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "names must not be empty"})
	}

	l.Info("Publishing assets", zap.Stringer("category", category), zap.Int("count", len(req.Names)))

	report, err := h.service.Publish(c.Context(), category, req.Names)
	if report == nil {
		l.Error("Publish failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	}

	return c.JSON(report)
}
