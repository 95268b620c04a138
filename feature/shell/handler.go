package shell

import (
	"errors"
	"net/url"

	"asset-bridge/core/logger"
	"asset-bridge/core/resources"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the shell commands.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GreetRequest is the body accepted by POST /greet.
type GreetRequest struct {
	Name string `json:"name"`
}

// RegisterRoutes registers the command routes.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Get("/greet", h.HandleGreet)
	router.Post("/greet", h.HandleGreet)
	router.Get("/audio/*", h.HandleLoadAudio)
	router.Get("/models/*", h.HandleLoadModel)
}

// HandleGreet returns a greeting.
// @Summary Greet
// @Description Formats a greeting for the given name.
// @Tags shell
// @Produce json
// @Param name query string false "Name to greet"
// @Success 200 {object} map[string]string "Greeting"
// @Router /commands/greet [get]
func (h *Handler) HandleGreet(c *fiber.Ctx) error {
	name := c.Query("name")
	if c.Method() == fiber.MethodPost {
		var req GreetRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		name = req.Name
	}
	return c.JSON(fiber.Map{"message": h.service.Greet(name)})
}

// HandleLoadAudio streams back an audio asset.
// @Summary Load Audio Asset
// @Description Resolves an audio file from the development tree or packaged resources.
// @Tags shell
// @Produce octet-stream
// @Param filename path string true "Audio file name"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Not Found"
// @Router /commands/audio/{filename} [get]
func (h *Handler) HandleLoadAudio(c *fiber.Ctx) error {
	return h.sendAsset(c, "load_audio_asset", h.service.LoadAudioAsset)
}

// HandleLoadModel returns the FBX scene of a model archive.
// @Summary Load Model FBX From Zip
// @Description Resolves a model zip and returns its first .fbx entry.
// @Tags shell
// @Produce octet-stream
// @Param filename path string true "Model zip file name"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 422 {object} map[string]string "Unusable Archive"
// @Router /commands/models/{filename} [get]
func (h *Handler) HandleLoadModel(c *fiber.Ctx) error {
	return h.sendAsset(c, "load_model_fbx_from_zip", h.service.LoadModelFBXFromZip)
}

func (h *Handler) sendAsset(c *fiber.Ctx, command string, load func(string) ([]byte, error)) error {
	l := logger.WithRayID(h.service.logger, c).With(zap.String("command", command))

	name, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	data, err := load(name)
	if err != nil {
		status := StatusFor(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Command failed", zap.String("name", name), zap.Error(err))
		} else {
			l.Warn("Command rejected", zap.String("name", name), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	l.Debug("Asset served", zap.String("name", name), zap.Int("bytes", len(data)))
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

// StatusFor maps a resolution error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, resources.ErrInvalidName), errors.Is(err, resources.ErrUnknownCategory):
		return fiber.StatusBadRequest
	case errors.Is(err, resources.ErrNotFound):
		return fiber.StatusNotFound
	case resources.IsArchiveError(err):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
