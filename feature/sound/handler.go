package sound

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"ttrpg-pi/core/logger"
	"ttrpg-pi/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sound playback.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the play routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/play")
	group.Get("/:button", h.HandlePlayButton)
	group.Post("/", h.HandlePlayBody)
}

// PlayRequest is the POST /play body.
type PlayRequest struct {
	Button any `json:"button"`
}

// HandlePlayButton plays the sound for the button in the path.
// @Summary Play Sound
// @Description Play the sound effect mapped to a button (1-8).
// @Tags sound
// @Produce json
// @Param button path int true "Button number (1-8)"
// @Success 200 {object} sound.Playback "Playback started"
// @Failure 400 {object} map[string]string "Invalid button number"
// @Failure 404 {object} map[string]string "Audio file not configured or not found"
// @Failure 500 {object} map[string]string "Playback error"
// @Router /play/{button} [get]
func (h *Handler) HandlePlayButton(c *fiber.Ctx) error {
	button, ok := utils.ParseDigits(c.Params("button"))
	if !ok {
		return invalidButton(c)
	}
	return h.play(c, button)
}

// HandlePlayBody plays the sound for the button in the JSON body.
// @Summary Play Sound (JSON)
// @Description Play the sound effect for {"button": n}. Same outcome as GET /play/{n}.
// @Tags sound
// @Accept json
// @Produce json
// @Param request body sound.PlayRequest true "Button to play"
// @Success 200 {object} sound.Playback "Playback started"
// @Failure 400 {object} map[string]string "Invalid request or button number"
// @Failure 404 {object} map[string]string "Audio file not configured or not found"
// @Failure 500 {object} map[string]string "Playback error"
// @Router /play [post]
func (h *Handler) HandlePlayBody(c *fiber.Ctx) error {
	var req PlayRequest
	if err := decodeStrict(c.Body(), &req); err != nil || req.Button == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request",
			"message": `Request body must contain "button" field`,
		})
	}

	button, ok := utils.ToInt(req.Button)
	if !ok {
		return invalidButton(c)
	}
	return h.play(c, button)
}

func (h *Handler) play(c *fiber.Ctx, button int) error {
	l := logger.WithRayID(h.logger, c)

	playback, err := h.service.Play(button)
	if err == nil {
		return c.JSON(playback)
	}

	switch {
	case errors.Is(err, ErrInvalidButton):
		return invalidButton(c)
	case errors.Is(err, ErrNotConfigured):
		l.Warn("Audio file not configured", zap.Int("button", button))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Audio file not configured",
			"message": err.Error(),
		})
	case errors.Is(err, ErrFileNotFound):
		l.Warn("Audio file not found", zap.Int("button", button), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Audio file not found",
			"message": err.Error(),
			"help":    "Add the MP3 files to the audio directory, or run `ttrpg-pi audio sync`.",
		})
	default:
		l.Error("Playback failed", zap.Int("button", button), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Playback error",
			"message": err.Error(),
		})
	}
}

// decodeStrict decodes exactly one JSON value, keeping numbers as
// json.Number so 3 and 3.0 can be told apart.
func decodeStrict(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after the JSON body")
	}
	return nil
}

func invalidButton(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Invalid button number",
		"message": "Button number must be an integer between 1 and 8",
	})
}
