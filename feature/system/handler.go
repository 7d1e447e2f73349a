package system

import (
	"github.com/gofiber/fiber/v2"
)

// Version is the API version reported by the index route.
const Version = "1.0.0"

// Info is the body of GET /.
type Info struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

// Handler serves the static and introspection routes.
type Handler struct {
	name     string
	document map[string]any
}

// NewHandler creates a handler echoing document on GET /config.
func NewHandler(name string, document map[string]any) *Handler {
	if document == nil {
		document = map[string]any{}
	}
	return &Handler{name: name, document: document}
}

// RegisterRoutes registers the system routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Get("/health", h.HandleHealth)
	app.Get("/config", h.HandleConfig)
}

// HandleIndex describes the API.
// @Summary API Information
// @Description Lists the available endpoints.
// @Tags system
// @Produce json
// @Success 200 {object} system.Info "API description"
// @Router / [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	return c.JSON(Info{
		Name:        h.name,
		Version:     Version,
		Description: "API for playing sound effects on Raspberry Pi",
		Endpoints: map[string]string{
			"/":                     "This help message",
			"/play/<button_number>": "Play sound effect for button 1-8 (GET)",
			"/play":                 "Play sound effect by button number in JSON body (POST)",
			"/config":               "Get current configuration",
			"/health":               "Health check endpoint",
		},
	})
}

// HandleHealth always reports ok.
// @Summary Health Check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "{status: ok}"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleConfig echoes the loaded config file.
// @Summary Get Configuration
// @Description Returns the configuration document exactly as loaded at startup.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Configuration document"
// @Router /config [get]
func (h *Handler) HandleConfig(c *fiber.Ctx) error {
	return c.JSON(h.document)
}
