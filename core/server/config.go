package server

// Config holds configuration for the HTTP server.
// The listen port lives at the top level of the config document.
type Config struct {
	// Host is the interface to bind. 0.0.0.0 lets buttons on other devices reach the API.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}
