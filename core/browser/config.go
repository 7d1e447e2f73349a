package browser

// Config holds configuration for the kiosk browser.
type Config struct {
	// Enabled controls whether `run` opens the browser at all.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Command overrides the built-in browser candidates when set.
	Command string `mapstructure:"command" default:""`
	// Args are passed to Command before the URL.
	Args []string `mapstructure:"args" default:""`
}
