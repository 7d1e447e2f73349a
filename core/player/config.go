package player

// Config holds configuration for the audio player.
type Config struct {
	// Command overrides the built-in player candidates when set.
	Command string `mapstructure:"command" default:""`
	// Args are passed to Command before the file path.
	Args []string `mapstructure:"args" default:""`
}
