package buttons

// Config holds configuration for the button listener process.
type Config struct {
	// APIURL is the play endpoint; empty means http://localhost:<port>/play.
	APIURL string `mapstructure:"api_url" default:""`
	// Pins maps button numbers ("1".."8") to BCM pin numbers.
	Pins map[string]int `mapstructure:"pins"`
	// DebounceMs is the minimum time between two presses of the same button.
	DebounceMs int `mapstructure:"debounce_ms" default:"100"`
	// TimeoutSeconds bounds each request to the API.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"2"`
}

// DefaultPins is the BCM wiring of the reference build.
func DefaultPins() map[string]int {
	return map[string]int{
		"1": 2,
		"2": 3,
		"3": 4,
		"4": 17,
		"5": 27,
		"6": 22,
		"7": 10,
		"8": 9,
	}
}
