package sound

import "errors"

var (
	// ErrInvalidButton means the selector is outside 1..8.
	ErrInvalidButton = errors.New("button number must be between 1 and 8")
	// ErrNotConfigured means the slot has no audio file in the config.
	ErrNotConfigured = errors.New("no audio file configured for button")
	// ErrFileNotFound means the slot's file does not exist on disk.
	ErrFileNotFound = errors.New("audio file does not exist")
	// ErrPlaybackFailed means the player process could not be started.
	ErrPlaybackFailed = errors.New("failed to start playback")
)
