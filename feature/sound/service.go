package sound

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// MinButton is the lowest button slot.
	MinButton = 1
	// MaxButton is the highest button slot.
	MaxButton = 8
)

// Player starts playback of a file without waiting for it to end.
type Player interface {
	Play(path string) error
}

// Playback is the result of a successful play request.
type Playback struct {
	Status string `json:"status"`
	Button int    `json:"button"`
	File   string `json:"file"`
}

// Service is the sound dispatcher: it resolves a button slot to its file and
// starts the player. It holds no mutable state.
type Service struct {
	files  map[int]string
	player Player
	logger *zap.Logger
}

// NewService creates a dispatcher over absolute file paths keyed by button.
func NewService(files map[int]string, player Player, logger *zap.Logger) *Service {
	return &Service{files: files, player: player, logger: logger}
}

// ValidButton reports whether n is a button slot.
func ValidButton(n int) bool {
	return n >= MinButton && n <= MaxButton
}

// Path returns the configured file for button, if any.
func (s *Service) Path(button int) (string, bool) {
	p, ok := s.files[button]
	return p, ok && p != ""
}

// Play starts the sound for button. Checks run in order: selector range,
// configuration, file existence (re-checked every call); only then is the
// player started.
func (s *Service) Play(button int) (*Playback, error) {
	if !ValidButton(button) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidButton, button)
	}

	path, ok := s.Path(button)
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrNotConfigured, button)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if err := s.player.Play(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlaybackFailed, err)
	}

	s.logger.Info("Playing sound", zap.Int("button", button), zap.String("file", path))

	return &Playback{
		Status: "playing",
		Button: button,
		File:   filepath.Base(path),
	}, nil
}
