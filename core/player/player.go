package player

import (
	"ttrpg-pi/core/process"

	"go.uber.org/zap"
)

// DefaultCandidates are tried in order; mpg123 is the usual choice on a Pi.
var DefaultCandidates = []process.Command{
	{Name: "mpg123", Args: []string{"-q"}},
	{Name: "mpg321", Args: []string{"-q"}},
	{Name: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
}

// Player starts an external MP3 player per file.
type Player struct {
	candidates []process.Command
	runner     process.Runner
	logger     *zap.Logger
}

// New creates a player from configuration.
func New(cfg Config, runner process.Runner, logger *zap.Logger) *Player {
	candidates := DefaultCandidates
	if cfg.Command != "" {
		candidates = []process.Command{{Name: cfg.Command, Args: cfg.Args}}
	}
	return &Player{candidates: candidates, runner: runner, logger: logger}
}

// Play starts playback of path and returns without waiting for it to finish.
// Overlapping calls start overlapping players.
func (p *Player) Play(path string) error {
	used, err := process.StartFirst(p.runner, p.candidates, path)
	if err != nil {
		return err
	}
	p.logger.Debug("Player started", zap.String("file", path), zap.String("command", used.String()))
	return nil
}
