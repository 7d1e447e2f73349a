package browser

import (
	"ttrpg-pi/core/process"

	"go.uber.org/zap"
)

// DefaultCandidates are tried in order; chromium-browser is the Raspberry Pi OS default.
var DefaultCandidates = []process.Command{
	{Name: "chromium-browser", Args: []string{"--kiosk", "--noerrdialogs", "--disable-infobars", "--disable-session-crashed-bubble"}},
	{Name: "google-chrome", Args: []string{"--kiosk", "--noerrdialogs", "--disable-infobars"}},
	{Name: "firefox", Args: []string{"--kiosk"}},
}

// Launcher opens the configured website full screen.
type Launcher struct {
	cfg    Config
	runner process.Runner
	logger *zap.Logger
}

// NewLauncher creates a browser launcher.
func NewLauncher(cfg Config, runner process.Runner, logger *zap.Logger) *Launcher {
	return &Launcher{cfg: cfg, runner: runner, logger: logger}
}

// Candidates returns the commands Launch will try.
func (l *Launcher) Candidates() []process.Command {
	if l.cfg.Command != "" {
		return []process.Command{{Name: l.cfg.Command, Args: l.cfg.Args}}
	}
	return DefaultCandidates
}

// Launch starts the browser on url and returns immediately.
// The browser is never monitored; if it crashes or is closed the API keeps running.
func (l *Launcher) Launch(url string) error {
	used, err := process.StartFirst(l.runner, l.Candidates(), url)
	if err != nil {
		return err
	}
	l.logger.Info("Browser opened", zap.String("url", url), zap.String("command", used.String()))
	return nil
}
