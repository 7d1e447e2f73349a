package process

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrNoCommand is returned when none of the candidate binaries is installed.
var ErrNoCommand = errors.New("no candidate command is installed")

// Command is an executable with its fixed leading arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner starts processes without waiting for them.
type Runner interface {
	Start(name string, args ...string) error
}

// ExecRunner starts real OS processes. Each process is reaped in its own
// goroutine and is otherwise left alone: no timeout, no cancellation.
type ExecRunner struct {
	logger *zap.Logger
}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Start launches name with args. Stdio is attached to the null device.
func (r *ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...) //nolint:gosec // binaries come from fixed candidates or operator config
	if err := cmd.Start(); err != nil {
		return err
	}

	pid := cmd.Process.Pid
	r.logger.Debug("Process started", zap.String("command", name), zap.Int("pid", pid))

	go func() {
		if err := cmd.Wait(); err != nil {
			r.logger.Debug("Process exited with error", zap.String("command", name), zap.Int("pid", pid), zap.Error(err))
			return
		}
		r.logger.Debug("Process exited", zap.String("command", name), zap.Int("pid", pid))
	}()

	return nil
}

// IsNotInstalled reports whether err means the binary could not be found.
func IsNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// StartFirst starts the first installed candidate with target appended to its
// arguments. It falls through to the next candidate only when a binary is
// missing; any other start failure is returned as is.
func StartFirst(r Runner, candidates []Command, target string) (Command, error) {
	var tried []string
	for _, c := range candidates {
		args := append(append([]string{}, c.Args...), target)
		err := r.Start(c.Name, args...)
		if err == nil {
			return c, nil
		}
		if !IsNotInstalled(err) {
			return c, fmt.Errorf("failed to start %s: %w", c.Name, err)
		}
		tried = append(tried, c.Name)
	}
	return Command{}, fmt.Errorf("%w (tried %s)", ErrNoCommand, strings.Join(tried, ", "))
}
