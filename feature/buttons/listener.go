package buttons

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
)

// ErrNoButtons is returned when not a single configured pin could be opened.
var ErrNoButtons = errors.New("no buttons were initialised")

// pollInterval bounds how long a watcher blocks in WaitForEdge before it
// re-checks its context.
const pollInterval = 250 * time.Millisecond

// Trigger is called once per accepted press.
type Trigger interface {
	Trigger(button int) error
}

// Opener opens a BCM pin as a button input.
type Opener func(bcm int) (gpio.PinIn, error)

// Listener watches button pins and forwards presses to a Trigger.
type Listener struct {
	pins     map[int]gpio.PinIn
	trigger  Trigger
	debounce time.Duration
	poll     time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// OpenPins opens every configured pin. Entries with a bad button number or a
// pin that fails to open are logged and skipped.
func OpenPins(cfg map[string]int, open Opener, logger *zap.Logger) (map[int]gpio.PinIn, error) {
	pins := make(map[int]gpio.PinIn, len(cfg))
	for key, bcm := range cfg {
		button, err := strconv.Atoi(key)
		if err != nil || button < 1 || button > 8 {
			logger.Warn("Ignoring pin mapping with invalid button number", zap.String("button", key), zap.Int("gpio", bcm))
			continue
		}
		p, err := open(bcm)
		if err != nil {
			logger.Error("Failed to initialise button", zap.Int("button", button), zap.Int("gpio", bcm), zap.Error(err))
			continue
		}
		logger.Info("Button initialised", zap.Int("button", button), zap.Int("gpio", bcm))
		pins[button] = p
	}
	if len(pins) == 0 {
		return nil, ErrNoButtons
	}
	return pins, nil
}

// NewListener creates a listener over already opened pins.
func NewListener(pins map[int]gpio.PinIn, trigger Trigger, cfg Config, logger *zap.Logger) *Listener {
	return &Listener{
		pins:     pins,
		trigger:  trigger,
		debounce: time.Duration(cfg.DebounceMs) * time.Millisecond,
		poll:     pollInterval,
		now:      time.Now,
		logger:   logger,
	}
}

// Buttons returns the watched button numbers in ascending order.
func (l *Listener) Buttons() []int {
	out := make([]int, 0, len(l.pins))
	for b := range l.pins {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// Run watches every pin until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for button, p := range l.pins {
		wg.Add(1)
		go func(button int, p gpio.PinIn) {
			defer wg.Done()
			l.watch(ctx, button, p)
		}(button, p)
	}
	wg.Wait()
	return nil
}

func (l *Listener) watch(ctx context.Context, button int, p gpio.PinIn) {
	var last time.Time
	for ctx.Err() == nil {
		if !p.WaitForEdge(l.poll) {
			continue
		}
		// Pulled up: a press reads low, a release bounce reads high
		if p.Read() != gpio.Low {
			continue
		}
		now := l.now()
		if !last.IsZero() && now.Sub(last) < l.debounce {
			continue
		}
		last = now
		l.press(button)
	}
}

// press forwards one press. Failures are logged and dropped; the next press
// is simply tried again.
func (l *Listener) press(button int) {
	if err := l.trigger.Trigger(button); err != nil {
		l.logger.Warn("Button pressed - API call failed", zap.Int("button", button), zap.Error(err))
		return
	}
	l.logger.Info("Button pressed - Playing sound", zap.Int("button", button))
}
