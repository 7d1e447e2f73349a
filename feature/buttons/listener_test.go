package buttons

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type fakeTrigger struct {
	mu      sync.Mutex
	presses []int
	err     error
	ch      chan int
}

func newFakeTrigger() *fakeTrigger {
	return &fakeTrigger{ch: make(chan int, 16)}
}

func (f *fakeTrigger) Trigger(button int) error {
	f.mu.Lock()
	f.presses = append(f.presses, button)
	err := f.err
	f.mu.Unlock()
	f.ch <- button
	return err
}

func (f *fakeTrigger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.presses)
}

func (f *fakeTrigger) wait(t *testing.T) int {
	t.Helper()
	select {
	case b := <-f.ch:
		return b
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for trigger")
		return 0
	}
}

func newPin(name string) *gpiotest.Pin {
	return &gpiotest.Pin{N: name, L: gpio.High, EdgesChan: make(chan gpio.Level)}
}

func newTestListener(pins map[int]gpio.PinIn, trig Trigger, debounce int) *Listener {
	l := NewListener(pins, trig, Config{DebounceMs: debounce}, zap.NewNop())
	l.poll = 10 * time.Millisecond
	return l
}

func run(t *testing.T, l *Listener) (context.CancelFunc, <-chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = l.Run(ctx)
		close(done)
	}()
	return cancel, done
}

func stop(t *testing.T, cancel context.CancelFunc, done <-chan struct{}) {
	t.Helper()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after cancel")
	}
}

func TestListener_PressTriggersButton(t *testing.T) {
	p3, p5 := newPin("GPIO4"), newPin("GPIO27")
	trig := newFakeTrigger()
	l := newTestListener(map[int]gpio.PinIn{3: p3, 5: p5}, trig, 100)
	assert.Equal(t, []int{3, 5}, l.Buttons())

	cancel, done := run(t, l)
	defer stop(t, cancel, done)

	p5.EdgesChan <- gpio.Low
	assert.Equal(t, 5, trig.wait(t))

	p3.EdgesChan <- gpio.Low
	assert.Equal(t, 3, trig.wait(t))
}

func TestListener_ReleaseIgnored(t *testing.T) {
	p := newPin("GPIO2")
	trig := newFakeTrigger()
	l := newTestListener(map[int]gpio.PinIn{1: p}, trig, 0)

	cancel, done := run(t, l)
	defer stop(t, cancel, done)

	p.EdgesChan <- gpio.High
	p.EdgesChan <- gpio.Low
	assert.Equal(t, 1, trig.wait(t))
	assert.Equal(t, 1, trig.count())
}

func TestListener_Debounce(t *testing.T) {
	p := newPin("GPIO2")
	trig := newFakeTrigger()
	l := newTestListener(map[int]gpio.PinIn{1: p}, trig, 100)

	// now is only consulted for low edges, so hand out one instant per press
	t0 := time.Unix(1000, 0)
	times := []time.Time{t0, t0.Add(50 * time.Millisecond), t0.Add(150 * time.Millisecond)}
	var mu sync.Mutex
	l.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		next := times[0]
		times = times[1:]
		return next
	}

	cancel, done := run(t, l)
	defer stop(t, cancel, done)

	p.EdgesChan <- gpio.Low // accepted
	p.EdgesChan <- gpio.Low // bounce, 50ms later
	p.EdgesChan <- gpio.Low // accepted, 150ms after first
	trig.wait(t)
	trig.wait(t)

	// the watcher has consumed every edge; nothing else may arrive
	select {
	case b := <-trig.ch:
		t.Fatalf("unexpected extra trigger for button %d", b)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 2, trig.count())
}

func TestListener_TriggerErrorIsSwallowed(t *testing.T) {
	p := newPin("GPIO2")
	trig := newFakeTrigger()
	trig.err = errors.New("connection refused")
	l := newTestListener(map[int]gpio.PinIn{1: p}, trig, 0)

	cancel, done := run(t, l)
	defer stop(t, cancel, done)

	p.EdgesChan <- gpio.Low
	trig.wait(t)
	p.EdgesChan <- gpio.Low
	trig.wait(t)
	assert.Equal(t, 2, trig.count())
}

func TestListener_StopsOnCancel(t *testing.T) {
	trig := newFakeTrigger()
	l := newTestListener(map[int]gpio.PinIn{1: newPin("GPIO2"), 2: newPin("GPIO3")}, trig, 0)

	cancel, done := run(t, l)
	stop(t, cancel, done)
	assert.Zero(t, trig.count())
}

func TestOpenPins(t *testing.T) {
	opened := map[int]*gpiotest.Pin{}
	open := func(bcm int) (gpio.PinIn, error) {
		if bcm == 99 {
			return nil, errors.New("no such pin")
		}
		p := newPin("GPIO")
		if err := p.In(gpio.PullUp, gpio.FallingEdge); err != nil {
			return nil, err
		}
		opened[bcm] = p
		return p, nil
	}

	t.Run("Skips Bad Entries", func(t *testing.T) {
		pins, err := OpenPins(map[string]int{"1": 2, "2": 99, "9": 5, "x": 6, "8": 9}, open, zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, pins, 2)
		assert.Contains(t, pins, 1)
		assert.Contains(t, pins, 8)
		assert.Equal(t, gpio.PullUp, opened[2].P)
	})

	t.Run("None Usable", func(t *testing.T) {
		pins, err := OpenPins(map[string]int{"1": 99}, open, zap.NewNop())
		assert.ErrorIs(t, err, ErrNoButtons)
		assert.Nil(t, pins)
	})

	t.Run("Defaults", func(t *testing.T) {
		pins, err := OpenPins(DefaultPins(), open, zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, pins, 8)
	})
}
