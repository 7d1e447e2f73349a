package hal

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// ErrUnknownPin is returned when the host has no pin with the requested BCM number.
var ErrUnknownPin = errors.New("unknown gpio pin")

// Init loads the periph host drivers. It is safe to call more than once.
func Init() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialise gpio host: %w", err)
	}
	return nil
}

// OpenButton returns the pin with BCM number bcm configured as a button input:
// internal pull-up, so a press pulls the line low, and falling-edge detection.
func OpenButton(bcm int) (gpio.PinIn, error) {
	name := fmt.Sprintf("GPIO%d", bcm)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPin, name)
	}
	if err := p.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("failed to configure %s as input: %w", name, err)
	}
	return p, nil
}
