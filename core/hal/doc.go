// Package hal is the thin layer over periph.io used by the button listener.
//
// Pins are addressed by their BCM numbers and opened as pulled-up inputs with
// falling-edge detection, matching buttons wired between the pin and ground.
// When the host has no GPIO (a desktop, CI) OpenButton returns ErrUnknownPin.
package hal
