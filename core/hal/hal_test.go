package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

func TestOpenButton_Unknown(t *testing.T) {
	// BCM numbers stop well before 999 on every board periph supports
	if gpioreg.ByName("GPIO999") != nil {
		t.Skip("host unexpectedly exposes GPIO999")
	}
	p, err := OpenButton(999)
	assert.ErrorIs(t, err, ErrUnknownPin)
	assert.Nil(t, p)
}
