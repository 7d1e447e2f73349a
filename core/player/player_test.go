package player

import (
	"errors"
	"os/exec"
	"testing"

	"ttrpg-pi/core/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingRunner struct {
	installed map[string]error
	started   [][]string
}

func (r *recordingRunner) Start(name string, args ...string) error {
	err, ok := r.installed[name]
	if !ok {
		return &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	if err == nil {
		r.started = append(r.started, append([]string{name}, args...))
	}
	return err
}

func TestPlayer_Play(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		installed map[string]error
		want      []string
		wantErr   error
	}{
		{
			name:      "Mpg123",
			installed: map[string]error{"mpg123": nil, "ffplay": nil},
			want:      []string{"mpg123", "-q", "/a/sound1.mp3"},
		},
		{
			name:      "Mpg321 Fallback",
			installed: map[string]error{"mpg321": nil},
			want:      []string{"mpg321", "-q", "/a/sound1.mp3"},
		},
		{
			name:      "Ffplay Fallback",
			installed: map[string]error{"ffplay": nil},
			want:      []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", "/a/sound1.mp3"},
		},
		{
			name:      "Override",
			cfg:       Config{Command: "aplay"},
			installed: map[string]error{"aplay": nil, "mpg123": nil},
			want:      []string{"aplay", "/a/sound1.mp3"},
		},
		{
			name:    "No Player",
			wantErr: process.ErrNoCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordingRunner{installed: tt.installed}
			p := New(tt.cfg, r, zap.NewNop())

			err := p.Play("/a/sound1.mp3")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, r.started)
				return
			}
			require.NoError(t, err)
			require.Len(t, r.started, 1)
			assert.Equal(t, tt.want, r.started[0])
		})
	}
}

func TestPlayer_StartFailure(t *testing.T) {
	boom := errors.New("exec format error")
	r := &recordingRunner{installed: map[string]error{"mpg123": boom, "mpg321": nil}}
	p := New(Config{}, r, zap.NewNop())

	assert.ErrorIs(t, p.Play("/a/x.mp3"), boom)
	assert.Empty(t, r.started)
}
