package server_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ttrpg-pi/core/middleware/rayid"
	"ttrpg-pi/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_NotFoundIsJSON(t *testing.T) {
	app := server.New(zap.NewNop())

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Not found", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestAddr(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{"All Interfaces", "0.0.0.0", 5000, "0.0.0.0:5000"},
		{"Loopback", "127.0.0.1", 8080, "127.0.0.1:8080"},
		{"Empty Host", "", 5000, ":5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.Addr(tt.host, tt.port))
		})
	}
}
