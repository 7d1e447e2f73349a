package buttons

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Trigger(t *testing.T) {
	paths := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		if r.URL.Path == "/play/4" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Audio file not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"playing"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/play/", 2*time.Second)
	assert.Equal(t, srv.URL+"/play/3", c.URL(3))

	t.Run("OK", func(t *testing.T) {
		require.NoError(t, c.Trigger(3))
		assert.Equal(t, "/play/3", <-paths)
	})

	t.Run("Error Status", func(t *testing.T) {
		err := c.Trigger(4)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.ErrorContains(t, err, "404")
		assert.Equal(t, "/play/4", <-paths)
	})
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewClient(url+"/play", 500*time.Millisecond).Trigger(1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}
