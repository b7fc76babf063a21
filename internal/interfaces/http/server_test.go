package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_RequestID(t *testing.T) {
	s := newTestServer(&mockRunService{})

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestServer_RejectsOversizedBody(t *testing.T) {
	s := newTestServer(&mockRunService{})
	body := fmt.Sprintf(`{"dir":%q}`, strings.Repeat("a", maxBodyBytes+1))

	w, resp := doRequest(t, s, http.MethodPost, "/api/process", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestServer_StartAndStop(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Port = 0
	s := NewServer(cfg, &mockRunService{}, healthy(), &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		addr := s.Address()
		if strings.HasSuffix(addr, ":0") {
			return false
		}
		var err error
		resp, err = http.Get("http://" + addr + "/health")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}
