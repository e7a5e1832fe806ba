package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaas/DumpsterBot_Go/internal/command"
	"github.com/dmaas/DumpsterBot_Go/internal/testing/leaktest"
	"github.com/dmaas/DumpsterBot_Go/internal/user"
)

type fakePool struct {
	pingErr error
}

func (f *fakePool) Ping(_ context.Context) error { return f.pingErr }
func (f *fakePool) Close()                       {}

// stubUserService overrides just the methods the routes under test
// call; everything else panics via the embedded nil interface.
type stubUserService struct {
	user.Service
}

func (s *stubUserService) Points(_ context.Context, username string) (string, error) {
	return username + " has 42 points", nil
}

func (s *stubUserService) Leaderboard(_ context.Context) ([]string, error) {
	return []string{"1. alice - 42 points"}, nil
}

func newTestHandler(pool *fakePool) http.Handler {
	svc := command.Services{User: &stubUserService{}}
	srv := NewServer(0, pool, command.NewRouter(svc), svc)
	return srv.httpServer.Handler
}

func TestRoutes_Health(t *testing.T) {
	ts := httptest.NewServer(newTestHandler(&fakePool{}))
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestRoutes_ReadyzReflectsDatabase(t *testing.T) {
	pool := &fakePool{}
	ts := httptest.NewServer(newTestHandler(pool))
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	pool.pingErr = errors.New("connection refused")
	resp, err = http.Get(ts.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRoutes_UserPoints(t *testing.T) {
	ts := httptest.NewServer(newTestHandler(&fakePool{}))
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/api/v1/user/points?username=alice")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "alice has 42 points", body["reply"])

	// Missing username is a client error.
	resp, err = http.Get(ts.URL + "/api/v1/user/points")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoutes_Leaderboard(t *testing.T) {
	ts := httptest.NewServer(newTestHandler(&fakePool{}))
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/api/v1/user/leaderboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Entries []string `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"1. alice - 42 points"}, body.Entries)
}

func TestStartStop_NoGoroutineLeak(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	svc := command.Services{User: &stubUserService{}}
	srv := NewServer(0, &fakePool{}, command.NewRouter(svc), svc)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	err := <-done
	assert.ErrorIs(t, err, http.ErrServerClosed)

	checker.Check(2)
}
