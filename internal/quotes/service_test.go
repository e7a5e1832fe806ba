package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptSource struct {
	ints []int
}

func (s *scriptSource) Float64() float64 { return 0 }

func (s *scriptSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

// registerCollection points a temporary quote command at a test server.
func registerCollection(t *testing.T, name, url string) {
	t.Helper()
	Collections[name] = url
	t.Cleanup(func() { delete(Collections, name) })
}

func TestIsCollection(t *testing.T) {
	svc, err := NewService(&scriptSource{})
	require.NoError(t, err)

	assert.True(t, svc.IsCollection("zodgyism"))
	assert.False(t, svc.IsCollection("points"))
}

func TestRandom_SplitsAndTrims(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("first quote | second quote ||  \n third quote"))
	}))
	t.Cleanup(srv.Close)
	registerCollection(t, "testism", srv.URL)

	svc, err := NewService(&scriptSource{ints: []int{1}})
	require.NoError(t, err)

	quote, err := svc.Random(context.Background(), "testism")
	require.NoError(t, err)
	assert.Equal(t, "second quote", quote)
}

func TestRandom_CachesFetchedCollection(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte("only quote"))
	}))
	t.Cleanup(srv.Close)
	registerCollection(t, "testism", srv.URL)

	svc, err := NewService(&scriptSource{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		quote, err := svc.Random(context.Background(), "testism")
		require.NoError(t, err)
		assert.Equal(t, "only quote", quote)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestRandom_UnknownCollection(t *testing.T) {
	svc, err := NewService(&scriptSource{})
	require.NoError(t, err)

	_, err = svc.Random(context.Background(), "nonsense")
	assert.ErrorContains(t, err, "unknown quote collection")
}

func TestRandom_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	registerCollection(t, "testism", srv.URL)

	svc, err := NewService(&scriptSource{})
	require.NoError(t, err)

	_, err = svc.Random(context.Background(), "testism")
	assert.ErrorContains(t, err, "status 404")
}

func TestRandom_EmptyCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("  |  | "))
	}))
	t.Cleanup(srv.Close)
	registerCollection(t, "testism", srv.URL)

	svc, err := NewService(&scriptSource{})
	require.NoError(t, err)

	_, err = svc.Random(context.Background(), "testism")
	assert.ErrorContains(t, err, "is empty")
}
