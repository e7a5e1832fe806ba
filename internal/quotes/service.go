package quotes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
)

// Collections maps a quote command name to the paste holding its
// pipe-separated quotes.
var Collections = map[string]string{
	"zodgyism":  "https://pastebin.com/raw/VLeD1PjV",
	"kiwiism":   "https://pastebin.com/raw/Hnw7mggq",
	"melonism":  "https://pastebin.com/raw/0nYJHBGi",
	"twentyism": "https://pastebin.com/raw/yrJnWCys",
	"abhism":    "https://pastebin.com/raw/JGMkbDQz",
}

const (
	cacheSize    = 16
	fetchTimeout = 5 * time.Second
)

// Service serves a random quote from a named collection, caching the
// fetched paste so repeat commands don't re-download it.
type Service interface {
	Random(ctx context.Context, collection string) (string, error)
	// IsCollection reports whether name is a known quote command.
	IsCollection(name string) bool
}

type service struct {
	client *http.Client
	cache  *lru.Cache[string, []string]
	rng    random.Source
}

// NewService creates a new quote service
func NewService(rng random.Source) (Service, error) {
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote cache: %w", err)
	}
	return &service{
		client: &http.Client{Timeout: fetchTimeout},
		cache:  cache,
		rng:    rng,
	}, nil
}

func (s *service) IsCollection(name string) bool {
	_, ok := Collections[name]
	return ok
}

func (s *service) Random(ctx context.Context, collection string) (string, error) {
	quotes, err := s.quotes(ctx, collection)
	if err != nil {
		return "", err
	}
	if len(quotes) == 0 {
		return "", fmt.Errorf("quote collection %q is empty", collection)
	}
	return quotes[s.rng.IntN(len(quotes))], nil
}

func (s *service) quotes(ctx context.Context, collection string) ([]string, error) {
	if cached, ok := s.cache.Get(collection); ok {
		return cached, nil
	}

	url, ok := Collections[collection]
	if !ok {
		return nil, fmt.Errorf("unknown quote collection %q", collection)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read quote body: %w", err)
	}

	var quotes []string
	for _, q := range strings.Split(string(body), "|") {
		if q = strings.TrimSpace(q); q != "" {
			quotes = append(quotes, q)
		}
	}

	s.cache.Add(collection, quotes)
	logger.FromContext(ctx).Debug("Cached quote collection", "collection", collection, "count", len(quotes))
	return quotes, nil
}
