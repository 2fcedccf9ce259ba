package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/cache"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/metrics"
	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/testutil"
)

func newTestConfig(baseURL string) *config.Config {
	cfg := &config.Config{ClientTimeout: "10s"}
	cfg.Rawg.APIKey = "test-key"
	cfg.Rawg.BaseURL = baseURL
	return cfg
}

func newTestCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.New("memory", cache.ProviderConfig{Size: 100, TTL: time.Hour})
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	return c
}

func getCounterValue(cv *prometheus.CounterVec, labels ...string) float64 {
	m := &dto.Metric{}
	if err := cv.WithLabelValues(labels...).Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestClient_ListGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("Expected access key to be sent, got %q", q.Get("key"))
		}
		if q.Get("search") != "zelda" || q.Get("page_size") != "5" {
			t.Errorf("Unexpected query %q", r.URL.RawQuery)
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "GameHub/") {
			t.Errorf("Expected default user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testutil.GameListJSON(2, "",
			testutil.GameOptions{ID: 1, Name: "Zelda", Image: "https://img/1.jpg", Released: "1986-02-21"},
			testutil.GameOptions{ID: 2, Name: "Zelda II"},
		)))
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL), nil)
	defer c.Close()

	before := getCounterValue(metrics.UpstreamRequestsTotal, "games", "success")
	page, err := c.ListGames(context.Background(), models.GameQuery{Search: "zelda", PageSize: 5})
	if err != nil {
		t.Fatalf("ListGames failed: %v", err)
	}

	if len(page.Results) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(page.Results))
	}
	if page.Results[0].ReleaseYear() != 1986 {
		t.Errorf("Expected release year 1986, got %d", page.Results[0].ReleaseYear())
	}
	if page.Results[1].HasImage() {
		t.Error("Expected second game to have no image")
	}
	if after := getCounterValue(metrics.UpstreamRequestsTotal, "games", "success"); after != before+1 {
		t.Errorf("Expected success counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		outcome string
	}{
		{"not found", http.StatusNotFound, testutil.NotFoundJSON, func(err error) bool { return errors.Is(err, &apperrors.ErrNotFound{}) }, "not_found"},
		{"server error", http.StatusInternalServerError, "oops", func(err error) bool { return errors.Is(err, &apperrors.ErrUpstream{}) }, "transient"},
		{"unauthorized", http.StatusUnauthorized, `{"error": "The key parameter is not provided"}`, func(err error) bool { return errors.Is(err, &apperrors.ErrUpstream{}) }, "transient"},
		{"malformed", http.StatusOK, `{"count": 3}`, func(err error) bool { return errors.Is(err, &apperrors.ErrMalformedPayload{}) }, "transient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(newTestConfig(server.URL), nil)
			defer c.Close()

			before := getCounterValue(metrics.UpstreamRequestsTotal, "game", tt.outcome)
			_, err := c.GetGame(context.Background(), 42)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !tt.check(err) {
				t.Errorf("Unexpected error type %T: %v", err, err)
			}
			if strings.Contains(err.Error(), "test-key") {
				t.Errorf("Error leaks the access key: %v", err)
			}
			if after := getCounterValue(metrics.UpstreamRequestsTotal, "game", tt.outcome); after != before+1 {
				t.Errorf("Expected %s counter to increase by 1, got %v -> %v", tt.outcome, before, after)
			}
		})
	}
}

func TestClient_UpstreamErrorMentionsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL), nil)
	defer c.Close()

	_, err := c.ListGenres(context.Background(), 0)
	if err == nil || !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("Expected error mentioning status 502, got: %v", err)
	}
}

func TestClient_GetGame_InvalidID(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL), nil)
	defer c.Close()

	for _, id := range []int{0, -1} {
		if _, err := c.GetGame(context.Background(), id); !errors.Is(err, &apperrors.ErrNotFound{}) {
			t.Errorf("GetGame(%d): expected ErrNotFound, got %v", id, err)
		}
	}
	if hits.Load() != 0 {
		t.Errorf("Expected no request for invalid IDs, got %d", hits.Load())
	}
}

func TestClient_DetailLookupsAreCached(t *testing.T) {
	var gameHits, genreHits, trailerHits, listHits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/games/3498":
			gameHits.Add(1)
			_, _ = w.Write([]byte(testutil.GameDetailJSON(testutil.GameOptions{ID: 3498, Name: "GTA V", Released: "2013-09-17"}, "Heist", "PC")))
		case "/games/3498/movies":
			trailerHits.Add(1)
			_, _ = w.Write([]byte(testutil.TrailerListJSON(testutil.TrailerOptions{ID: 1, Name: "Trailer", Max: "https://cdn/max.mp4"})))
		case "/genres/action":
			genreHits.Add(1)
			_, _ = w.Write([]byte(testutil.GenreJSON(testutil.GenreOptions{ID: 4, Name: "Action", Slug: "action", Description: "<p>Fast</p>"})))
		case "/games":
			listHits.Add(1)
			_, _ = w.Write([]byte(testutil.GameListJSON(0, "")))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL), newTestCache(t))
	defer c.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		detail, err := c.GetGame(ctx, 3498)
		if err != nil {
			t.Fatalf("GetGame failed: %v", err)
		}
		if detail.Name != "GTA V" || detail.ReleaseYear() != 2013 {
			t.Errorf("Unexpected detail %+v", detail)
		}
		if diff := cmp.Diff([]string{"PC"}, detail.Platforms); diff != "" {
			t.Errorf("Unexpected platforms (-want +got):\n%s", diff)
		}

		trailers, err := c.ListGameTrailers(ctx, 3498)
		if err != nil || len(trailers) != 1 {
			t.Fatalf("ListGameTrailers: %v %v", trailers, err)
		}

		genre, err := c.GetGenre(ctx, "action")
		if err != nil || genre.Description != "Fast" {
			t.Fatalf("GetGenre: %+v %v", genre, err)
		}

		if _, err := c.ListGames(ctx, models.GameQuery{}); err != nil {
			t.Fatalf("ListGames failed: %v", err)
		}
	}

	if gameHits.Load() != 1 || trailerHits.Load() != 1 || genreHits.Load() != 1 {
		t.Errorf("Expected one request per detail lookup, got game=%d trailers=%d genre=%d", gameHits.Load(), trailerHits.Load(), genreHits.Load())
	}
	if listHits.Load() != 3 {
		t.Errorf("Expected collections to bypass the cache, got %d requests", listHits.Load())
	}
}

func TestClient_NotFoundIsNotCached(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL), newTestCache(t))
	defer c.Close()

	for i := 0; i < 2; i++ {
		if _, err := c.GetGenre(context.Background(), "nope"); !errors.Is(err, &apperrors.ErrNotFound{}) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	}
	if hits.Load() != 2 {
		t.Errorf("Expected failed lookups to be retried on the next call, got %d requests", hits.Load())
	}
}

func TestClient_GameAndGenreNamespacesDoNotCollide(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/games/4":
			_, _ = w.Write([]byte(testutil.GameDetailJSON(testutil.GameOptions{ID: 4, Name: "Game Four"}, "")))
		case "/genres/4":
			_, _ = w.Write([]byte(testutil.GenreJSON(testutil.GenreOptions{ID: 4, Name: "Action", Slug: "action"})))
		}
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL), newTestCache(t))
	defer c.Close()
	ctx := context.Background()

	game, err := c.GetGame(ctx, 4)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	genre, err := c.GetGenre(ctx, "4")
	if err != nil {
		t.Fatalf("GetGenre failed: %v", err)
	}
	if game.Name != "Game Four" || genre.Name != "Action" {
		t.Errorf("Cache entries collided: game=%q genre=%q", game.Name, genre.Name)
	}
}

func TestClient_CanceledRequest(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c := NewClient(newTestConfig(server.URL), nil)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := c.ListGames(ctx, models.GameQuery{Search: "slow"})
	if !apperrors.IsCanceled(err) {
		t.Fatalf("Expected a cancellation, got %v", err)
	}
	if apperrors.IsTransient(err) {
		t.Error("A cancellation must not be classified as transient")
	}
}

func TestClient_DeclaredCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=ISO-8859-1")
		_, _ = w.Write([]byte(`{"id": 7, "name": "Pok` + string([]byte{0xE9}) + `mon", "slug": "pokemon"}`))
	}))
	defer server.Close()

	c := NewClient(newTestConfig(server.URL), nil)
	defer c.Close()

	detail, err := c.GetGame(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if detail.Name != "Pokémon" {
		t.Errorf("Expected transcoded name, got %q", detail.Name)
	}
}

func TestClient_DefaultsFromConfig(t *testing.T) {
	cfg := &config.Config{}
	c := NewClient(cfg, nil).(*client)
	defer c.Close()

	if c.baseURL != config.DefaultBaseURL {
		t.Errorf("Expected default base URL, got %q", c.baseURL)
	}
	if c.userAgent != config.DefaultUserAgent {
		t.Errorf("Expected default user agent, got %q", c.userAgent)
	}

	cfg.Rawg.BaseURL = "https://example.com/api/"
	c2 := NewClient(cfg, nil).(*client)
	defer c2.Close()
	if got := c2.requestURL(apiRequest{path: "/games"}); got != "https://example.com/api/games" {
		t.Errorf("Unexpected request URL %q", got)
	}
}

func TestClient_DiscardsUndecodableCacheEntry(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(testutil.GameDetailJSON(testutil.GameOptions{ID: 7, Name: "Fresh"}, "")))
	}))
	defer server.Close()

	detailCache := newTestCache(t)
	ctx := context.Background()
	detailCache.Set(ctx, cache.Key("game", 7), []byte("{not json"))

	c := NewClient(newTestConfig(server.URL), detailCache)
	defer c.Close()

	game, err := c.GetGame(ctx, 7)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if game.Name != "Fresh" || hits.Load() != 1 {
		t.Fatalf("Expected a refetch, got %q after %d requests", game.Name, hits.Load())
	}

	data, ok := detailCache.Get(ctx, cache.Key("game", 7))
	if !ok || !strings.Contains(string(data), "Fresh") {
		t.Errorf("Expected the refetched record to replace the bad entry, got %q", data)
	}
}
