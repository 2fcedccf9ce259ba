package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/Belphemur/GameHub/internal/catalog"
	"github.com/Belphemur/GameHub/internal/client"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/metrics"
	"github.com/Belphemur/GameHub/internal/testutil"
)

// fakeCatalog serves a small RAWG-shaped catalog and counts requests
type fakeCatalog struct {
	requests atomic.Int32
	server   *httptest.Server
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	fc := &fakeCatalog{}
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}

	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("search") == "boom":
			writeJSON(w, http.StatusInternalServerError, `{}`)
		case q.Get("search") == "zelda":
			writeJSON(w, http.StatusOK, testutil.GameListJSON(3, "",
				testutil.GameOptions{ID: 22511, Name: "The Legend of Zelda: Breath of the Wild", Image: "https://media.example/zelda.jpg"},
				testutil.GameOptions{ID: 22512, Name: "Zelda Without Art"},
				testutil.GameOptions{ID: 22513, Name: "Link's Awakening", Image: "https://media.example/link.jpg"},
			))
		case q.Get("genres") == "action":
			writeJSON(w, http.StatusOK, testutil.GameListJSON(1, "",
				testutil.GameOptions{ID: 28, Name: "Red Dead Redemption 2", Image: "https://media.example/rdr2.jpg", Metacritic: 96},
			))
		default:
			writeJSON(w, http.StatusOK, testutil.GameListJSON(12345, "",
				testutil.GameOptions{ID: 3498, Name: "Grand Theft Auto V", Image: "https://media.example/gta.jpg", Released: "2013-09-17", Metacritic: 92},
				testutil.GameOptions{ID: 7, Name: "Tom & Jerry <3", Image: "https://media.example/tj.jpg"},
			))
		}
	})
	mux.HandleFunc("/games/3498", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, testutil.GameDetailJSON(
			testutil.GameOptions{ID: 3498, Name: "Grand Theft Auto V", Image: "https://media.example/gta.jpg", Released: "2013-09-17", Rating: 4.47, Metacritic: 92, Genres: []string{"action"}},
			"Rockstar Games went bigger.\nLos Santos is a sprawling city.",
			"PC", "PlayStation 5",
		))
	})
	mux.HandleFunc("/games/3498/movies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, testutil.TrailerListJSON(
			testutil.TrailerOptions{ID: 16432, Name: "Trailer 1", Preview: "https://media.example/preview.jpg", Max: "https://media.example/max.mp4"},
		))
	})
	mux.HandleFunc("/games/999", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, testutil.NotFoundJSON)
	})
	mux.HandleFunc("/games/999/movies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, testutil.NotFoundJSON)
	})
	mux.HandleFunc("/genres", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, testutil.GenreListJSON(
			testutil.GenreOptions{ID: 4, Name: "Action", Slug: "action", GamesCount: 184213},
			testutil.GenreOptions{ID: 51, Name: "Indie", Slug: "indie", GamesCount: 75410},
		))
	})
	mux.HandleFunc("/genres/action", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, testutil.GenreJSON(testutil.GenreOptions{
			ID: 4, Name: "Action", Slug: "action", GamesCount: 184213,
			Description: "<p>The action game is a genre that includes fights.</p>",
		}))
	})
	mux.HandleFunc("/genres/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, testutil.NotFoundJSON)
	})

	fc.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fc.requests.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(fc.server.Close)
	return fc
}

func newTestSite(t *testing.T) (*httptest.Server, *fakeCatalog) {
	t.Helper()
	fc := newFakeCatalog(t)

	cfg := &config.Config{ClientTimeout: "5s"}
	cfg.Rawg.APIKey = "test-key"
	cfg.Rawg.BaseURL = fc.server.URL
	cfg.Search.Debounce = "10ms"

	c := client.NewClient(cfg, nil)
	t.Cleanup(func() { _ = c.Close() })

	site := NewServer(catalog.NewService(c), cfg)
	site.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	server := httptest.NewServer(site.Handler())
	t.Cleanup(server.Close)
	return server, fc
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func assertContains(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("Expected body to contain %q", w)
		}
	}
}

func getCounterValue(cv *prometheus.CounterVec, labels ...string) float64 {
	m := &dto.Metric{}
	if err := cv.WithLabelValues(labels...).Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestServer_Home(t *testing.T) {
	server, _ := newTestSite(t)

	before := getCounterValue(metrics.PageRendersTotal, "home", "200")
	status, body := get(t, server.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	assertContains(t, body,
		"<title>GameHub</title>",
		"Grand Theft Auto V",
		`href="/genres/action"`,
		`id="live-search"`,
	)
	if got := getCounterValue(metrics.PageRendersTotal, "home", "200") - before; got != 1 {
		t.Errorf("Expected one home render recorded, got %v", got)
	}
}

func TestServer_Games(t *testing.T) {
	server, _ := newTestSite(t)

	status, body := get(t, server.URL+"/games?sort=popular&year=2013")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	assertContains(t, body,
		"<title>Browse Games - GameHub</title>",
		`<option value="popular" selected>Popular</option>`,
		`<option value="2013" selected>2013</option>`,
		`<option value="2025">2025</option>`,
		`<option value="action">Action</option>`,
		"12,345 games",
		"Tom &amp; Jerry &lt;3",
	)
	if strings.Contains(body, "Tom & Jerry <3") {
		t.Error("Expected game names to be escaped")
	}
}

func TestServer_GamesSearchSummary(t *testing.T) {
	server, _ := newTestSite(t)

	status, body := get(t, server.URL+"/games?search=zelda")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	assertContains(t, body, "Results for &quot;zelda&quot;", `name="search" value="zelda"`, "Link&#39;s Awakening")
	if strings.Contains(body, "Zelda Without Art") {
		t.Error("Expected entries without image to be hidden")
	}
}

func TestServer_GamesUpstreamFailure(t *testing.T) {
	server, _ := newTestSite(t)

	status, body := get(t, server.URL+"/games?search=boom")
	if status != http.StatusOK {
		t.Fatalf("Expected the list page to render, got %d", status)
	}
	assertContains(t, body, `role="alert"`, "No games found.")
}

func TestServer_GameDetail(t *testing.T) {
	server, _ := newTestSite(t)

	status, body := get(t, server.URL+"/games/3498")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	assertContains(t, body,
		"<title>Grand Theft Auto V - GameHub</title>",
		`<meta name="description" content="Rockstar Games went bigger.`,
		"<p>Los Santos is a sprawling city.</p>",
		`<dd>PC, PlayStation 5</dd>`,
		`class="metacritic metacritic-high"`,
		`src="https://media.example/max.mp4"`,
		`href="/genres/action"`,
	)
}

func TestServer_GameNotFound(t *testing.T) {
	server, fc := newTestSite(t)

	tests := []struct {
		name         string
		path         string
		wantUpstream bool
	}{
		{"missing upstream", "/games/999", true},
		{"non numeric id", "/games/abc", false},
		{"zero id", "/games/0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := fc.requests.Load()
			status, body := get(t, server.URL+tt.path)
			if status != http.StatusNotFound {
				t.Fatalf("Expected 404, got %d", status)
			}
			assertContains(t, body, "<title>Game Not Found</title>")
			if called := fc.requests.Load() > before; called != tt.wantUpstream {
				t.Errorf("Upstream called = %v, want %v", called, tt.wantUpstream)
			}
		})
	}
}

func TestServer_Genres(t *testing.T) {
	server, _ := newTestSite(t)

	status, body := get(t, server.URL+"/genres")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	assertContains(t, body, "<title>Genres - GameHub</title>", "184,213 Titles", "75,410 Titles")
}

func TestServer_GenreDetail(t *testing.T) {
	server, _ := newTestSite(t)

	status, body := get(t, server.URL+"/genres/action")
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	assertContains(t, body,
		"<title>Best Action Games</title>",
		`content="Top rated Action games including 184,213 titles."`,
		"<p>The action game is a genre that includes fights.</p>",
		"Red Dead Redemption 2",
		`href="/games?genre=action"`,
	)

	status, body = get(t, server.URL+"/genres/missing")
	if status != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", status)
	}
	assertContains(t, body, "<title>Not Found</title>")
}

func TestServer_RerenderIsIdentical(t *testing.T) {
	server, _ := newTestSite(t)

	for _, path := range []string{"/games?sort=popular&year=2024", "/", "/genres/action", "/games/3498"} {
		t.Run(path, func(t *testing.T) {
			status, first := get(t, server.URL+path)
			if status != http.StatusOK {
				t.Fatalf("Expected 200, got %d", status)
			}
			_, second := get(t, server.URL+path)
			if first != second {
				t.Errorf("Expected identical renders of %s, got:\n%s\n---\n%s", path, first, second)
			}
		})
	}
}

func TestServer_Search(t *testing.T) {
	server, fc := newTestSite(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []int
		wantError  bool
	}{
		{"blank", "%20%20", http.StatusOK, nil, false},
		{"displayable only", "zelda", http.StatusOK, []int{22511, 22513}, false},
		{"upstream failure", "boom", http.StatusBadGateway, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := fc.requests.Load()
			resp, err := http.Get(server.URL + "/search?q=" + tt.query)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("Expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}

			var got searchResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("Invalid JSON: %v", err)
			}
			if got.Results == nil {
				t.Error("Expected results to be an array, never null")
			}
			if len(got.Results) != len(tt.wantIDs) {
				t.Fatalf("Expected %d results, got %d", len(tt.wantIDs), len(got.Results))
			}
			for i, id := range tt.wantIDs {
				if got.Results[i].ID != id {
					t.Errorf("Result %d: expected ID %d, got %d", i, id, got.Results[i].ID)
				}
			}
			if (got.Error != "") != tt.wantError {
				t.Errorf("Unexpected error field %q", got.Error)
			}
			if tt.query == "%20%20" && fc.requests.Load() != before {
				t.Error("Expected blank query not to reach the catalog")
			}
		})
	}
}

func TestServer_HealthAndUnknown(t *testing.T) {
	server, _ := newTestSite(t)

	status, body := get(t, server.URL+"/healthz")
	if status != http.StatusOK || body != "ok" {
		t.Errorf("Unexpected health response %d %q", status, body)
	}

	status, body = get(t, server.URL+"/nope")
	if status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
	assertContains(t, body, "<title>Not Found</title>")
}

func TestServer_RequestID(t *testing.T) {
	server, _ := newTestSite(t)

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(requestIDHeader); got != "abc-123" {
		t.Errorf("Expected caller request ID to be echoed, got %q", got)
	}

	resp, err = http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(requestIDHeader); len(got) != 36 {
		t.Errorf("Expected a generated UUID request ID, got %q", got)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("Expected security headers to be set")
	}
}

func TestAccessLog_RecoversPanic(t *testing.T) {
	handler := withAccessLog(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after a panic, got %d", rec.Code)
	}
}
