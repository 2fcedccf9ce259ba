package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/testutil"
)

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("search") == "boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(testutil.GameListJSON(2, "",
			testutil.GameOptions{ID: 3498, Name: "Grand Theft Auto V", Released: "2013-09-17", Image: "https://media.example/gta.jpg", Rating: 4.47, Metacritic: 92},
			testutil.GameOptions{ID: 4200, Name: "Portal 2"},
		)))
	}))
	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand("test")
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestConfigCommand_MasksSecrets(t *testing.T) {
	path := writeConfig(t, "rawg:\n  api_key: secret-key-123\nsentry:\n  dsn: https://abc@sentry.example/1\n")

	out, stderr, err := execute(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}
	if !strings.Contains(stderr, "Configuration loaded successfully") {
		t.Errorf("Expected logs on stderr, got %q", stderr)
	}
	if strings.Contains(out, "secret-key-123") {
		t.Errorf("Expected the api key to be masked, got:\n%s", out)
	}

	var decoded struct {
		Rawg struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"rawg"`
		Server struct {
			Port int `yaml:"port"`
		} `yaml:"server"`
	}
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Expected YAML output: %v\n%s", err, out)
	}
	if decoded.Rawg.APIKey != "secr**********" {
		t.Errorf("Expected masked api key, got %q", decoded.Rawg.APIKey)
	}
	if decoded.Server.Port != 8080 {
		t.Errorf("Expected default server port, got %d", decoded.Server.Port)
	}
}

func TestConfigCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "config")
	if err == nil {
		t.Fatal("Expected an error for a missing explicit config file")
	}
}

func TestGamesCommand_Table(t *testing.T) {
	server := catalogServer(t)
	path := writeConfig(t, "rawg:\n  api_key: test-key\n  base_url: "+server.URL+"\n")

	out, _, err := execute(t, "--config", path, "games", "--sort", "popular")
	if err != nil {
		t.Fatalf("games command failed: %v", err)
	}
	if !strings.Contains(out, "Grand Theft Auto V") || !strings.Contains(out, "2013-09-17") || !strings.Contains(out, "92") {
		t.Errorf("Expected the displayable game in the table, got:\n%s", out)
	}
	if strings.Contains(out, "Portal 2") {
		t.Errorf("Expected games without an image to be skipped, got:\n%s", out)
	}
	if !strings.Contains(out, "1 games") {
		t.Errorf("Expected a game count line, got:\n%s", out)
	}
}

func TestGamesCommand_JSONIncludesAll(t *testing.T) {
	server := catalogServer(t)
	path := writeConfig(t, "rawg:\n  api_key: test-key\n  base_url: "+server.URL+"\n")

	out, _, err := execute(t, "--config", path, "games", "--json", "--all")
	if err != nil {
		t.Fatalf("games command failed: %v", err)
	}

	var ids []int
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var g models.Game
		if err := dec.Decode(&g); err != nil {
			t.Fatalf("Expected one JSON object per game: %v\n%s", err, out)
		}
		ids = append(ids, g.ID)
	}
	if len(ids) != 2 {
		t.Fatalf("Expected 2 games, got %v", ids)
	}
}

func TestGamesCommand_PageFailure(t *testing.T) {
	server := catalogServer(t)
	path := writeConfig(t, "rawg:\n  api_key: test-key\n  base_url: "+server.URL+"\n")

	_, stderr, err := execute(t, "--config", path, "games", "--search", "boom")
	if err == nil {
		t.Fatal("Expected an error when a page fails")
	}
	if !strings.Contains(err.Error(), "1 of 1 pages failed") {
		t.Errorf("Unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "Failed to fetch games page") {
		t.Errorf("Expected the failure to be logged to stderr, got %q", stderr)
	}
}

func TestGamesCommand_PageFailureCountsFetchedPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// two remote pages of 40 exist, fewer than requested
		_, _ = w.Write([]byte(testutil.GameListJSON(80, "https://api.rawg.io/api/games?page=2",
			testutil.GameOptions{ID: 3498, Name: "Grand Theft Auto V", Image: "https://media.example/gta.jpg"},
		)))
	}))
	t.Cleanup(server.Close)
	path := writeConfig(t, "rawg:\n  api_key: test-key\n  base_url: "+server.URL+"\n")

	out, _, err := execute(t, "--config", path, "games", "--pages", "5")
	if err == nil {
		t.Fatal("Expected an error when a page fails")
	}
	if !strings.Contains(err.Error(), "1 of 2 pages failed") {
		t.Errorf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "Grand Theft Auto V") {
		t.Errorf("Expected the games of the healthy page, got:\n%s", out)
	}
}

func TestGamesCommand_RejectsZeroPages(t *testing.T) {
	path := writeConfig(t, "rawg:\n  api_key: test-key\n")

	_, _, err := execute(t, "--config", path, "games", "--pages", "0")
	if err == nil || !strings.Contains(err.Error(), "--pages") {
		t.Fatalf("Expected a --pages error, got %v", err)
	}
}

func TestServeCommand_RequiresAPIKey(t *testing.T) {
	t.Setenv("APP_RAWG_API_KEY", "")
	t.Setenv("RAWG_API_KEY", "")
	path := writeConfig(t, "server:\n  port: 0\n")

	_, _, err := execute(t, "--config", path, "serve")
	if err == nil || !strings.Contains(err.Error(), "api_key") {
		t.Fatalf("Expected a missing api key error, got %v", err)
	}
}
