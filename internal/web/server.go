package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/catalog"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/metrics"
	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/search"
)

// Server renders the public site over a catalog service
type Server struct {
	service *catalog.Service
	search  search.Options
	address string
	port    int
	now     func() time.Time

	// closing ends live search sessions, which outlive http.Server.Shutdown
	closing context.Context
	close   context.CancelFunc
}

// NewServer creates the site handler set
func NewServer(service *catalog.Service, cfg *config.Config) *Server {
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	closing, closeFn := context.WithCancel(context.Background())
	return &Server{
		service: service,
		search:  search.OptionsFromConfig(cfg),
		address: cfg.Server.Address,
		port:    port,
		now:     time.Now,
		closing: closing,
		close:   closeFn,
	}
}

// Close ends all live search sessions
func (s *Server) Close() {
	s.close()
}

// Handler returns the routed site with its middleware chain
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /games", s.handleGames)
	mux.HandleFunc("GET /games/{id}", s.handleGame)
	mux.HandleFunc("GET /genres", s.handleGenres)
	mux.HandleFunc("GET /genres/{slug}", s.handleGenre)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /ws/search", s.handleLiveSearch)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleUnknown)

	return withRequestID(withAccessLog(withSecurityHeaders(mux)))
}

// HTTPServer wraps Handler in a server bound to the configured address.
// Shutting it down also closes the live search sessions.
func (s *Server) HTTPServer() *http.Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv.RegisterOnShutdown(s.Close)
	return srv
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "home", http.StatusOK, homePage(s.service.Home(r.Context())))
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	params := catalog.ParseListParams(r.URL.Query())

	var (
		result catalog.GamesResult
		genres []models.Genre
		g      errgroup.Group
	)
	g.Go(func() error {
		result = s.service.Games(r.Context(), params)
		return nil
	})
	g.Go(func() error {
		genres = s.service.Genres(r.Context())
		return nil
	})
	_ = g.Wait()

	s.render(w, r, "games", http.StatusOK, gamesPage(result, genres, s.now().Year()))
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		s.render(w, r, "game", http.StatusNotFound, gameNotFound())
		return
	}

	result := s.service.Game(r.Context(), id)
	if result.NotFound {
		s.render(w, r, "game", http.StatusNotFound, gameNotFound())
		return
	}
	s.render(w, r, "game", http.StatusOK, gamePage(result))
}

func gameNotFound() templ.Component {
	return notFoundPage("Game Not Found", "The game you are looking for does not exist or was removed.")
}

func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "genres", http.StatusOK, genresPage(s.service.Genres(r.Context())))
}

func (s *Server) handleGenre(w http.ResponseWriter, r *http.Request) {
	result := s.service.Genre(r.Context(), r.PathValue("slug"))
	if result.NotFound {
		s.render(w, r, "genre", http.StatusNotFound, notFoundPage("Not Found", "This genre does not exist."))
		return
	}
	s.render(w, r, "genre", http.StatusOK, genrePage(result))
}

func (s *Server) handleUnknown(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "unknown", http.StatusNotFound, notFoundPage("Not Found", "This page does not exist."))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// searchResponse is the body of the one-shot search endpoint
type searchResponse struct {
	Query   string        `json:"query"`
	Results []models.Game `json:"results"`
	Error   string        `json:"error,omitempty"`
}

// handleSearch answers one search without the debounce of a live session
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	resp := searchResponse{Query: query, Results: []models.Game{}}
	if query == "" {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	results, err := s.service.SearchGames(r.Context(), query, s.search.PageSize)
	if err != nil {
		if apperrors.IsCanceled(err) {
			return
		}
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("query", query).Msg("Search request failed")
		resp.Error = "search is temporarily unavailable"
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	resp.Results = results
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := config.GetLogger()
		logger.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// render buffers a page so a failing component never leaves a half written
// response behind
func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Str("page", page).Str("request_id", requestIDFrom(r)).Msg("Failed to render page")
		metrics.PageRendersTotal.WithLabelValues(page, strconv.Itoa(http.StatusInternalServerError)).Inc()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.PageRendersTotal.WithLabelValues(page, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
