package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/Belphemur/GameHub/internal/cache"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/parser"
)

// Client defines the interface for querying the remote game catalog
type Client interface {
	ListGames(ctx context.Context, query models.GameQuery) (*models.Page[models.Game], error)
	GetGame(ctx context.Context, id int) (*models.GameDetail, error)
	ListGameTrailers(ctx context.Context, id int) ([]models.Trailer, error)
	ListGenres(ctx context.Context, pageSize int) (*models.Page[models.Genre], error)
	GetGenre(ctx context.Context, slug string) (*models.Genre, error)

	// StreamGames walks up to maxPages pages of a game query. The channel emits
	// games as pages arrive, deduplicated by ID, and is closed when done.
	// Errors are sent as StreamResult with a non-nil Err field.
	StreamGames(ctx context.Context, query models.GameQuery, maxPages int) <-chan models.StreamResult[models.Game]

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	userAgent     string
	detailCache   cache.Cache
	gameParser    parser.ListParser[models.Game]
	detailParser  parser.SingleResultParser[models.GameDetail]
	genreParser   *parser.GenreParser
	trailerParser parser.ListParser[models.Trailer]
}

// NewClient creates a catalog client. The access key and base URL come from cfg.
// detailCache may be nil, in which case detail lookups always hit the network.
func NewClient(cfg *config.Config, detailCache cache.Cache) Client {
	baseURL := strings.TrimRight(cfg.Rawg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	return &client{
		httpClient:    newHTTPClient(cfg),
		baseURL:       baseURL,
		apiKey:        cfg.Rawg.APIKey,
		userAgent:     userAgent,
		detailCache:   detailCache,
		gameParser:    parser.NewGameParser(),
		detailParser:  parser.NewGameDetailParser(),
		genreParser:   parser.NewGenreParser(),
		trailerParser: parser.NewTrailerParser(),
	}
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	if c.detailCache == nil {
		return nil
	}
	return c.detailCache.Close()
}
