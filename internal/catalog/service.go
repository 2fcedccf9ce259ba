package catalog

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/reporting"
)

// Page sizes and orderings of the composed views
const (
	GenreTopGamesSize = 20
	HomeRecentSize    = 20
	HomeFeaturedSize  = 10
	// homeFeaturedYears is how many calendar years, the current one included, the featured games span.
	homeFeaturedYears = 3
	genreMenuSize     = 40
)

// Source is the subset of the catalog client the service depends on
type Source interface {
	ListGames(ctx context.Context, query models.GameQuery) (*models.Page[models.Game], error)
	GetGame(ctx context.Context, id int) (*models.GameDetail, error)
	ListGameTrailers(ctx context.Context, id int) ([]models.Trailer, error)
	ListGenres(ctx context.Context, pageSize int) (*models.Page[models.Genre], error)
	GetGenre(ctx context.Context, slug string) (*models.Genre, error)
}

// GamesResult is a filtered list. Err holds the recoverable failure behind an
// empty list, nil on success.
type GamesResult struct {
	Params ListParams
	Games  []models.Game
	Total  int
	Err    error
}

// GameResult is the detail view. NotFound is a terminal state.
type GameResult struct {
	Game     *models.GameDetail
	Trailers []models.Trailer
	NotFound bool
	Err      error
}

// GenreResult is a genre with its best rated games
type GenreResult struct {
	Genre    *models.Genre
	TopGames []models.Game
	NotFound bool
	Err      error
}

// HomeResult holds the sections of the landing page. A failing section is empty.
type HomeResult struct {
	Recent   []models.Game
	Featured []models.Game
	Genres   []models.Genre
}

// Service composes catalog queries into page views. It never returns faults:
// failures are logged, reported and turned into empty or not-found states.
type Service struct {
	source Source
	now    func() time.Time
}

// NewService creates a catalog service over source
func NewService(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

// Games fetches the displayable games of a filtered list
func (s *Service) Games(ctx context.Context, params ListParams) GamesResult {
	params = params.Normalize()
	result := GamesResult{Params: params, Games: []models.Game{}}

	page, err := s.source.ListGames(ctx, params.Query())
	if err != nil {
		s.fail("games", err)
		result.Err = err
		return result
	}
	result.Games = models.DisplayableGames(page.Results)
	result.Total = page.Count
	return result
}

// SearchGames runs a one-shot search and returns displayable entries only.
// Unlike the page views it returns the error so callers can tell a
// superseded request from a failed one.
func (s *Service) SearchGames(ctx context.Context, query string, pageSize int) ([]models.Game, error) {
	page, err := s.source.ListGames(ctx, models.GameQuery{Search: query, PageSize: pageSize})
	if err != nil {
		return nil, err
	}
	return models.DisplayableGames(page.Results), nil
}

// Game fetches a game detail and its trailers concurrently. Any failure of the
// detail lookup renders the not-found state. Trailers are optional.
func (s *Service) Game(ctx context.Context, id int) GameResult {
	var (
		result   GameResult
		trailers []models.Trailer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		detail, err := s.source.GetGame(gctx, id)
		if err != nil {
			return err
		}
		result.Game = detail
		return nil
	})
	g.Go(func() error {
		list, err := s.source.ListGameTrailers(gctx, id)
		if err != nil {
			if !apperrors.IsCanceled(err) {
				s.fail("game_trailers", err)
			}
			return nil
		}
		trailers = list
		return nil
	})

	if err := g.Wait(); err != nil {
		s.fail("game", err)
		return GameResult{NotFound: true, Err: err}
	}
	result.Trailers = trailers
	if result.Trailers == nil {
		result.Trailers = []models.Trailer{}
	}
	return result
}

// Genres fetches the genre menu. A failure yields an empty menu.
func (s *Service) Genres(ctx context.Context) []models.Genre {
	page, err := s.source.ListGenres(ctx, genreMenuSize)
	if err != nil {
		s.fail("genres", err)
		return []models.Genre{}
	}
	return page.Results
}

// Genre fetches a genre and its top rated games concurrently
func (s *Service) Genre(ctx context.Context, slug string) GenreResult {
	var (
		genre    *models.Genre
		topGames = []models.Game{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		genre, err = s.source.GetGenre(gctx, slug)
		return err
	})
	g.Go(func() error {
		page, err := s.source.ListGames(gctx, models.GameQuery{
			Genres:   slug,
			Ordering: models.OrderMetacriticDesc,
			PageSize: GenreTopGamesSize,
		})
		if err != nil {
			if !apperrors.IsCanceled(err) {
				s.fail("genre_games", err)
			}
			return nil
		}
		topGames = models.DisplayableGames(page.Results)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.fail("genre", err)
		return GenreResult{NotFound: true, TopGames: []models.Game{}, Err: err}
	}
	return GenreResult{Genre: genre, TopGames: topGames}
}

// Home fetches the landing page sections concurrently: the games released this
// year, the most rated games of the last years and the genre menu.
func (s *Service) Home(ctx context.Context) HomeResult {
	year := s.now().Year()
	result := HomeResult{Recent: []models.Game{}, Featured: []models.Game{}, Genres: []models.Genre{}}

	var g errgroup.Group
	g.Go(func() error {
		page, err := s.source.ListGames(ctx, models.GameQuery{
			Dates:    YearRange(year, year),
			Ordering: models.OrderReleasedDesc,
			PageSize: HomeRecentSize,
		})
		if err != nil {
			s.fail("home_recent", err)
			return nil
		}
		result.Recent = models.DisplayableGames(page.Results)
		return nil
	})
	g.Go(func() error {
		page, err := s.source.ListGames(ctx, models.GameQuery{
			Dates:    YearRange(year-homeFeaturedYears+1, year),
			Ordering: models.OrderRatingsCountDesc,
			PageSize: HomeFeaturedSize,
		})
		if err != nil {
			s.fail("home_featured", err)
			return nil
		}
		result.Featured = models.DisplayableGames(page.Results)
		return nil
	})
	g.Go(func() error {
		result.Genres = s.Genres(ctx)
		return nil
	})
	_ = g.Wait()

	return result
}

// fail logs a failed lookup and reports it when it is unexpected
func (s *Service) fail(operation string, err error) {
	logger := config.GetLogger()
	switch apperrors.Classify(err) {
	case apperrors.KindCanceled:
		logger.Debug().Err(err).Str("operation", operation).Msg("Catalog lookup canceled")
	case apperrors.KindNotFound:
		logger.Info().Err(err).Str("operation", operation).Msg("Catalog entity not found")
	default:
		logger.Error().Err(err).Str("operation", operation).Msg("Catalog lookup failed")
		reporting.Capture(err, map[string]string{"operation": operation})
	}
}
