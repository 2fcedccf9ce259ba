package catalog

import (
	"context"
	"sync"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/models"
)

// fakeSource is an in-memory Source. Hooks, when set, replace the default
// behaviour; every call is recorded.
type fakeSource struct {
	mu      sync.Mutex
	queries []models.GameQuery

	games       map[int]*models.GameDetail
	trailers    map[int][]models.Trailer
	genres      map[string]*models.Genre
	listGames   func(ctx context.Context, q models.GameQuery) (*models.Page[models.Game], error)
	listGenres  func(ctx context.Context) (*models.Page[models.Genre], error)
	trailersErr error
}

func (f *fakeSource) recorded() []models.GameQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.GameQuery(nil), f.queries...)
}

func (f *fakeSource) ListGames(ctx context.Context, q models.GameQuery) (*models.Page[models.Game], error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if f.listGames != nil {
		return f.listGames(ctx, q)
	}
	return &models.Page[models.Game]{Results: []models.Game{}}, nil
}

func (f *fakeSource) GetGame(ctx context.Context, id int) (*models.GameDetail, error) {
	if g, ok := f.games[id]; ok {
		return g, nil
	}
	return nil, apperrors.NewNotFoundError("game", id)
}

func (f *fakeSource) ListGameTrailers(ctx context.Context, id int) ([]models.Trailer, error) {
	if f.trailersErr != nil {
		return nil, f.trailersErr
	}
	return f.trailers[id], nil
}

func (f *fakeSource) ListGenres(ctx context.Context, pageSize int) (*models.Page[models.Genre], error) {
	if f.listGenres != nil {
		return f.listGenres(ctx)
	}
	var genres []models.Genre
	for _, g := range f.genres {
		genres = append(genres, *g)
	}
	return &models.Page[models.Genre]{Count: len(genres), Results: genres}, nil
}

func (f *fakeSource) GetGenre(ctx context.Context, slug string) (*models.Genre, error) {
	if g, ok := f.genres[slug]; ok {
		return g, nil
	}
	return nil, apperrors.NewNotFoundError("genre", slug)
}

func game(id int, image bool) models.Game {
	g := models.Game{ID: id, Name: "Game", Slug: "game"}
	if image {
		g.ImageURL = "https://img.example/game.jpg"
	}
	return g
}

func pageOf(games ...models.Game) *models.Page[models.Game] {
	return &models.Page[models.Game]{Count: len(games), Results: games}
}
