package grpc

import (
	"context"

	"github.com/Belphemur/GameHub/internal/models"
)

// mockClient implements client.Client for testing
type mockClient struct {
	listGamesFunc        func(ctx context.Context, query models.GameQuery) (*models.Page[models.Game], error)
	getGameFunc          func(ctx context.Context, id int) (*models.GameDetail, error)
	listGameTrailersFunc func(ctx context.Context, id int) ([]models.Trailer, error)
	listGenresFunc       func(ctx context.Context, pageSize int) (*models.Page[models.Genre], error)
	getGenreFunc         func(ctx context.Context, slug string) (*models.Genre, error)
	streamGamesFunc      func(ctx context.Context, query models.GameQuery, maxPages int) <-chan models.StreamResult[models.Game]
}

func (m *mockClient) ListGames(ctx context.Context, query models.GameQuery) (*models.Page[models.Game], error) {
	if m.listGamesFunc != nil {
		return m.listGamesFunc(ctx, query)
	}
	return &models.Page[models.Game]{Results: []models.Game{}}, nil
}

func (m *mockClient) GetGame(ctx context.Context, id int) (*models.GameDetail, error) {
	if m.getGameFunc != nil {
		return m.getGameFunc(ctx, id)
	}
	return &models.GameDetail{}, nil
}

func (m *mockClient) ListGameTrailers(ctx context.Context, id int) ([]models.Trailer, error) {
	if m.listGameTrailersFunc != nil {
		return m.listGameTrailersFunc(ctx, id)
	}
	return []models.Trailer{}, nil
}

func (m *mockClient) ListGenres(ctx context.Context, pageSize int) (*models.Page[models.Genre], error) {
	if m.listGenresFunc != nil {
		return m.listGenresFunc(ctx, pageSize)
	}
	return &models.Page[models.Genre]{Results: []models.Genre{}}, nil
}

func (m *mockClient) GetGenre(ctx context.Context, slug string) (*models.Genre, error) {
	if m.getGenreFunc != nil {
		return m.getGenreFunc(ctx, slug)
	}
	return &models.Genre{}, nil
}

func (m *mockClient) StreamGames(ctx context.Context, query models.GameQuery, maxPages int) <-chan models.StreamResult[models.Game] {
	if m.streamGamesFunc != nil {
		return m.streamGamesFunc(ctx, query, maxPages)
	}
	ch := make(chan models.StreamResult[models.Game])
	close(ch)
	return ch
}

func (m *mockClient) Close() error {
	return nil
}
