package client

import (
	"context"
	"fmt"
	"io"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/cache"
	"github.com/Belphemur/GameHub/internal/models"
)

// ListGames fetches one page of games. Collections are never cached.
func (c *client) ListGames(ctx context.Context, query models.GameQuery) (*models.Page[models.Game], error) {
	var page *models.Page[models.Game]
	err := c.get(ctx, apiRequest{
		endpoint: "games",
		path:     "/games",
		query:    query.Values(),
		resource: "games",
	}, func(body io.Reader) error {
		var err error
		page, err = c.gameParser.ParseList(body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// GetGame fetches the detail of one game
func (c *client) GetGame(ctx context.Context, id int) (*models.GameDetail, error) {
	if id <= 0 {
		return nil, apperrors.NewNotFoundError("game", id)
	}
	return cachedLookup(ctx, c, cache.Key("game", id), func() (*models.GameDetail, error) {
		var detail *models.GameDetail
		err := c.get(ctx, apiRequest{
			endpoint: "game",
			path:     fmt.Sprintf("/games/%d", id),
			resource: "game",
			id:       id,
		}, func(body io.Reader) error {
			var err error
			detail, err = c.detailParser.ParseSingle(body)
			return err
		})
		return detail, err
	})
}

// ListGameTrailers fetches the trailers of one game. A game without trailers yields an empty slice.
func (c *client) ListGameTrailers(ctx context.Context, id int) ([]models.Trailer, error) {
	if id <= 0 {
		return nil, apperrors.NewNotFoundError("game", id)
	}
	trailers, err := cachedLookup(ctx, c, cache.Key("trailers", id), func() (*[]models.Trailer, error) {
		var results []models.Trailer
		err := c.get(ctx, apiRequest{
			endpoint: "game_trailers",
			path:     fmt.Sprintf("/games/%d/movies", id),
			resource: "game",
			id:       id,
		}, func(body io.Reader) error {
			page, err := c.trailerParser.ParseList(body)
			if err != nil {
				return err
			}
			results = page.Results
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &results, nil
	})
	if err != nil {
		return nil, err
	}
	return *trailers, nil
}
