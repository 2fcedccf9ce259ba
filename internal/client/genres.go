package client

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/cache"
	"github.com/Belphemur/GameHub/internal/models"
)

// ListGenres fetches the genre collection
func (c *client) ListGenres(ctx context.Context, pageSize int) (*models.Page[models.Genre], error) {
	query := url.Values{}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	var page *models.Page[models.Genre]
	err := c.get(ctx, apiRequest{
		endpoint: "genres",
		path:     "/genres",
		query:    query,
		resource: "genres",
	}, func(body io.Reader) error {
		var err error
		page, err = c.genreParser.ParseList(body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// GetGenre fetches one genre by slug (the remote service also accepts a numeric ID)
func (c *client) GetGenre(ctx context.Context, slug string) (*models.Genre, error) {
	if slug == "" {
		return nil, apperrors.NewNotFoundError("genre", slug)
	}
	return cachedLookup(ctx, c, cache.Key("genre", slug), func() (*models.Genre, error) {
		var genre *models.Genre
		err := c.get(ctx, apiRequest{
			endpoint: "genre",
			path:     "/genres/" + url.PathEscape(slug),
			resource: "genre",
			id:       slug,
		}, func(body io.Reader) error {
			var err error
			genre, err = c.genreParser.ParseSingle(body)
			return err
		})
		return genre, err
	})
}
