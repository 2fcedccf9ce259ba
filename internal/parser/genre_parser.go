package parser

import (
	"io"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
)

// GenreParser implements both ListParser and SingleResultParser for genres
type GenreParser struct{}

// NewGenreParser creates a new genre parser
func NewGenreParser() *GenreParser {
	return &GenreParser{}
}

// ParseList decodes the genre collection
func (p *GenreParser) ParseList(body io.Reader) (*models.Page[models.Genre], error) {
	logger := config.GetLogger()

	envelope, err := decodeEnvelope[models.RawgGenre](body, "genre list")
	if err != nil {
		return nil, err
	}

	genres := make([]models.Genre, 0, len(*envelope.Results))
	for i, raw := range *envelope.Results {
		genre, ok := convertGenre(raw)
		if !ok {
			logger.Debug().Int("index", i).Int("genreID", raw.ID).Msg("Dropping invalid genre entry")
			continue
		}
		genres = append(genres, genre)
	}
	return newPage(envelope, genres), nil
}

// ParseSingle decodes a single genre, converting its HTML description to text
func (p *GenreParser) ParseSingle(body io.Reader) (*models.Genre, error) {
	raw, err := decodeSingle[models.RawgGenre](body, "genre")
	if err != nil {
		return nil, err
	}
	genre, ok := convertGenre(*raw)
	if !ok {
		return nil, apperrors.NewMalformedPayloadError("genre", "missing id, name or slug", nil)
	}
	return &genre, nil
}

func convertGenre(raw models.RawgGenre) (models.Genre, bool) {
	if raw.ID <= 0 || raw.Name == "" || raw.Slug == "" {
		return models.Genre{}, false
	}
	count := raw.GamesCount
	if count < 0 {
		count = 0
	}
	return models.Genre{
		ID:          raw.ID,
		Name:        raw.Name,
		Slug:        raw.Slug,
		GamesCount:  count,
		ImageURL:    httpURL(raw.ImageBackground),
		Description: HTMLToText(raw.Description),
	}, true
}
