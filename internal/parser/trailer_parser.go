package parser

import (
	"io"

	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
)

// TrailerParser implements ListParser for the game movies endpoint
type TrailerParser struct{}

// NewTrailerParser creates a new trailer parser
func NewTrailerParser() ListParser[models.Trailer] {
	return &TrailerParser{}
}

// ParseList decodes the trailers of a game. Entries without a playable video are dropped.
func (p *TrailerParser) ParseList(body io.Reader) (*models.Page[models.Trailer], error) {
	logger := config.GetLogger()

	envelope, err := decodeEnvelope[models.RawgMovie](body, "trailer list")
	if err != nil {
		return nil, err
	}

	trailers := make([]models.Trailer, 0, len(*envelope.Results))
	for _, raw := range *envelope.Results {
		video := httpURL(&raw.Data.Max)
		if video == "" {
			video = httpURL(&raw.Data.Q480)
		}
		if raw.ID <= 0 || video == "" {
			logger.Debug().Int("trailerID", raw.ID).Msg("Dropping trailer without video")
			continue
		}
		trailers = append(trailers, models.Trailer{
			ID:         raw.ID,
			Name:       raw.Name,
			PreviewURL: httpURL(&raw.Preview),
			VideoURL:   video,
		})
	}
	return newPage(envelope, trailers), nil
}
