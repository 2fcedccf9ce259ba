package parser

import (
	"io"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
)

// GameParser implements ListParser for game collections
type GameParser struct{}

// NewGameParser creates a new game collection parser
func NewGameParser() ListParser[models.Game] {
	return &GameParser{}
}

// ParseList decodes a game collection. Entries without an id or a name are dropped.
func (p *GameParser) ParseList(body io.Reader) (*models.Page[models.Game], error) {
	logger := config.GetLogger()

	envelope, err := decodeEnvelope[models.RawgGame](body, "game list")
	if err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, len(*envelope.Results))
	for i, raw := range *envelope.Results {
		game, ok := convertGame(raw)
		if !ok {
			logger.Debug().Int("index", i).Int("gameID", raw.ID).Str("name", raw.Name).Msg("Dropping invalid game entry")
			continue
		}
		games = append(games, game)
	}

	logger.Debug().Int("count", envelope.Count).Int("parsed", len(games)).Msg("Parsed game list")
	return newPage(envelope, games), nil
}

// GameDetailParser implements SingleResultParser for the single game endpoint
type GameDetailParser struct{}

// NewGameDetailParser creates a new game detail parser
func NewGameDetailParser() SingleResultParser[models.GameDetail] {
	return &GameDetailParser{}
}

// ParseSingle decodes a game detail payload
func (p *GameDetailParser) ParseSingle(body io.Reader) (*models.GameDetail, error) {
	raw, err := decodeSingle[models.RawgGameDetail](body, "game")
	if err != nil {
		return nil, err
	}
	game, ok := convertGame(raw.RawgGame)
	if !ok {
		return nil, apperrors.NewMalformedPayloadError("game", "missing id or name", nil)
	}

	detail := &models.GameDetail{
		Game:           game,
		DescriptionRaw: raw.DescriptionRaw,
		Website:        raw.Website,
		Publishers:     refNames(raw.Publishers),
		Developers:     refNames(raw.Developers),
	}
	for _, platform := range raw.Platforms {
		if platform.Platform.Name != "" {
			detail.Platforms = append(detail.Platforms, platform.Platform.Name)
		}
	}
	return detail, nil
}

func convertGame(raw models.RawgGame) (models.Game, bool) {
	if raw.ID <= 0 || raw.Name == "" {
		return models.Game{}, false
	}
	game := models.Game{
		ID:       raw.ID,
		Slug:     raw.Slug,
		Name:     raw.Name,
		ImageURL: httpURL(raw.BackgroundImage),
		Released: parseReleased(raw.Released),
	}
	if raw.Rating != nil && *raw.Rating > 0 {
		game.Rating = *raw.Rating
	}
	if raw.Metacritic != nil && *raw.Metacritic > 0 {
		game.Metacritic = *raw.Metacritic
	}
	for _, g := range raw.Genres {
		if g.Slug == "" || g.Name == "" {
			continue
		}
		game.Genres = append(game.Genres, models.GenreRef{ID: g.ID, Name: g.Name, Slug: g.Slug})
	}
	return game, true
}

func refNames(refs []models.RawgRef) []string {
	var names []string
	for _, r := range refs {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	}
	return names
}
