package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/models"
)

func TestService_Games(t *testing.T) {
	source := &fakeSource{
		listGames: func(ctx context.Context, q models.GameQuery) (*models.Page[models.Game], error) {
			return &models.Page[models.Game]{Count: 812, Results: []models.Game{game(1, true), game(2, false), game(1, true), game(3, true)}}, nil
		},
	}
	svc := NewService(source)

	result := svc.Games(context.Background(), ListParams{Sort: "popular", Genre: "action", Year: "2020"})
	if result.Err != nil {
		t.Fatalf("Unexpected error: %v", result.Err)
	}
	var ids []int
	for _, g := range result.Games {
		ids = append(ids, g.ID)
	}
	if diff := cmp.Diff([]int{1, 3}, ids); diff != "" {
		t.Errorf("Unexpected displayable games (-want +got):\n%s", diff)
	}
	if result.Total != 812 {
		t.Errorf("Expected total 812, got %d", result.Total)
	}

	queries := source.recorded()
	expected := models.GameQuery{Ordering: "-rating", Genres: "action", Dates: "2020-01-01,2020-12-31", PageSize: 40}
	if len(queries) != 1 || queries[0] != expected {
		t.Errorf("Expected a single query %+v, got %+v", expected, queries)
	}
}

func TestService_Games_Failure(t *testing.T) {
	boom := &apperrors.ErrUpstream{Endpoint: "games", StatusCode: 500}
	source := &fakeSource{
		listGames: func(ctx context.Context, q models.GameQuery) (*models.Page[models.Game], error) {
			return nil, boom
		},
	}

	result := NewService(source).Games(context.Background(), ListParams{})
	if !errors.Is(result.Err, boom) {
		t.Errorf("Expected the failure to be carried in the result, got %v", result.Err)
	}
	if result.Games == nil || len(result.Games) != 0 {
		t.Errorf("Expected an empty non-nil list, got %#v", result.Games)
	}
}

func TestService_SearchGames(t *testing.T) {
	source := &fakeSource{
		listGames: func(ctx context.Context, q models.GameQuery) (*models.Page[models.Game], error) {
			if q.Search != "zelda" || q.PageSize != 5 || q.Ordering != "" {
				t.Errorf("Unexpected search query %+v", q)
			}
			return pageOf(game(1, true), game(2, true), game(3, false), game(4, true), game(5, true)), nil
		},
	}

	games, err := NewService(source).SearchGames(context.Background(), "zelda", 5)
	if err != nil {
		t.Fatalf("SearchGames failed: %v", err)
	}
	if len(games) != 4 {
		t.Errorf("Expected 4 displayable results, got %d", len(games))
	}
}

func TestService_Game(t *testing.T) {
	detail := &models.GameDetail{Game: models.Game{ID: 7, Name: "Portal"}}
	source := &fakeSource{
		games:    map[int]*models.GameDetail{7: detail},
		trailers: map[int][]models.Trailer{7: {{ID: 1, VideoURL: "https://cdn/v.mp4"}}},
	}
	svc := NewService(source)

	result := svc.Game(context.Background(), 7)
	if result.NotFound || result.Game != detail || len(result.Trailers) != 1 {
		t.Errorf("Unexpected result %+v", result)
	}

	missing := svc.Game(context.Background(), 8)
	if !missing.NotFound || missing.Game != nil {
		t.Errorf("Expected not-found state, got %+v", missing)
	}
	if !errors.Is(missing.Err, &apperrors.ErrNotFound{}) {
		t.Errorf("Expected ErrNotFound, got %v", missing.Err)
	}
}

func TestService_Game_TrailerFailureIsTolerated(t *testing.T) {
	source := &fakeSource{
		games:       map[int]*models.GameDetail{7: {Game: models.Game{ID: 7, Name: "Portal"}}},
		trailersErr: errors.New("timeout"),
	}

	result := NewService(source).Game(context.Background(), 7)
	if result.NotFound || result.Game == nil {
		t.Fatalf("Expected the detail to render, got %+v", result)
	}
	if result.Trailers == nil || len(result.Trailers) != 0 {
		t.Errorf("Expected an empty trailer list, got %#v", result.Trailers)
	}
}

func TestService_Genre(t *testing.T) {
	source := &fakeSource{
		genres: map[string]*models.Genre{"action": {ID: 4, Name: "Action", Slug: "action", GamesCount: 1234}},
		listGames: func(ctx context.Context, q models.GameQuery) (*models.Page[models.Game], error) {
			return pageOf(game(1, true), game(2, false)), nil
		},
	}
	svc := NewService(source)

	result := svc.Genre(context.Background(), "action")
	if result.NotFound || result.Genre == nil || result.Genre.Name != "Action" {
		t.Fatalf("Unexpected result %+v", result)
	}
	if len(result.TopGames) != 1 {
		t.Errorf("Expected 1 displayable top game, got %d", len(result.TopGames))
	}

	expected := models.GameQuery{Genres: "action", Ordering: "-metacritic", PageSize: 20}
	if queries := source.recorded(); len(queries) != 1 || queries[0] != expected {
		t.Errorf("Expected query %+v, got %+v", expected, queries)
	}

	if missing := svc.Genre(context.Background(), "nope"); !missing.NotFound {
		t.Errorf("Expected not-found state, got %+v", missing)
	}
}

func TestService_Home(t *testing.T) {
	source := &fakeSource{
		genres: map[string]*models.Genre{"action": {ID: 4, Name: "Action", Slug: "action"}},
		listGames: func(ctx context.Context, q models.GameQuery) (*models.Page[models.Game], error) {
			switch q.Ordering {
			case models.OrderReleasedDesc:
				return pageOf(game(1, true), game(2, true)), nil
			case models.OrderRatingsCountDesc:
				return nil, errors.New("featured unavailable")
			}
			t.Errorf("Unexpected query %+v", q)
			return pageOf(), nil
		},
	}
	svc := NewService(source)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	result := svc.Home(context.Background())
	if len(result.Recent) != 2 {
		t.Errorf("Expected 2 recent games, got %d", len(result.Recent))
	}
	if result.Featured == nil || len(result.Featured) != 0 {
		t.Errorf("Expected the failed section to be empty, got %#v", result.Featured)
	}
	if len(result.Genres) != 1 {
		t.Errorf("Expected 1 genre, got %d", len(result.Genres))
	}

	want := map[string]models.GameQuery{
		models.OrderReleasedDesc:     {Dates: "2025-01-01,2025-12-31", Ordering: "-released", PageSize: 20},
		models.OrderRatingsCountDesc: {Dates: "2023-01-01,2025-12-31", Ordering: "-ratings_count", PageSize: 10},
	}
	for _, q := range source.recorded() {
		if q != want[q.Ordering] {
			t.Errorf("Unexpected home query %+v, want %+v", q, want[q.Ordering])
		}
	}
}

func TestService_Genres_Failure(t *testing.T) {
	source := &fakeSource{
		listGenres: func(ctx context.Context) (*models.Page[models.Genre], error) {
			return nil, &apperrors.ErrUpstream{Endpoint: "genres", StatusCode: 503}
		},
	}
	if genres := NewService(source).Genres(context.Background()); genres == nil || len(genres) != 0 {
		t.Errorf("Expected an empty non-nil menu, got %#v", genres)
	}
}
