package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/models"
)

const gameListFixture = `{
  "count": 3120,
  "next": "https://api.rawg.io/api/games?page=2&search=zelda",
  "previous": null,
  "results": [
    {
      "id": 22511,
      "slug": "the-legend-of-zelda-breath-of-the-wild",
      "name": "The Legend of Zelda: Breath of the Wild",
      "released": "2017-03-02",
      "background_image": "https://media.rawg.io/media/games/cc1/botw.jpg",
      "rating": 4.5,
      "metacritic": 97,
      "genres": [{"id": 4, "name": "Action", "slug": "action"}, {"id": 3, "name": "", "slug": ""}]
    },
    {
      "id": 0,
      "slug": "ghost",
      "name": "Entry without id"
    },
    {
      "id": 41494,
      "slug": "untitled",
      "name": ""
    },
    {
      "id": 58386,
      "slug": "zelda-ii",
      "name": "Zelda II",
      "released": "TBA",
      "background_image": null,
      "rating": null,
      "metacritic": null
    },
    {
      "id": 99,
      "slug": "ftp",
      "name": "Weird image",
      "background_image": "ftp://example.com/x.png"
    }
  ]
}`

func TestGameParser_ParseList(t *testing.T) {
	t.Parallel()
	page, err := NewGameParser().ParseList(strings.NewReader(gameListFixture))
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}

	if page.Count != 3120 {
		t.Errorf("Expected count 3120, got %d", page.Count)
	}
	if !page.HasNext() {
		t.Error("Expected a next page")
	}
	if page.Previous != "" {
		t.Errorf("Expected empty previous, got %q", page.Previous)
	}

	released := time.Date(2017, 3, 2, 0, 0, 0, 0, time.UTC)
	expected := []models.Game{
		{
			ID:         22511,
			Slug:       "the-legend-of-zelda-breath-of-the-wild",
			Name:       "The Legend of Zelda: Breath of the Wild",
			ImageURL:   "https://media.rawg.io/media/games/cc1/botw.jpg",
			Released:   &released,
			Rating:     4.5,
			Metacritic: 97,
			Genres:     []models.GenreRef{{ID: 4, Name: "Action", Slug: "action"}},
		},
		{ID: 58386, Slug: "zelda-ii", Name: "Zelda II"},
		{ID: 99, Slug: "ftp", Name: "Weird image"},
	}
	if diff := cmp.Diff(expected, page.Results); diff != "" {
		t.Errorf("Unexpected games (-want +got):\n%s", diff)
	}
}

func TestGameParser_ParseList_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"results": [`},
		{"missing results", `{"count": 10}`},
		{"null results", `{"count": 10, "results": null}`},
		{"results not an array", `{"results": {"id": 1}}`},
		{"html error page", `<html><body>Bad gateway</body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page, err := NewGameParser().ParseList(strings.NewReader(tt.body))
			if err == nil {
				t.Fatalf("Expected error, got page %+v", page)
			}
			if !errors.Is(err, &apperrors.ErrMalformedPayload{}) {
				t.Errorf("Expected ErrMalformedPayload, got %T: %v", err, err)
			}
		})
	}
}

func TestGameParser_ParseList_EmptyResults(t *testing.T) {
	t.Parallel()
	page, err := NewGameParser().ParseList(strings.NewReader(`{"count": 0, "results": []}`))
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	if page.Results == nil || len(page.Results) != 0 {
		t.Errorf("Expected an empty non-nil result list, got %#v", page.Results)
	}
}

func TestGameDetailParser_ParseSingle(t *testing.T) {
	t.Parallel()
	body := `{
	  "id": 3498,
	  "slug": "grand-theft-auto-v",
	  "name": "Grand Theft Auto V",
	  "released": "2013-09-17",
	  "background_image": "https://media.rawg.io/media/games/gta5.jpg",
	  "rating": 4.47,
	  "metacritic": 92,
	  "description_raw": "Rockstar Games went bigger.",
	  "website": "http://www.rockstargames.com/V/",
	  "platforms": [{"platform": {"id": 4, "name": "PC", "slug": "pc"}}, {"platform": {"id": 0, "name": "", "slug": ""}}],
	  "publishers": [{"id": 2155, "name": "Rockstar Games", "slug": "rockstar-games"}],
	  "developers": [{"id": 3524, "name": "Rockstar North", "slug": "rockstar-north"}, {"id": 10, "name": "", "slug": "x"}]
	}`

	detail, err := NewGameDetailParser().ParseSingle(strings.NewReader(body))
	if err != nil {
		t.Fatalf("ParseSingle failed: %v", err)
	}

	if detail.ID != 3498 || detail.Name != "Grand Theft Auto V" {
		t.Errorf("Unexpected identity: %d %q", detail.ID, detail.Name)
	}
	if detail.ReleaseYear() != 2013 {
		t.Errorf("Expected release year 2013, got %d", detail.ReleaseYear())
	}
	if diff := cmp.Diff([]string{"PC"}, detail.Platforms); diff != "" {
		t.Errorf("Unexpected platforms (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Rockstar Games"}, detail.Publishers); diff != "" {
		t.Errorf("Unexpected publishers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Rockstar North"}, detail.Developers); diff != "" {
		t.Errorf("Unexpected developers (-want +got):\n%s", diff)
	}
	if detail.DescriptionRaw != "Rockstar Games went bigger." {
		t.Errorf("Unexpected description %q", detail.DescriptionRaw)
	}
}

func TestGameDetailParser_ParseSingle_InvalidID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"zero id", `{"id": 0, "name": "Nothing"}`},
		{"negative id", `{"id": -4, "name": "Nothing"}`},
		{"missing name", `{"id": 12}`},
		{"not json", `Not found.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewGameDetailParser().ParseSingle(strings.NewReader(tt.body))
			if !errors.Is(err, &apperrors.ErrMalformedPayload{}) {
				t.Errorf("Expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}
