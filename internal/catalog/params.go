package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Belphemur/GameHub/internal/models"
)

// Navigational sort keys and their remote ordering directives
const (
	SortNewest  = "newest"
	SortOldest  = "oldest"
	SortPopular = "popular"
)

// All disables the genre or year constraint
const All = "all"

// DefaultPageSize is the number of games fetched for a list page
const DefaultPageSize = 40

var sortOrdering = map[string]string{
	SortNewest:  models.OrderReleasedDesc,
	SortOldest:  models.OrderReleasedAsc,
	SortPopular: models.OrderRatingDesc,
}

// SortKeys lists the accepted sort keys in display order
var SortKeys = []string{SortNewest, SortOldest, SortPopular}

// ListParams is the navigational state of the game list: it lives in the page
// URL and fully determines the remote query.
type ListParams struct {
	Sort     string
	Genre    string
	Year     string
	Search   string
	PageSize int
}

// ParseListParams reads list state from a URL query and normalizes it
func ParseListParams(values url.Values) ListParams {
	return ListParams{
		Sort:   values.Get("sort"),
		Genre:  values.Get("genre"),
		Year:   values.Get("year"),
		Search: values.Get("search"),
	}.Normalize()
}

// Normalize applies defaults: unknown sorts fall back to newest, empty genre
// and invalid years mean all.
func (p ListParams) Normalize() ListParams {
	p.Sort = strings.ToLower(strings.TrimSpace(p.Sort))
	if _, ok := sortOrdering[p.Sort]; !ok {
		p.Sort = SortNewest
	}
	p.Genre = strings.TrimSpace(p.Genre)
	if p.Genre == "" || strings.EqualFold(p.Genre, All) {
		p.Genre = All
	}
	p.Year = strings.TrimSpace(p.Year)
	if _, ok := parseYear(p.Year); !ok {
		p.Year = All
	}
	p.Search = strings.TrimSpace(p.Search)
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Query converts the state to the remote query. Identical params always yield
// an identical query.
func (p ListParams) Query() models.GameQuery {
	p = p.Normalize()
	q := models.GameQuery{
		Search:   p.Search,
		Ordering: sortOrdering[p.Sort],
		PageSize: p.PageSize,
	}
	if p.Genre != All {
		q.Genres = p.Genre
	}
	if year, ok := parseYear(p.Year); ok {
		q.Dates = YearRange(year, year)
	}
	return q
}

// Values renders the state back to a URL query. Defaults and "all" are left
// out so that the canonical URL of the unfiltered list is bare.
func (p ListParams) Values() url.Values {
	p = p.Normalize()
	v := url.Values{}
	if p.Sort != SortNewest {
		v.Set("sort", p.Sort)
	}
	if p.Genre != All {
		v.Set("genre", p.Genre)
	}
	if p.Year != All {
		v.Set("year", p.Year)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v
}

// With returns a copy with one navigational key changed. Unknown keys are ignored.
func (p ListParams) With(key, value string) ListParams {
	switch key {
	case "sort":
		p.Sort = value
	case "genre":
		p.Genre = value
	case "year":
		p.Year = value
	case "search":
		p.Search = value
	}
	return p.Normalize()
}

// URL returns the list page URL for the state
func (p ListParams) URL() string {
	if encoded := p.Values().Encode(); encoded != "" {
		return "/games?" + encoded
	}
	return "/games"
}

// YearRange returns the closed date range covering the calendar years from..to
func YearRange(from, to int) string {
	return fmt.Sprintf("%04d-01-01,%04d-12-31", from, to)
}

func parseYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1000 {
		return 0, false
	}
	return year, true
}
