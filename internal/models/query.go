package models

import (
	"net/url"
	"strconv"
)

// Remote ordering directives understood by the catalog service
const (
	OrderReleasedDesc     = "-released"
	OrderReleasedAsc      = "released"
	OrderRatingDesc       = "-rating"
	OrderMetacriticDesc   = "-metacritic"
	OrderRatingsCountDesc = "-ratings_count"
)

// GameQuery holds the remote query parameters of a game collection request.
// Zero values are omitted from the request.
type GameQuery struct {
	Search   string
	Genres   string // Genre slug (exact-match filter key)
	Ordering string
	Dates    string // Closed range "YYYY-MM-DD,YYYY-MM-DD"
	PageSize int
	Page     int
}

// Values encodes the query as URL parameters. The access key is not part of it.
func (q GameQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Genres != "" {
		v.Set("genres", q.Genres)
	}
	if q.Ordering != "" {
		v.Set("ordering", q.Ordering)
	}
	if q.Dates != "" {
		v.Set("dates", q.Dates)
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}
