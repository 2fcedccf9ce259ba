package models

// Page is one page of a paginated remote collection
type Page[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []T    `json:"results"`
}

// HasNext reports whether the remote service advertises a following page
func (p *Page[T]) HasNext() bool {
	return p != nil && p.Next != ""
}
