package catalog

import (
	"context"
	"sync"

	"github.com/Belphemur/GameHub/internal/apperrors"
)

// ListView is a long-lived game list whose filters change over time. Every
// Refresh is numbered; a response is applied only if no newer Refresh was
// issued in the meantime, so an out-of-order slow response can never replace
// fresher results.
type ListView struct {
	service  *Service
	onChange func(GamesResult)

	mu      sync.Mutex
	issued  uint64
	current GamesResult
	loading bool
}

// NewListView creates a view. onChange, if set, is called with every applied
// result while the view lock is held; it must not call back into the view.
func NewListView(service *Service, onChange func(GamesResult)) *ListView {
	return &ListView{
		service:  service,
		onChange: onChange,
		current:  GamesResult{Params: ListParams{}.Normalize()},
	}
}

// Refresh fetches the list for params and applies it unless superseded.
// It reports whether the response was applied.
func (v *ListView) Refresh(ctx context.Context, params ListParams) bool {
	v.mu.Lock()
	v.issued++
	seq := v.issued
	v.loading = true
	v.mu.Unlock()

	result := v.service.Games(ctx, params)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.issued {
		return false
	}
	v.loading = false
	if apperrors.IsCanceled(result.Err) {
		return false
	}
	v.current = result
	if v.onChange != nil {
		v.onChange(result)
	}
	return true
}

// Snapshot returns the last applied result and whether a refresh is pending
func (v *ListView) Snapshot() (GamesResult, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current, v.loading
}
