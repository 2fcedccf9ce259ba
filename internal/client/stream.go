package client

import (
	"context"
	"sync"

	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
)

// pageBatchSize controls how many pages are fetched in parallel at once.
const pageBatchSize = 5

// defaultRemotePageSize is the page size the catalog applies when none is requested.
const defaultRemotePageSize = 20

// StreamGames streams the games of a query across pages.
// Page 1 is fetched first to learn the total count, then pages 2..maxPages are
// fetched in parallel batches of pageBatchSize. Games are deduplicated by ID on
// the fly. A failing page is reported in-band and the remaining pages still stream.
func (c *client) StreamGames(ctx context.Context, query models.GameQuery, maxPages int) <-chan models.StreamResult[models.Game] {
	ch := make(chan models.StreamResult[models.Game])

	go func() {
		defer close(ch)
		logger := config.GetLogger()

		if maxPages < 1 {
			maxPages = 1
		}
		pageSize := query.PageSize
		if pageSize <= 0 {
			pageSize = defaultRemotePageSize
		}

		var seen sync.Map
		emit := func(page int, games []models.Game) bool {
			for _, g := range games {
				if _, dup := seen.LoadOrStore(g.ID, struct{}{}); dup {
					continue
				}
				select {
				case ch <- models.StreamResult[models.Game]{Value: g, Page: page}:
				case <-ctx.Done():
					return false
				}
			}
			return true
		}
		fail := func(page int, err error) {
			select {
			case ch <- models.StreamResult[models.Game]{Page: page, Err: err}:
			case <-ctx.Done():
			}
		}

		// --- Fetch page 1 ---
		first := query
		first.Page = 1
		firstPage, err := c.ListGames(ctx, first)
		if err != nil {
			fail(1, err)
			return
		}
		if !emit(1, firstPage.Results) {
			return
		}

		// --- Discover total pages ---
		lastPage := (firstPage.Count + pageSize - 1) / pageSize
		if lastPage > maxPages {
			lastPage = maxPages
		}
		if lastPage <= 1 || !firstPage.HasNext() {
			return
		}
		logger.Debug().Int("count", firstPage.Count).Int("lastPage", lastPage).Msg("Streaming remaining game pages")

		// --- Fetch pages 2..lastPage in parallel batches ---
		for batchStart := 2; batchStart <= lastPage; batchStart += pageBatchSize {
			batchEnd := min(batchStart+pageBatchSize-1, lastPage)

			var wg sync.WaitGroup
			for page := batchStart; page <= batchEnd; page++ {
				q := query
				q.Page = page
				wg.Add(1)
				go func() {
					defer wg.Done()
					result, err := c.ListGames(ctx, q)
					if err != nil {
						fail(q.Page, err)
						return
					}
					emit(q.Page, result.Results)
				}()
			}
			wg.Wait()

			// Check if context was cancelled between batches
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return ch
}
