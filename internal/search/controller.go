// Package search implements search-as-you-type: keystrokes are debounced into
// remote queries and only the response to the latest query is ever shown.
package search

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Belphemur/GameHub/internal/apperrors"
	"github.com/Belphemur/GameHub/internal/catalog"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/metrics"
	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/reporting"
)

// Defaults used when Options leaves a field zero
const (
	DefaultDebounce = 400 * time.Millisecond
	DefaultPageSize = 5
)

// State is the lifecycle of the current query
type State int

const (
	// Idle: no query text, nothing scheduled or in flight.
	Idle State = iota
	// Scheduled: a query is waiting for the quiet period to elapse.
	Scheduled
	// Loading: a query is in flight.
	Loading
	// Ready: the last query completed; results (possibly stale after a failure) are shown.
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scheduled:
		return "scheduled"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Snapshot is what an observer renders
type Snapshot struct {
	State   State
	Text    string
	Results []models.Game
	// Open reports whether the results surface is visible.
	Open bool
	// Err is the failure of the last completed query, if any. Results then hold
	// the previous successful answer.
	Err error
}

// Searcher runs one remote search
type Searcher interface {
	SearchGames(ctx context.Context, query string, pageSize int) ([]models.Game, error)
}

// Options tunes a Controller
type Options struct {
	Debounce time.Duration
	PageSize int
	// OnChange is called with every new snapshot while the controller lock is
	// held; it must not call back into the controller.
	OnChange func(Snapshot)
	// OnNavigate is called with the destination path of Accept and Select.
	OnNavigate func(path string)
}

// OptionsFromConfig returns the options configured for live search
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{Debounce: cfg.SearchDebounce(), PageSize: cfg.SearchPageSize()}
}

// Controller is one search session. It is safe for concurrent use.
type Controller struct {
	searcher Searcher
	opts     Options
	root     context.Context
	stop     context.CancelFunc

	mu       sync.Mutex
	snap     Snapshot
	seq      uint64
	timer    *time.Timer
	inflight context.CancelFunc
	closed   bool
	running  sync.WaitGroup
}

// NewController creates a session. Close must be called to release it.
func NewController(searcher Searcher, opts Options) *Controller {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	root, stop := context.WithCancel(context.Background())
	metrics.SearchSessionsActive.Inc()
	return &Controller{searcher: searcher, opts: opts, root: root, stop: stop}
}

// Update handles a change of the query text. Blank text resets the session;
// anything else supersedes pending work and schedules a query after the quiet period.
func (c *Controller) Update(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.supersede()
	c.snap.Text = text
	c.snap.Err = nil

	query := strings.TrimSpace(text)
	if query == "" {
		c.snap.State = Idle
		c.snap.Results = nil
		c.snap.Open = false
		c.notify()
		return
	}

	seq := c.seq
	c.snap.State = Scheduled
	c.timer = time.AfterFunc(c.opts.Debounce, func() { c.run(seq, query) })
	c.notify()
}

// Accept commits the current text (Enter). It returns the list page to
// navigate to, or false when the text is blank.
func (c *Controller) Accept() (string, bool) {
	c.mu.Lock()
	query := strings.TrimSpace(c.snap.Text)
	if c.closed || query == "" {
		c.mu.Unlock()
		return "", false
	}
	c.settle()
	path := catalog.ListParams{Search: query}.URL()
	c.mu.Unlock()

	c.navigate(path)
	return path, true
}

// Select picks one result and returns its detail page
func (c *Controller) Select(game models.Game) string {
	path := "/games/" + strconv.Itoa(game.ID)
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return path
	}
	c.settle()
	c.mu.Unlock()

	c.navigate(path)
	return path
}

// Dismiss hides the results surface (Escape, blur, click outside). The text
// and any pending query are kept.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.snap.Open {
		return
	}
	c.snap.Open = false
	c.notify()
}

// Focus shows the results surface again when there is query text
func (c *Controller) Focus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.snap.Open || strings.TrimSpace(c.snap.Text) == "" {
		return
	}
	c.snap.Open = true
	c.notify()
}

// Snapshot returns the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Close stops the timer, cancels in-flight work and waits for it to unwind.
// Further calls are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.supersede()
	c.stop()
	c.mu.Unlock()

	c.running.Wait()
	metrics.SearchSessionsActive.Dec()
}

// run issues the query scheduled as seq, unless something newer happened meanwhile
func (c *Controller) run(seq uint64, query string) {
	c.mu.Lock()
	if c.closed || seq != c.seq {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(c.root)
	c.inflight = cancel
	c.timer = nil
	c.snap.State = Loading
	c.snap.Open = true
	c.running.Add(1)
	c.notify()
	c.mu.Unlock()

	defer c.running.Done()
	metrics.SearchQueriesTotal.WithLabelValues("issued").Inc()

	results, err := c.searcher.SearchGames(ctx, query, c.opts.PageSize)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.seq || apperrors.IsCanceled(err) {
		metrics.SearchQueriesTotal.WithLabelValues("superseded").Inc()
		return
	}
	c.inflight = nil
	c.snap.State = Ready

	if err != nil {
		metrics.SearchQueriesTotal.WithLabelValues("failed").Inc()
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("query", query).Msg("Live search failed, keeping previous results")
		reporting.Capture(err, map[string]string{"operation": "live_search"})
		c.snap.Err = err
		c.notify()
		return
	}

	metrics.SearchQueriesTotal.WithLabelValues("succeeded").Inc()
	c.snap.Results = models.DisplayableGames(results)
	c.snap.Err = nil
	c.notify()
}

// supersede invalidates the pending timer and the in-flight request. Caller holds mu.
func (c *Controller) supersede() {
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.inflight != nil {
		c.inflight()
		c.inflight = nil
	}
}

// settle drops pending work and closes the surface after a navigation. Caller holds mu.
func (c *Controller) settle() {
	c.supersede()
	if c.snap.State == Scheduled || c.snap.State == Loading {
		if len(c.snap.Results) > 0 {
			c.snap.State = Ready
		} else {
			c.snap.State = Idle
		}
	}
	c.snap.Open = false
	c.notify()
}

// notify publishes the current snapshot. Caller holds mu.
func (c *Controller) notify() {
	if c.opts.OnChange != nil {
		c.opts.OnChange(c.snap)
	}
}

func (c *Controller) navigate(path string) {
	if c.opts.OnNavigate != nil {
		c.opts.OnNavigate(path)
	}
}
