// Package tui implements the terminal catalog browser: a search box driven by a
// search controller, its result list, full listings and game details.
package tui

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Belphemur/GameHub/internal/catalog"
	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/parser"
	"github.com/Belphemur/GameHub/internal/search"
)

type mode int

const (
	modeSearch mode = iota
	modeList
	modeDetail
)

// detailSummaryLength bounds the description shown on the detail screen
const detailSummaryLength = 600

var printer = message.NewPrinter(language.English)

type snapshotMsg search.Snapshot
type listMsg catalog.GamesResult
type detailMsg catalog.GameResult

// Model is the bubbletea model of the browser. Close must be called once the
// program exits.
type Model struct {
	service    *catalog.Service
	controller *search.Controller
	view       *catalog.ListView
	snapshots  chan search.Snapshot
	done       chan struct{}
	cancelList context.CancelFunc
	cancelGame context.CancelFunc

	input  textinput.Model
	table  table.Model
	styles styles

	mode   mode
	back   mode
	snap   search.Snapshot
	cursor int // -1 while the input line is selected

	params      catalog.ListParams
	list        catalog.GamesResult
	listLoading bool

	detail        catalog.GameResult
	detailLoading bool
}

// New creates a browser over service. The OnChange and OnNavigate hooks of
// opts are replaced.
func New(service *catalog.Service, opts search.Options) Model {
	snapshots := make(chan search.Snapshot, 1)
	opts.OnChange = func(s search.Snapshot) { publish(snapshots, s) }
	opts.OnNavigate = nil

	input := textinput.New()
	input.Placeholder = "Search games"
	input.CharLimit = 100
	input.Width = 50
	input.Focus()

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 40},
			{Title: "Released", Width: 12},
			{Title: "Rating", Width: 8},
			{Title: "Metascore", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return Model{
		service:    service,
		controller: search.NewController(service, opts),
		view:       catalog.NewListView(service, nil),
		snapshots:  snapshots,
		done:       make(chan struct{}),
		input:      input,
		table:      t,
		styles:     defaultStyles(),
		cursor:     -1,
		params:     catalog.ListParams{}.Normalize(),
	}
}

// publish keeps only the newest snapshot for the UI loop
func publish(ch chan search.Snapshot, s search.Snapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Close releases the search session and pending lookups
func (m Model) Close() {
	select {
	case <-m.done:
		return
	default:
	}
	close(m.done)
	if m.cancelList != nil {
		m.cancelList()
	}
	if m.cancelGame != nil {
		m.cancelGame()
	}
	m.controller.Close()
}

// Init starts the cursor blink and the snapshot listener
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForSnapshot())
}

func (m Model) waitForSnapshot() tea.Cmd {
	snapshots, done := m.snapshots, m.done
	return func() tea.Msg {
		select {
		case s := <-snapshots:
			return snapshotMsg(s)
		case <-done:
			return nil
		}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-8, 5))
		return m, nil

	case snapshotMsg:
		m.snap = search.Snapshot(msg)
		if m.cursor >= len(m.snap.Results) || !m.snap.Open {
			m.cursor = -1
		}
		return m, m.waitForSnapshot()

	case listMsg:
		m.list = catalog.GamesResult(msg)
		m.listLoading = false
		m.table.SetRows(gameRows(m.list.Games))
		m.table.SetCursor(0)
		return m, nil

	case detailMsg:
		m.detail = catalog.GameResult(msg)
		m.detailLoading = false
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Close()
			return m, tea.Quit
		}
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateSearch(msg)
		}
	}

	if m.mode == modeSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.snap.Open {
			m.controller.Dismiss()
			m.cursor = -1
			return m, nil
		}
		m.Close()
		return m, tea.Quit

	case tea.KeyUp:
		if m.cursor >= 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		if !m.snap.Open {
			m.controller.Focus()
			return m, nil
		}
		if m.cursor < len(m.snap.Results)-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyEnter:
		if m.snap.Open && m.cursor >= 0 && m.cursor < len(m.snap.Results) {
			game := m.snap.Results[m.cursor]
			m.controller.Select(game)
			m.cursor = -1
			return m, m.openDetail(game.ID, modeSearch)
		}
		path, ok := m.controller.Accept()
		if !ok {
			return m, nil
		}
		return m, m.openList(paramsFromPath(path))
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.cursor = -1
		m.controller.Update(value)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.mode = modeSearch
		m.input.Focus()
		return m, nil
	case "s":
		return m, m.openList(m.params.With("sort", nextSort(m.params.Sort)))
	case "enter":
		i := m.table.Cursor()
		if i < 0 || i >= len(m.list.Games) {
			return m, nil
		}
		return m, m.openDetail(m.list.Games[i].ID, modeList)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		if m.cancelGame != nil {
			m.cancelGame()
		}
		m.mode = m.back
		if m.mode == modeSearch {
			m.input.Focus()
		}
	}
	return m, nil
}

// openList switches to the full listing and refreshes it. A refresh
// superseded by a newer one yields no message.
func (m *Model) openList(params catalog.ListParams) tea.Cmd {
	if m.cancelList != nil {
		m.cancelList()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelList = cancel
	m.params = params.Normalize()
	m.mode = modeList
	m.listLoading = true
	m.input.Blur()

	view, p := m.view, m.params
	return func() tea.Msg {
		if !view.Refresh(ctx, p) {
			return nil
		}
		result, _ := view.Snapshot()
		return listMsg(result)
	}
}

func (m *Model) openDetail(id int, back mode) tea.Cmd {
	if m.cancelGame != nil {
		m.cancelGame()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelGame = cancel
	m.mode = modeDetail
	m.back = back
	m.detailLoading = true
	m.detail = catalog.GameResult{}
	m.input.Blur()

	service := m.service
	return func() tea.Msg {
		result := service.Game(ctx, id)
		if ctx.Err() != nil {
			return nil
		}
		return detailMsg(result)
	}
}

// paramsFromPath reads the list state from a navigation path like /games?search=x
func paramsFromPath(path string) catalog.ListParams {
	u, err := url.Parse(path)
	if err != nil {
		return catalog.ListParams{}.Normalize()
	}
	return catalog.ParseListParams(u.Query())
}

func nextSort(current string) string {
	for i, key := range catalog.SortKeys {
		if key == current {
			return catalog.SortKeys[(i+1)%len(catalog.SortKeys)]
		}
	}
	return catalog.SortKeys[0]
}

func gameRows(games []models.Game) []table.Row {
	rows := make([]table.Row, len(games))
	for i, g := range games {
		rows[i] = table.Row{g.Name, released(g), rating(g.Rating), metascore(g.Metacritic)}
	}
	return rows
}

func released(g models.Game) string {
	if g.Released == nil {
		return "TBA"
	}
	return g.Released.Format("2006-01-02")
}

func rating(r float64) string {
	if r <= 0 {
		return "-"
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}

func metascore(score int) string {
	if score <= 0 {
		return "-"
	}
	return strconv.Itoa(score)
}

// View renders the current screen
func (m Model) View() string {
	switch m.mode {
	case modeList:
		return m.listView()
	case modeDetail:
		return m.detailView()
	default:
		return m.searchView()
	}
}

func (m Model) searchView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("GameHub") + "\n\n")
	b.WriteString(m.input.View() + "\n")

	if m.snap.Open {
		switch {
		case m.snap.State == search.Loading:
			b.WriteString(m.styles.Muted.Render("Searching...") + "\n")
		case m.snap.State == search.Ready && len(m.snap.Results) == 0 && m.snap.Err == nil:
			b.WriteString(m.styles.Muted.Render("No games found") + "\n")
		}
		if m.snap.Err != nil {
			b.WriteString(m.styles.Error.Render("Search failed, showing previous results") + "\n")
		}
		for i, g := range m.snap.Results {
			line := fmt.Sprintf("%s (%s)", g.Name, released(g))
			if i == m.cursor {
				b.WriteString(m.styles.Selected.Render("> "+line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	b.WriteString("\n" + m.styles.Help.Render("enter: open • ↑/↓: choose • esc: close • ctrl+c: quit"))
	return b.String()
}

func (m Model) listView() string {
	var b strings.Builder
	p := m.params
	header := fmt.Sprintf("Games • sort: %s • genre: %s • year: %s", p.Sort, p.Genre, p.Year)
	if p.Search != "" {
		header += fmt.Sprintf(" • search: %q", p.Search)
	}
	b.WriteString(m.styles.Title.Render(header) + "\n")

	switch {
	case m.listLoading:
		b.WriteString(m.styles.Muted.Render("Loading...") + "\n")
	case m.list.Err != nil:
		b.WriteString(m.styles.Error.Render("Games could not be loaded") + "\n")
	case len(m.list.Games) == 0:
		b.WriteString(m.styles.Muted.Render("No games found") + "\n")
	default:
		b.WriteString(m.styles.Muted.Render(printer.Sprintf("%d games", m.list.Total)) + "\n")
	}
	b.WriteString(m.table.View() + "\n")
	b.WriteString(m.styles.Help.Render("enter: details • s: change sort • esc: back"))
	return b.String()
}

func (m Model) detailView() string {
	if m.detailLoading {
		return m.styles.Muted.Render("Loading...")
	}
	help := "\n" + m.styles.Help.Render("esc: back")
	if m.detail.NotFound || m.detail.Game == nil {
		return m.styles.Error.Render("Game Not Found") + help
	}

	g := m.detail.Game
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(g.Name) + "\n")
	fmt.Fprintf(&b, "Released:  %s\n", released(g.Game))
	fmt.Fprintf(&b, "Rating:    %s / 5\n", rating(g.Rating))
	fmt.Fprintf(&b, "Metascore: %s\n", metascore(g.Metacritic))
	if len(g.Genres) > 0 {
		names := make([]string, len(g.Genres))
		for i, ref := range g.Genres {
			names[i] = ref.Name
		}
		fmt.Fprintf(&b, "Genres:    %s\n", strings.Join(names, ", "))
	}
	if len(g.Platforms) > 0 {
		fmt.Fprintf(&b, "Platforms: %s\n", strings.Join(g.Platforms, ", "))
	}
	if len(m.detail.Trailers) > 0 {
		fmt.Fprintf(&b, "Trailers:  %d\n", len(m.detail.Trailers))
	}
	if g.DescriptionRaw != "" {
		b.WriteString("\n" + m.styles.Box.Render(parser.Summarize(g.DescriptionRaw, detailSummaryLength)) + "\n")
	}
	b.WriteString(help)
	return b.String()
}
