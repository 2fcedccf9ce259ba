package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Belphemur/GameHub/internal/catalog"
	"github.com/Belphemur/GameHub/internal/client"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
)

type gamesOptions struct {
	params   catalog.ListParams
	pages    int
	asJSON   bool
	withBare bool
}

func newGamesCommand() *cobra.Command {
	var opts gamesOptions

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List catalog games, filtered and sorted like the games page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.pages < 1 {
				return fmt.Errorf("--pages must be at least 1, got %d", opts.pages)
			}
			cfg, err := loadedConfig()
			if err != nil {
				return err
			}
			c, err := newCatalogClient(cfg)
			if err != nil {
				return fmt.Errorf("create catalog client: %w", err)
			}
			defer func() { _ = c.Close() }()

			return runGames(cmd, c, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.params.Sort, "sort", "", "sort order: "+strings.Join(catalog.SortKeys, ", "))
	flags.StringVar(&opts.params.Genre, "genre", "", "genre slug")
	flags.StringVar(&opts.params.Year, "year", "", "release year")
	flags.StringVar(&opts.params.Search, "search", "", "search text")
	flags.IntVar(&opts.pages, "pages", 1, "number of catalog pages to fetch")
	flags.BoolVar(&opts.asJSON, "json", false, "write one JSON object per game")
	flags.BoolVar(&opts.withBare, "all", false, "include games without an image")
	return cmd
}

func runGames(cmd *cobra.Command, c client.Client, opts gamesOptions) error {
	logger := config.GetLogger()
	query := opts.params.Normalize().Query()
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)

	var (
		games  []models.Game
		failed []error
	)
	seen := make(map[int]struct{})
	// pages that produced a game or an error; the stream stops at the last
	// remote page, which may come before opts.pages
	fetched := make(map[int]struct{})
	for result := range c.StreamGames(cmd.Context(), query, opts.pages) {
		fetched[result.Page] = struct{}{}
		if result.Err != nil {
			logger.Error().Err(result.Err).Int("page", result.Page).Msg("Failed to fetch games page")
			failed = append(failed, result.Err)
			continue
		}
		game := result.Value
		if !opts.withBare && !game.HasImage() {
			continue
		}
		if _, dup := seen[game.ID]; dup {
			continue
		}
		seen[game.ID] = struct{}{}

		if opts.asJSON {
			if err := enc.Encode(game); err != nil {
				return fmt.Errorf("write game %d: %w", game.ID, err)
			}
			continue
		}
		games = append(games, game)
	}

	if !opts.asJSON {
		if err := printGames(out, games); err != nil {
			return err
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d pages failed: %w", len(failed), len(fetched), errors.Join(failed...))
	}
	return nil
}

var printer = message.NewPrinter(language.English)

func printGames(w io.Writer, games []models.Game) error {
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		released := "TBA"
		if g.Released != nil {
			released = g.Released.Format("2006-01-02")
		}
		rating := "-"
		if g.Rating > 0 {
			rating = strconv.FormatFloat(g.Rating, 'f', 2, 64)
		}
		metascore := "-"
		if g.Metacritic > 0 {
			metascore = strconv.Itoa(g.Metacritic)
		}
		rows = append(rows, []string{strconv.Itoa(g.ID), g.Name, released, rating, metascore})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Released", "Rating", "Metascore").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), printer.Sprintf("%d games", len(games)))
	return err
}
