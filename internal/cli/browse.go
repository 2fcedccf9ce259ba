package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Belphemur/GameHub/internal/catalog"
	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/search"
	"github.com/Belphemur/GameHub/internal/tui"
)

func newBrowseCommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal with live search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadedConfig()
			if err != nil {
				return err
			}

			// The terminal belongs to the UI
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			config.SetLogOutput(logOut)

			c, err := newCatalogClient(cfg)
			if err != nil {
				return fmt.Errorf("create catalog client: %w", err)
			}
			defer func() { _ = c.Close() }()

			model := tui.New(catalog.NewService(c), search.OptionsFromConfig(cfg))
			defer model.Close()

			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while browsing")
	return cmd
}
