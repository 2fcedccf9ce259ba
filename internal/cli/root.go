// Package cli wires the gamehub commands: the web and gRPC server, catalog
// listings on the command line, the terminal browser and configuration output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Belphemur/GameHub/internal/cache"
	"github.com/Belphemur/GameHub/internal/client"
	"github.com/Belphemur/GameHub/internal/config"
)

// detailCacheGroup names the cache holding game, trailer and genre lookups
const detailCacheGroup = "detail"

// NewRootCommand builds the gamehub command tree
func NewRootCommand(version string) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "gamehub",
		Short:         "Discover games, genres and trailers from the RAWG catalog",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries command output
			config.SetLogOutput(cmd.ErrOrStderr())
			_, err := config.Load(cfgFile)
			return err
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yaml in . or ./config)")

	root.AddCommand(
		newServeCommand(version),
		newGamesCommand(),
		newBrowseCommand(),
		newConfigCommand(),
	)
	return root
}

// Execute runs the command tree with os.Args
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// loadedConfig returns the configuration loaded by the root command, validated
// for commands that talk to the catalog
func loadedConfig() (*config.Config, error) {
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newCatalogClient(cfg *config.Config) (client.Client, error) {
	detailCache, err := cache.NewFromConfig(cfg, detailCacheGroup)
	if err != nil {
		return nil, err
	}
	return client.NewClient(cfg, detailCache), nil
}
