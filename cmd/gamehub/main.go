package main

import (
	"os"

	"github.com/Belphemur/GameHub/internal/cli"
	"github.com/Belphemur/GameHub/internal/config"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		// browse may have silenced the logger
		config.SetLogOutput(os.Stderr)
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
