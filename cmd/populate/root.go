package main

import (
	"os"

	"portfolio-backend/internal/app"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "populate",
	Short: "Bulk-load portfolio skills",
	Long: `Bulk-load portfolio skills.

Either trigger the admin endpoints of a running server, or load a data file
straight into the configured store.

Examples:
  populate trigger populate --url http://localhost:8080
  populate trigger reset
  populate load --file data/skills-data.json
  populate load --file skills.yaml --reset`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func newLogger() *log.Logger {
	return app.NewLogger(os.Stderr, logLevel, "")
}
