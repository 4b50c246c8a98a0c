package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-backend/internal/app"
	"portfolio-backend/internal/config"

	"github.com/spf13/cobra"
)

var (
	loadFile  string
	loadReset bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a JSON or YAML skills file into the configured store",
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVarP(&loadFile, "file", "f", "", "Skills data file (defaults to SKILLS_DATA_FILE)")
	loadCmd.Flags().BoolVar(&loadReset, "reset", false, "Delete every stored skill before loading")
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if strings.TrimSpace(loadFile) != "" {
		cfg.Populate.DataFile = loadFile
	}
	if cfg.Database.Driver == config.DriverMemory {
		return fmt.Errorf("load needs a persistent store; DB_DRIVER is %q", cfg.Database.Driver)
	}

	logger := newLogger()
	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx := cmd.Context()
	var out any
	if loadReset {
		out, err = c.Populate.ResetAndPopulate(ctx)
	} else {
		out, err = c.Populate.Populate(ctx)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
