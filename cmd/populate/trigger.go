package main

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/infrastructure/adminclient"

	"github.com/spf13/cobra"
)

var (
	triggerURL     string
	triggerTimeout time.Duration
)

var triggerCmd = &cobra.Command{
	Use:       "trigger [populate|clear|reset]",
	Short:     "Call a bulk-load endpoint on a running server",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(adminclient.OpPopulate), string(adminclient.OpClear), string(adminclient.OpReset)},
	RunE:      runTrigger,
}

func init() {
	rootCmd.AddCommand(triggerCmd)
	triggerCmd.Flags().StringVar(&triggerURL, "url", "http://localhost:8080", "Base URL of the server")
	triggerCmd.Flags().DurationVar(&triggerTimeout, "timeout", 30*time.Second, "Request timeout")
}

func runTrigger(cmd *cobra.Command, args []string) error {
	op, err := adminclient.ParseOperation(args[0])
	if err != nil {
		return err
	}

	logger := newLogger()
	client, err := adminclient.New(triggerURL, triggerTimeout, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), triggerTimeout)
	defer cancel()

	data, err := client.Trigger(ctx, op)
	if err != nil {
		return fmt.Errorf("%s failed: %w", op, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
