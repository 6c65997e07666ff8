// Package cmd implements the gcsctl command tree. Every command talks to
// the remote API through the fallback client, so it keeps working (against a
// process-local store) when the server is down.
package cmd

import (
	"github.com/spf13/cobra"

	"gcs-tracker/internal/client"
	"gcs-tracker/internal/logging"
	"gcs-tracker/internal/store/memory"
)

// NewRoot creates the gcsctl root command.
func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcsctl",
		Short: "manage patients and Glasgow Coma Scale assessments",
	}
	cmd.AddCommand(
		NewPatientsCmd(),
		NewScoreCmd(),
		NewHistoryCmd(),
		NewLatestCmd(),
	)
	pf := cmd.PersistentFlags()
	pf.String("api", "http://localhost:8080/api", "base URL of the GCS API")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	return cmd
}

func newFallback(cmd *cobra.Command) (*client.Fallback, error) {
	api, _ := cmd.Flags().GetString("api")
	level, _ := cmd.Flags().GetString("log-level")

	logger, err := logging.NewLogger(level)
	if err != nil {
		return nil, err
	}
	return client.NewFallback(client.NewRemote(api, logger), memory.NewStore(), logger), nil
}
