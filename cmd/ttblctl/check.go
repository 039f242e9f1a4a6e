package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"transitnet.org/ttbl/internal/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse each timetable and validate it against the network",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.FromContext(cmd.Context())
		failed := 0
		for _, path := range args {
			t, err := application.LoadTimetable(path)
			if err != nil {
				failed++
				logging.LogError(logger, "timetable invalid", err, slog.String("path", path))
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (timetable %s, %d services)\n", path, t.ID(), t.EntriesCount())
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d timetables failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
