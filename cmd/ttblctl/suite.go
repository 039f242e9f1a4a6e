package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"transitnet.org/ttbl/internal/calendar"
)

var suiteCmd = &cobra.Command{
	Use:   "suite [DIR]",
	Short: "Load every timetable in a directory and check they fit together",
	Long: `Load every .ttbl file in DIR, or the configured timetables directory,
and check that ids are unique and that no two timetables of the same line and
type are in effect on the same day.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := application.Config.Timetables
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			return errors.New("no directory given and no timetables directory configured")
		}

		suite, err := application.LoadSuite(dir)
		if err != nil {
			return err
		}

		for _, t := range suite.Timetables() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-5s line %-3s %-15s %s to %s, %d services\n",
				t.ID(), t.Line(), t.Type(), dateOrOpen(t.Begins()), dateOrOpen(t.Ends()), t.EntriesCount())
		}
		return nil
	},
}

func dateOrOpen(d *calendar.LocalDate) string {
	if d == nil {
		return "*"
	}
	return d.ISO()
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}
