package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"transitnet.org/ttbl/internal/timetable"
)

var entryCmd = &cobra.Command{
	Use:   "entry FILE INDEX",
	Short: "Print one service of a timetable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := application.LoadTimetable(args[0])
		if err != nil {
			return err
		}
		n, err := application.Network()
		if err != nil {
			return err
		}

		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("index %q is not a number", args[1])
		}
		index, err := timetable.ToEntryIndex(value)
		if err != nil {
			return err
		}
		e, err := t.RequireEntry(index)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "timetable %s, line %s, entry %s (%s%s)\n",
			e.Timetable(), e.Line(), e.Index(), e.Timetable().Base36(), e.Index().Base36())
		fmt.Fprintf(out, "%s, %s\n", e.Direction(), e.DayOfWeek().Name())
		for _, s := range e.Stops() {
			name := s.Stop.String()
			if stop, ok := n.Stop(s.Stop); ok {
				name = stop.Name()
			}
			fmt.Fprintf(out, "  %-6s %s\n", s.Time, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
}
