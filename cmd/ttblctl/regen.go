package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"transitnet.org/ttbl/internal/ttbl"
)

var regenCmd = &cobra.Command{
	Use:   "regen FILE",
	Short: "Rebuild a timetable's grids from the network",
	Long: `Convert a .ttbl file to a timetable and back. Every grid then lists all
stops of its direction, commented with the stop names from the network.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")

		t, err := application.LoadTimetable(args[0])
		if err != nil {
			return err
		}
		n, err := application.Network()
		if err != nil {
			return err
		}
		file, err := ttbl.FromTimetable(t, n)
		if err != nil {
			return err
		}

		if write {
			return application.WriteFile(args[0], file)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), file.Write())
		return err
	},
}

func init() {
	rootCmd.AddCommand(regenCmd)
	regenCmd.Flags().BoolP("write", "w", false, "write result to the source file instead of stdout")
}
