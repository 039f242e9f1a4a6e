package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"transitnet.org/ttbl/internal/export"
	"transitnet.org/ttbl/internal/logging"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export every stop of every service as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		output, _ := cmd.Flags().GetString("output")

		t, err := application.LoadTimetable(args[0])
		if err != nil {
			return err
		}
		n, err := application.Network()
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			return export.WriteCSV(cmd.OutOrStdout(), t, n)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer logging.HandleDeferredError(&err, file.Close, logging.FromContext(cmd.Context()), "close "+output)

		return export.WriteCSV(file, t, n)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
}
