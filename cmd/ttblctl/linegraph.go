package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"transitnet.org/ttbl/internal/logging"
	"transitnet.org/ttbl/internal/network"
)

var lineGraphCmd = &cobra.Command{
	Use:   "linegraph FILE...",
	Short: "Check line diagram JSON files against the network",
	Long: `Parse each line graph JSON file, check the diagram can be drawn, and
check every stop it shows exists on the network.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := application.Network()
		if err != nil {
			return err
		}
		logger := logging.FromContext(cmd.Context())

		failed := 0
		for _, path := range args {
			g, err := loadLineGraph(path, logger)
			if err == nil {
				err = g.Validate(n)
			}
			if err != nil {
				failed++
				logging.LogError(logger, "line graph invalid", err, slog.String("path", path))
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%s, %d stops)\n", path, g.RouteType(), len(g.StopIDs()))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d line graphs failed", failed, len(args))
		}
		return nil
	},
}

func loadLineGraph(path string, logger *slog.Logger) (*network.LineGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer logging.SafeCloseWithLogging(f, logger, "read_line_graph")

	return network.DecodeLineGraph(f)
}

func init() {
	rootCmd.AddCommand(lineGraphCmd)
}
