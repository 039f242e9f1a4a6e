package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/gtfsimport"
	"transitnet.org/ttbl/internal/logging"
	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/timetable"
	"transitnet.org/ttbl/internal/ttbl"
)

var importGTFSCmd = &cobra.Command{
	Use:   "import-gtfs [SOURCE]",
	Short: "Build a timetable from a GTFS static feed",
	Long: `Read a GTFS zip from a path or URL, or the configured gtfs.source, and
turn the trips that follow a direction of --line into a .ttbl timetable.
Trips that cannot be matched to the network are reported and left out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		idValue, _ := flags.GetInt("id")
		lineValue, _ := flags.GetInt("line")
		created, _ := flags.GetString("created")
		typeName, _ := flags.GetString("type")
		begins, _ := flags.GetString("begins")
		ends, _ := flags.GetString("ends")
		routeID, _ := flags.GetString("route")
		output, _ := flags.GetString("output")

		gtfsConfig := application.Config.GTFS
		source := gtfsConfig.Source
		if len(args) == 1 {
			source = args[0]
		}
		if source == "" {
			return errors.New("no GTFS source given and none configured")
		}
		if !flags.Changed("route") {
			routeID = gtfsConfig.RouteID
		}

		opts, err := importOptions(idValue, lineValue, created, typeName, begins, ends)
		if err != nil {
			return err
		}
		opts.RouteID = routeID
		opts.StopMap, err = stopMap(gtfsConfig.StopMap)
		if err != nil {
			return err
		}

		n, err := application.Network()
		if err != nil {
			return err
		}
		logger := logging.FromContext(cmd.Context())

		start := time.Now()
		static, err := gtfsimport.LoadStatic(cmd.Context(), source, gtfsConfig.Timeout())
		if err != nil {
			return err
		}

		result, err := gtfsimport.Import(static, n, opts)
		if result != nil {
			for _, s := range result.Skipped {
				logging.LogWarning(logger, "trip skipped",
					slog.String("trip_id", s.TripID), slog.String("reason", s.Reason))
			}
		}
		if err != nil {
			return err
		}
		logging.LogOperation(logger, "gtfs_imported",
			slog.Duration("duration", time.Since(start)),
			slog.String("source", source),
			slog.Int("imported", result.Imported),
			slog.Int("skipped", len(result.Skipped)))

		file, err := ttbl.FromTimetable(result.Timetable, n)
		if err != nil {
			return err
		}
		if output == "" || output == "-" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), file.Write())
			return err
		}
		return application.WriteFile(output, file)
	},
}

func importOptions(id, line int, created, typeName, begins, ends string) (gtfsimport.Options, error) {
	var opts gtfsimport.Options
	var err error

	if opts.ID, err = timetable.ToTimetableID(id); err != nil {
		return opts, fmt.Errorf("--id: %w", err)
	}
	if opts.Line, err = network.ToLineID(line); err != nil {
		return opts, fmt.Errorf("--line: %w", err)
	}
	if opts.Type, err = timetable.ParseType(typeName); err != nil {
		return opts, fmt.Errorf("--type: %w", err)
	}

	if created == "" {
		opts.Created = calendar.LocalDateFromTime(time.Now())
	} else if opts.Created, err = calendar.ParseLocalDate(created); err != nil {
		return opts, fmt.Errorf("--created: %w", err)
	}
	if opts.Begins, err = optionalDate(begins); err != nil {
		return opts, fmt.Errorf("--begins: %w", err)
	}
	if opts.Ends, err = optionalDate(ends); err != nil {
		return opts, fmt.Errorf("--ends: %w", err)
	}
	return opts, nil
}

func optionalDate(s string) (*calendar.LocalDate, error) {
	if s == "" || s == ttbl.Wildcard {
		return nil, nil
	}
	d, err := calendar.ParseLocalDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func stopMap(configured map[string]int) (map[string]network.StopID, error) {
	if len(configured) == 0 {
		return nil, nil
	}
	m := make(map[string]network.StopID, len(configured))
	for gtfsID, value := range configured {
		id, err := network.ToStopID(value)
		if err != nil {
			return nil, fmt.Errorf("gtfs.stopMap[%s]: %w", gtfsID, err)
		}
		m[gtfsID] = id
	}
	return m, nil
}

func init() {
	rootCmd.AddCommand(importGTFSCmd)
	flags := importGTFSCmd.Flags()
	flags.Int("id", 0, "timetable id of the result (required)")
	flags.Int("line", 0, "network line the trips belong to (required)")
	flags.String("created", "", "creation date, YYYY-MM-DD (default today)")
	flags.String("type", string(timetable.TypeMain), "timetable type")
	flags.String("begins", "", "first date in effect, YYYY-MM-DD (default open)")
	flags.String("ends", "", "last date in effect, YYYY-MM-DD (default open)")
	flags.String("route", "", "only import trips of this GTFS route id (default gtfs.routeID)")
	flags.StringP("output", "o", "", "output file path (default stdout)")
	_ = importGTFSCmd.MarkFlagRequired("id")
	_ = importGTFSCmd.MarkFlagRequired("line")
}
