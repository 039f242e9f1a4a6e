package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"transitnet.org/ttbl/internal/app"
	"transitnet.org/ttbl/internal/appconf"
	"transitnet.org/ttbl/internal/logging"
)

var (
	configPath string
	overrides  appconf.Config

	// application is built before any subcommand runs. Its logger is also
	// carried by the command context.
	application *app.Application
)

var rootCmd = &cobra.Command{
	Use:   "ttblctl",
	Short: "Check, format and convert .ttbl timetable files",
	Long: `ttblctl works with timetables written in the .ttbl text format. It
checks them against a transit network, rewrites them in canonical layout,
exports their services and imports new ones from GTFS feeds.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		application, err = app.New(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithLogger(cmd.Context(), application.Logger))
		return nil
	},
}

// resolveConfig reads the config file, if any, lays flag values over it and
// only then validates the result.
func resolveConfig() (appconf.Config, error) {
	var cfg appconf.Config
	if configPath != "" {
		var err error
		cfg, err = appconf.LoadFile(configPath)
		if err != nil {
			return appconf.Config{}, err
		}
	}

	if overrides.Network != "" {
		cfg.Network = overrides.Network
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.LogFormat != "" {
		cfg.LogFormat = overrides.LogFormat
	}
	return cfg.Resolve()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&overrides.Network, "network", "n", "", "network JSON file (overrides config)")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&overrides.LogFormat, "log-format", "", "text or json")
}
