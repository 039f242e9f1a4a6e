package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"transitnet.org/ttbl/internal/appconf"
	"transitnet.org/ttbl/internal/logging"
	"transitnet.org/ttbl/internal/network"
)

// ErrNoNetwork is returned by Network when no network file is configured.
var ErrNoNetwork = errors.New("no network file configured (set network in the config file or pass --network)")

// Application holds the dependencies shared by the ttblctl commands: the
// resolved configuration, a logger, and the transit network every timetable
// is checked against.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger

	mu      sync.Mutex
	network *network.TransitNetwork
}

// New builds the logger described by cfg, writing to logOut. The network file
// is read on first use.
func New(cfg appconf.Config, logOut io.Writer) (*Application, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewLogger(logOut, level, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, Logger: logger}, nil
}

// Network returns the configured transit network, loading it on first call.
func (app *Application) Network() (*network.TransitNetwork, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.network != nil {
		return app.network, nil
	}
	if app.Config.Network == "" {
		return nil, ErrNoNetwork
	}
	n, err := app.loadNetwork(app.Config.Network)
	if err != nil {
		return nil, err
	}
	app.network = n
	return n, nil
}

func (app *Application) loadNetwork(path string) (*network.TransitNetwork, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening network: %w", err)
	}
	defer logging.SafeCloseWithLogging(f, app.Logger, "read_network")

	n, err := network.DecodeTransitNetwork(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.LogOperation(app.Logger, "network_loaded",
		slog.String("path", path),
		slog.String("hash", n.Hash()),
		slog.Int("stops", len(n.Stops())),
		slog.Int("lines", len(n.Lines())),
		slog.Duration("duration", time.Since(start)))

	return n, nil
}
