package appconf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel    = "info"
	defaultEnv         = "development"
	defaultGTFSTimeout = 60
)

var validate = validator.New()

// GTFSConfig says where to import GTFS static data from and how to match its
// stops to the network.
type GTFSConfig struct {
	// Source is a local path or an http(s) URL of a GTFS zip.
	Source string `yaml:"source"`
	// RouteID restricts the import to one GTFS route.
	RouteID        string `yaml:"routeID"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" validate:"gte=0"`
	// StopMap overrides name matching, keyed by GTFS stop id.
	StopMap map[string]int `yaml:"stopMap" validate:"dive,keys,required,endkeys,min=1,max=9999"`
}

// Timeout is how long a download may take.
func (g GTFSConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// Config is the ttblctl configuration file.
type Config struct {
	// Network is the path to the network JSON file. Only commands that check
	// timetables against the network need it.
	Network string `yaml:"network"`
	// Timetables is the directory holding the *.ttbl files of a suite.
	Timetables string `yaml:"timetables"`
	LogLevel   string `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
	// LogFormat defaults to json in production and text elsewhere.
	LogFormat string     `yaml:"logFormat" validate:"omitempty,oneof=json text"`
	Env       string     `yaml:"env" validate:"omitempty,oneof=development staging production"`
	GTFS      GTFSConfig `yaml:"gtfs"`
}

// Load parses YAML configuration. Unknown keys are rejected. The result is
// not validated yet: lay any overrides over it, then call Resolve.
func Load(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadFile reads and parses the configuration file at path. Relative paths
// inside the file are taken relative to the file's directory.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Load(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	cfg.Network = relativeTo(dir, cfg.Network)
	cfg.Timetables = relativeTo(dir, cfg.Timetables)
	if !isURL(cfg.GTFS.Source) {
		cfg.GTFS.Source = relativeTo(dir, cfg.GTFS.Source)
	}
	return cfg, nil
}

func relativeTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Resolve validates the configuration and fills in defaults.
func (c Config) Resolve() (Config, error) {
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.LogFormat == "" {
		c.LogFormat = c.DefaultLogFormat()
	}
	if c.GTFS.TimeoutSeconds == 0 {
		c.GTFS.TimeoutSeconds = defaultGTFSTimeout
	}
	return c, nil
}

// DefaultLogFormat is the log format used when none is configured.
func (c Config) DefaultLogFormat() string {
	if c.Env == "production" {
		return "json"
	}
	return "text"
}
