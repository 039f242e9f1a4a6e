package appconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitnet.org/ttbl/internal/testutil"
)

func TestLoad(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		cfg, err := Load([]byte(`
network: data/network.json
timetables: data/timetables
logLevel: debug
logFormat: json
env: production
gtfs:
  source: https://example.com/gtfs.zip
  routeID: "3"
  timeoutSeconds: 5
  stopMap:
    "19850": 244
`))
		require.NoError(t, err)
		cfg, err = cfg.Resolve()
		require.NoError(t, err)

		assert.Equal(t, "data/network.json", cfg.Network)
		assert.Equal(t, "data/timetables", cfg.Timetables)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "3", cfg.GTFS.RouteID)
		assert.Equal(t, 5*time.Second, cfg.GTFS.Timeout())
		assert.Equal(t, map[string]int{"19850": 244}, cfg.GTFS.StopMap)
	})

	t.Run("load leaves defaults to resolve", func(t *testing.T) {
		cfg, err := Load([]byte("network: network.json\n"))
		require.NoError(t, err)
		assert.Empty(t, cfg.LogLevel)
		assert.Empty(t, cfg.Env)

		cfg, err = cfg.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, time.Minute, cfg.GTFS.Timeout())
	})

	t.Run("network is optional", func(t *testing.T) {
		for _, yaml := range []string{"", "timetables: tt\nlogLevel: debug\n"} {
			cfg, err := Load([]byte(yaml))
			require.NoError(t, err)
			cfg, err = cfg.Resolve()
			require.NoError(t, err)
			assert.Empty(t, cfg.Network)
		}
	})

	tests := []struct {
		name string
		yaml string
	}{
		{"bad log level", "network: n.json\nlogLevel: loud\n"},
		{"bad log format", "network: n.json\nlogFormat: xml\n"},
		{"bad env", "network: n.json\nenv: moon\n"},
		{"negative timeout", "network: n.json\ngtfs:\n  timeoutSeconds: -1\n"},
		{"stop map out of range", "network: n.json\ngtfs:\n  stopMap:\n    a: 10000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = cfg.Resolve()
			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load([]byte("network: n.json\nport: 4000\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load([]byte("network: [unterminated\n"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ttblctl.yml")
	require.NoError(t, os.WriteFile(path, []byte("network: network.json\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "network.json"), cfg.Network)
	assert.Empty(t, cfg.Timetables)

	_, err = LoadFile(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileFixture(t *testing.T) {
	cfg, err := LoadFile(testutil.FixturePath(t, "ttblctl.yml"))
	require.NoError(t, err)
	cfg, err = cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, testutil.FixturePath(t, "network.json"), cfg.Network)
	assert.Equal(t, testutil.FixturePath(t, "suite"), cfg.Timetables)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "albury", cfg.GTFS.RouteID)
	assert.Equal(t, map[string]int{"SCS": 253}, cfg.GTFS.StopMap)
}

func TestResolveAfterOverride(t *testing.T) {
	cfg, err := Load([]byte("logFormat: json\n"))
	require.NoError(t, err)

	cfg.Network = "network.json"
	cfg.LogLevel = "warn"
	cfg, err = cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "network.json", cfg.Network)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	cfg.LogLevel = "loud"
	_, err = cfg.Resolve()
	assert.Error(t, err)
}

func TestDefaultLogFormat(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"", "text"},
		{"development", "text"},
		{"staging", "text"},
		{"production", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg, err := Config{Env: tt.env}.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.LogFormat)
		})
	}

	t.Run("explicit format wins", func(t *testing.T) {
		cfg, err := Config{Env: "production", LogFormat: "text"}.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
	})
}
