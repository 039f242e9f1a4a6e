package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitnet.org/ttbl/internal/appconf"
	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/testutil"
	"transitnet.org/ttbl/internal/timetable"
	"transitnet.org/ttbl/internal/ttbl"
)

func newTestApplication(t *testing.T) (*Application, *bytes.Buffer) {
	t.Helper()
	cfg, err := appconf.Config{
		Network:   testutil.FixturePath(t, "network.json"),
		LogLevel:  "debug",
		LogFormat: "json",
	}.Resolve()
	require.NoError(t, err)

	var logs bytes.Buffer
	app, err := New(cfg, &logs)
	require.NoError(t, err)
	return app, &logs
}

func TestNew(t *testing.T) {
	app, logs := newTestApplication(t)
	assert.NotContains(t, logs.String(), "network_loaded")

	n, err := app.Network()
	require.NoError(t, err)
	assert.Equal(t, "2022-10-26", n.Hash())
	assert.Contains(t, logs.String(), `"msg":"network_loaded"`)
	assert.Contains(t, logs.String(), `"stops":9`)

	again, err := app.Network()
	require.NoError(t, err)
	assert.Same(t, n, again)
	assert.Equal(t, 1, strings.Count(logs.String(), "network_loaded"))

	newApp := func(t *testing.T, cfg appconf.Config) *Application {
		a, err := New(cfg, &bytes.Buffer{})
		require.NoError(t, err)
		return a
	}

	t.Run("no network configured", func(t *testing.T) {
		cfg := app.Config
		cfg.Network = ""
		_, err := newApp(t, cfg).Network()
		assert.ErrorIs(t, err, ErrNoNetwork)
	})

	t.Run("missing network file", func(t *testing.T) {
		cfg := app.Config
		cfg.Network = filepath.Join(t.TempDir(), "missing.json")
		_, err := newApp(t, cfg).Network()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed network file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "network.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"hash": "x"}`), 0o644))

		cfg := app.Config
		cfg.Network = path
		_, err := newApp(t, cfg).Network()
		var netErr *network.Error
		require.ErrorAs(t, err, &netErr)
		assert.Equal(t, network.MalformedJSON, netErr.Kind)
	})

	t.Run("parsing needs no network", func(t *testing.T) {
		cfg := app.Config
		cfg.Network = ""
		file, err := newApp(t, cfg).LoadFile(testutil.FixturePath(t, "albury.ttbl"))
		require.NoError(t, err)
		assert.Equal(t, 108, file.ID().Int())
	})

	t.Run("bad log format", func(t *testing.T) {
		cfg := app.Config
		cfg.LogFormat = "xml"
		_, err := New(cfg, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestLoadTimetable(t *testing.T) {
	app, _ := newTestApplication(t)

	tt, err := app.LoadTimetable(testutil.FixturePath(t, "albury.ttbl"))
	require.NoError(t, err)
	assert.Equal(t, 108, tt.ID().Int())
	assert.Equal(t, 15, tt.EntriesCount())

	t.Run("error names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.ttbl")
		require.NoError(t, os.WriteFile(path, []byte("[timetable]\nversion: 1\n"), 0o644))

		_, err := app.LoadTimetable(path)
		var versionErr *ttbl.VersionError
		require.ErrorAs(t, err, &versionErr)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("validation against the network", func(t *testing.T) {
		text := strings.Replace(string(testutil.ReadFixture(t, "albury.ttbl")), "line: 3", "line: 6", 1)
		path := filepath.Join(t.TempDir(), "wrong-line.ttbl")
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

		_, err := app.LoadTimetable(path)
		var ttErr *timetable.Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, timetable.DirectionDoesntExist, ttErr.Kind)
	})
}

func TestLoadSuite(t *testing.T) {
	app, logs := newTestApplication(t)

	suite, err := app.LoadSuite(testutil.FixturePath(t, "suite"))
	require.NoError(t, err)
	require.Len(t, suite.Timetables(), 2)
	assert.Contains(t, logs.String(), `"msg":"suite_loaded"`)

	id, err := timetable.ToTimetableID(109)
	require.NoError(t, err)
	craigieburn, err := suite.RequireTimetable(id)
	require.NoError(t, err)
	assert.Equal(t, 6, craigieburn.Line().Int())

	t.Run("overlapping timetables", func(t *testing.T) {
		dir := t.TempDir()
		albury := string(testutil.ReadFixture(t, "albury.ttbl"))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ttbl"), []byte(albury), 0o644))
		later := strings.Replace(albury, "id: 108", "id: 110", 1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ttbl"), []byte(later), 0o644))

		_, err := app.LoadSuite(dir)
		var ttErr *timetable.Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, timetable.OverlappingTimetables, ttErr.Kind)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := app.LoadSuite(t.TempDir())
		assert.Error(t, err)
	})
}

func TestWriteFile(t *testing.T) {
	app, _ := newTestApplication(t)

	file, err := app.LoadFile(testutil.FixturePath(t, "albury-messy.ttbl"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "albury.ttbl")
	require.NoError(t, app.WriteFile(path, file))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(testutil.ReadFixture(t, "albury.ttbl")), string(written))

	err = app.WriteFile(filepath.Join(t.TempDir(), "missing", "x.ttbl"), file)
	assert.Error(t, err)
}
