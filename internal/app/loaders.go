package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"transitnet.org/ttbl/internal/logging"
	"transitnet.org/ttbl/internal/timetable"
	"transitnet.org/ttbl/internal/ttbl"
)

// FileExtension is the extension LoadSuite looks for.
const FileExtension = ".ttbl"

// LoadFile parses the ttbl file at path without converting it.
func (app *Application) LoadFile(path string) (*ttbl.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening timetable: %w", err)
	}
	defer logging.SafeCloseWithLogging(f, app.Logger, "read_ttbl")

	file, err := ttbl.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// LoadTimetable parses, converts and validates the ttbl file at path.
func (app *Application) LoadTimetable(path string) (*timetable.Timetable, error) {
	file, err := app.LoadFile(path)
	if err != nil {
		return nil, err
	}

	t, err := ttbl.ToTimetable(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	n, err := app.Network()
	if err != nil {
		return nil, err
	}
	if err := timetable.Validate(t, n); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	app.Logger.Debug("timetable loaded",
		slog.String("path", path),
		slog.Int("timetable", t.ID().Int()),
		slog.Int("entries", t.EntriesCount()))
	return t, nil
}

// SuiteFiles lists the ttbl files directly inside dir, sorted by name.
func SuiteFiles(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+FileExtension))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadSuite loads every ttbl file in dir concurrently and assembles them into
// a suite. When several files fail, the error of the first by name is
// returned.
func (app *Application) LoadSuite(dir string) (*timetable.Suite, error) {
	start := time.Now()

	paths, err := SuiteFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s files in %s", FileExtension, dir)
	}

	timetables := make([]*timetable.Timetable, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timetables[i], errs[i] = app.LoadTimetable(p)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	suite, err := timetable.NewSuite(timetables)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}

	logging.LogOperation(app.Logger, "suite_loaded",
		slog.String("dir", dir),
		slog.Int("timetables", len(timetables)),
		slog.Duration("duration", time.Since(start)))
	return suite, nil
}

// WriteFile writes f to path in canonical layout, replacing any existing file.
func (app *Application) WriteFile(path string, f *ttbl.File) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, out.Close, app.Logger, "close "+path)

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
