package gtfsimport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jamespfennell/gtfs"

	"transitnet.org/ttbl/internal/logging"
)

// IsURL reports whether source should be downloaded rather than read from
// disk.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ReadFeed returns the raw bytes of a GTFS zip from a local path or an
// http(s) URL. timeout bounds the download; zero means no limit. Progress is
// logged to the logger carried by ctx.
func ReadFeed(ctx context.Context, source string, timeout time.Duration) ([]byte, error) {
	logger := logging.FromContext(ctx)

	if !IsURL(source) {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building GTFS request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logger, "download_gtfs")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading GTFS data: %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}

	logging.LogOperation(logger, "gtfs_downloaded",
		slog.String("source", source),
		slog.Int("bytes", len(b)))
	return b, nil
}

// LoadStatic reads and parses a GTFS static feed.
func LoadStatic(ctx context.Context, source string, timeout time.Duration) (*gtfs.Static, error) {
	start := time.Now()
	b, err := ReadFeed(ctx, source, timeout)
	if err != nil {
		return nil, err
	}

	static, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	logging.LogOperation(logging.FromContext(ctx), "gtfs_parsed",
		slog.String("source", source),
		slog.Int("trips", len(static.Trips)),
		slog.Int("stops", len(static.Stops)),
		slog.Duration("duration", time.Since(start)))
	return static, nil
}
