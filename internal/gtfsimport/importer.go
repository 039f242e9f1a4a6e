// Package gtfsimport builds timetables from GTFS static feeds.
//
// Each scheduled trip becomes one service. Its stops are matched to network
// stops, its direction is the line direction whose stop order it follows,
// and its weekday range comes from the trip's calendar. Trips sharing a
// direction and weekday range form one section.
package gtfsimport

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jamespfennell/gtfs"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/timetable"
)

// ErrNoTrips is returned when no trip of the feed could be imported.
var ErrNoTrips = errors.New("no GTFS trips could be matched to the line")

// Options describe the timetable to build and which trips to take.
type Options struct {
	ID      timetable.TimetableID
	Line    network.LineID
	Created calendar.LocalDate
	Type    timetable.Type
	Begins  *calendar.LocalDate
	Ends    *calendar.LocalDate

	// RouteID keeps only trips of this GTFS route. Empty keeps all.
	RouteID string
	// StopMap maps GTFS stop ids to network stops, before name matching.
	StopMap map[string]network.StopID
}

// SkippedTrip is a trip left out of the import, and why.
type SkippedTrip struct {
	TripID string
	Reason string
}

// Result is the imported timetable plus the trips that didn't make it.
type Result struct {
	Timetable *timetable.Timetable
	Imported  int
	Skipped   []SkippedTrip
}

type group struct {
	direction int
	wdr       calendar.WeekdayRange
	entries   []timetable.EntryWithinSection
}

// Import converts the trips of static into a timetable for opts.Line.
func Import(static *gtfs.Static, n *network.TransitNetwork, opts Options) (*Result, error) {
	line, err := n.RequireLine(opts.Line)
	if err != nil {
		return nil, err
	}

	matcher := newStopMatcher(n, opts.StopMap)
	directions := line.Directions()
	result := &Result{}
	groups := map[string]*group{}
	seen := map[string]string{}

	skip := func(trip *gtfs.ScheduledTrip, format string, args ...any) {
		result.Skipped = append(result.Skipped, SkippedTrip{TripID: trip.ID, Reason: fmt.Sprintf(format, args...)})
	}

	for i := range static.Trips {
		trip := &static.Trips[i]
		if opts.RouteID != "" && (trip.Route == nil || trip.Route.Id != opts.RouteID) {
			continue
		}

		wdr, ok := weekdayRange(trip.Service)
		if !ok {
			skip(trip, "service has no weekly pattern")
			continue
		}

		stops, unmatched := tripStops(trip, matcher)
		if len(stops) < 2 {
			skip(trip, "only %d stops on the network (unmatched: %s)", len(stops), strings.Join(unmatched, ", "))
			continue
		}

		entry, err := timetable.NewEntryWithinSection(stops)
		if err != nil {
			skip(trip, "%v", err)
			continue
		}

		d := matchDirection(directions, entry.StopIDs())
		if d < 0 {
			skip(trip, "stops don't follow any direction of line %s", line.ID())
			continue
		}

		key := fmt.Sprintf("%d|%s", d, wdr)
		fingerprint := key + "|" + entryFingerprint(entry)
		if other, dup := seen[fingerprint]; dup {
			skip(trip, "same stops and times as trip %s", other)
			continue
		}
		seen[fingerprint] = trip.ID

		g, ok := groups[key]
		if !ok {
			g = &group{direction: d, wdr: wdr}
			groups[key] = g
		}
		g.entries = append(g.entries, entry)
		result.Imported++
	}

	if result.Imported == 0 {
		return result, ErrNoTrips
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	slices.SortFunc(ordered, func(a, b *group) int {
		return cmp.Or(
			cmp.Compare(a.direction, b.direction),
			cmp.Compare(firstDay(a.wdr), firstDay(b.wdr)),
			strings.Compare(a.wdr.String(), b.wdr.String()),
		)
	})

	contents := make([]timetable.SectionContent, 0, len(ordered))
	for _, g := range ordered {
		slices.SortStableFunc(g.entries, func(a, b timetable.EntryWithinSection) int {
			return cmp.Compare(a.Origin().Time.MinuteOfDay(), b.Origin().Time.MinuteOfDay())
		})
		contents = append(contents, timetable.SectionContent{
			Direction:    directions[g.direction].ID(),
			WeekdayRange: g.wdr,
			Entries:      g.entries,
		})
	}

	sections, err := timetable.BuildSections(contents)
	if err != nil {
		return result, err
	}

	result.Timetable, err = timetable.New(timetable.Params{
		ID:       opts.ID,
		Line:     opts.Line,
		Created:  opts.Created,
		Type:     opts.Type,
		Begins:   opts.Begins,
		Ends:     opts.Ends,
		Sections: sections,
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

func weekdayRange(s *gtfs.Service) (calendar.WeekdayRange, bool) {
	if s == nil {
		return calendar.WeekdayRange{}, false
	}
	wdr := calendar.NewWeekdayRange(s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday, s.Saturday, s.Sunday)
	return wdr, wdr.NumOfDays() > 0
}

func firstDay(wdr calendar.WeekdayRange) int {
	return wdr.Days()[0].DaysSinceMonday()
}

// tripStops returns the matched network stops of trip with their departure
// times, plus the names of GTFS stops that matched nothing.
func tripStops(trip *gtfs.ScheduledTrip, matcher *stopMatcher) ([]timetable.EntryStop, []string) {
	var stops []timetable.EntryStop
	var unmatched []string
	visited := map[network.StopID]bool{}

	for _, st := range trip.StopTimes {
		if st.Stop == nil {
			continue
		}
		id, ok := matcher.match(st.Stop)
		if !ok {
			unmatched = append(unmatched, st.Stop.Root().Name)
			continue
		}
		// A station reached twice, e.g. on two platforms, keeps its first time.
		if visited[id] {
			continue
		}
		t, err := calendar.NewLocalTime(int(st.DepartureTime / time.Minute))
		if err != nil {
			continue
		}
		visited[id] = true
		stops = append(stops, timetable.EntryStop{Stop: id, Time: t})
	}
	return stops, unmatched
}

// matchDirection returns the index of the first direction whose stops, cut
// down to the stops visited, equal visited in order.
func matchDirection(directions []*network.Direction, visited []network.StopID) int {
	for i, d := range directions {
		var filtered []network.StopID
		for _, s := range d.Stops() {
			if slices.Contains(visited, s) {
				filtered = append(filtered, s)
			}
		}
		if slices.Equal(filtered, visited) {
			return i
		}
	}
	return -1
}

func entryFingerprint(e timetable.EntryWithinSection) string {
	var b strings.Builder
	for _, s := range e.Stops() {
		fmt.Fprintf(&b, "%d@%d;", s.Stop.Int(), s.Time.MinuteOfDay())
	}
	return b.String()
}
