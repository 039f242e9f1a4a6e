package timetable

import (
	"fmt"
	"slices"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
)

// EntryStop is one stop event within a trip.
type EntryStop struct {
	Stop network.StopID
	Time calendar.LocalTime
}

// EntryWithinSection is one trip as listed in a section: its stops in order,
// without the day or index it runs under. It makes at least two stops and
// never goes back in time.
type EntryWithinSection struct {
	stops []EntryStop
}

func NewEntryWithinSection(stops []EntryStop) (EntryWithinSection, error) {
	if len(stops) < 2 {
		return EntryWithinSection{}, &Error{Kind: NotEnoughStops}
	}

	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if prev.Time.After(next.Time) {
			return EntryWithinSection{}, &Error{
				Kind:   TimeTravel,
				Detail: fmt.Sprintf("stop %s at %s comes after stop %s at %s", next.Stop, next.Time, prev.Stop, prev.Time),
			}
		}
	}

	return EntryWithinSection{stops: slices.Clone(stops)}, nil
}

func (e EntryWithinSection) Stops() []EntryStop {
	return slices.Clone(e.stops)
}

// StopIDs returns the stops visited, in order.
func (e EntryWithinSection) StopIDs() []network.StopID {
	ids := make([]network.StopID, len(e.stops))
	for i, s := range e.stops {
		ids[i] = s.Stop
	}
	return ids
}

// TimeAt returns when the trip is at stop, if it stops there.
func (e EntryWithinSection) TimeAt(stop network.StopID) (calendar.LocalTime, bool) {
	for _, s := range e.stops {
		if s.Stop == stop {
			return s.Time, true
		}
	}
	return calendar.LocalTime{}, false
}

// Origin is the first stop event of the trip.
func (e EntryWithinSection) Origin() EntryStop { return e.stops[0] }

// Terminus is the last stop event of the trip.
func (e EntryWithinSection) Terminus() EntryStop { return e.stops[len(e.stops)-1] }

// EntryWithinTimetable is a trip stamped with the index, direction and day of
// week it is addressed by within a timetable.
type EntryWithinTimetable struct {
	EntryWithinSection
	index     EntryIndex
	direction network.DirectionID
	dayOfWeek calendar.DayOfWeek
}

func (e EntryWithinTimetable) Index() EntryIndex { return e.index }
func (e EntryWithinTimetable) Direction() network.DirectionID { return e.direction }
func (e EntryWithinTimetable) DayOfWeek() calendar.DayOfWeek { return e.dayOfWeek }

// Entry is a fully addressed trip: timetable, line, index, direction and day.
type Entry struct {
	EntryWithinTimetable
	timetable TimetableID
	line      network.LineID
}

func (e Entry) Timetable() TimetableID { return e.timetable }
func (e Entry) Line() network.LineID { return e.line }
