package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
)

// stopAt is a (stop, "HH:MM") pair used to build test entries.
type stopAt struct {
	stop int
	time string
}

func mustEntry(t *testing.T, stops ...stopAt) EntryWithinSection {
	t.Helper()
	e, err := NewEntryWithinSection(entryStops(t, stops...))
	require.NoError(t, err)
	return e
}

func entryStops(t *testing.T, stops ...stopAt) []EntryStop {
	t.Helper()
	result := make([]EntryStop, 0, len(stops))
	for _, s := range stops {
		id, err := network.ToStopID(s.stop)
		require.NoError(t, err)
		tm, err := calendar.ParseLocalTimeWithMarker(s.time)
		require.NoError(t, err)
		result = append(result, EntryStop{Stop: id, Time: tm})
	}
	return result
}

func mustWDR(t *testing.T, code string) calendar.WeekdayRange {
	t.Helper()
	wdr, err := calendar.ParseWeekdayRange(code)
	require.NoError(t, err)
	return wdr
}

func mustDirection(t *testing.T, id string) network.DirectionID {
	t.Helper()
	d, err := network.ToDirectionID(id)
	require.NoError(t, err)
	return d
}

func mustIndex(t *testing.T, v int) EntryIndex {
	t.Helper()
	i, err := ToEntryIndex(v)
	require.NoError(t, err)
	return i
}

func mustLine(t *testing.T, v int) network.LineID {
	t.Helper()
	id, err := network.ToLineID(v)
	require.NoError(t, err)
	return id
}

func mustTimetableID(t *testing.T, v int) TimetableID {
	t.Helper()
	id, err := ToTimetableID(v)
	require.NoError(t, err)
	return id
}

func mustDate(t *testing.T, iso string) *calendar.LocalDate {
	t.Helper()
	if iso == "*" {
		return nil
	}
	d, err := calendar.ParseLocalDate(iso)
	require.NoError(t, err)
	return &d
}

func mustSection(t *testing.T, direction, wdr string, first int, entries ...EntryWithinSection) *Section {
	t.Helper()
	s, err := NewSection(mustDirection(t, direction), mustWDR(t, wdr), mustIndex(t, first), entries)
	require.NoError(t, err)
	return s
}

// upEntries are two trips on the albury-up direction; the second skips 268.
func upEntries(t *testing.T) []EntryWithinSection {
	return []EntryWithinSection{
		mustEntry(t, stopAt{244, "09:02"}, stopAt{268, "09:18"}, stopAt{40, "09:53"}, stopAt{253, "10:27"}),
		mustEntry(t, stopAt{244, "19:44"}, stopAt{40, "21:10"}, stopAt{253, "21:45"}),
	}
}

func downEntries(t *testing.T) []EntryWithinSection {
	return []EntryWithinSection{
		mustEntry(t, stopAt{253, "07:07"}, stopAt{40, "07:35"}),
		mustEntry(t, stopAt{253, "23:30"}, stopAt{204, "23:36"}, stopAt{40, ">00:02"}),
		mustEntry(t, stopAt{253, "18:02"}, stopAt{40, "18:30"}),
	}
}
