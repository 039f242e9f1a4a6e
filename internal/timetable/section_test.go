package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitnet.org/ttbl/internal/calendar"
)

func TestNewEntryWithinSection(t *testing.T) {
	tests := []struct {
		name     string
		stops    []stopAt
		wantKind ErrorKind
	}{
		{name: "no stops", wantKind: NotEnoughStops},
		{name: "one stop", stops: []stopAt{{1, "08:00"}}, wantKind: NotEnoughStops},
		{name: "time travel", stops: []stopAt{{1, "08:00"}, {2, "07:59"}}, wantKind: TimeTravel},
		{name: "next day then same day", stops: []stopAt{{1, ">00:10"}, {2, "23:50"}}, wantKind: TimeTravel},
		{name: "equal times", stops: []stopAt{{1, "08:00"}, {2, "08:00"}}},
		{name: "across midnight", stops: []stopAt{{1, "23:50"}, {2, ">00:10"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntryWithinSection(entryStops(t, tt.stops...))
			if tt.wantKind != 0 {
				var ttErr *Error
				require.ErrorAs(t, err, &ttErr)
				assert.Equal(t, tt.wantKind, ttErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Len(t, e.Stops(), len(tt.stops))
			assert.Equal(t, tt.stops[0].stop, e.Origin().Stop.Int())
			assert.Equal(t, tt.stops[len(tt.stops)-1].stop, e.Terminus().Stop.Int())
		})
	}
}

func TestSectionIndexing(t *testing.T) {
	entries := upEntries(t)
	s := mustSection(t, "albury-up", "MTWT___", 0, entries...)

	assert.Equal(t, 8, s.EntriesCount())
	assert.Equal(t, 7, s.LastIndex().Int())
	assert.True(t, s.HasIndex(mustIndex(t, 0)))
	assert.True(t, s.HasIndex(mustIndex(t, 7)))
	assert.False(t, s.HasIndex(mustIndex(t, 8)))

	e, ok := s.EntryByIndex(mustIndex(t, 5))
	require.True(t, ok)
	assert.Equal(t, 5, e.Index().Int())
	assert.Equal(t, calendar.Wednesday, e.DayOfWeek())
	assert.Equal(t, "albury-up", e.Direction().String())
	assert.Equal(t, entries[1].Stops(), e.Stops())

	_, ok = s.EntryByIndex(mustIndex(t, 8))
	assert.False(t, ok)
}

func TestSectionWeekdayAddressing(t *testing.T) {
	entries := downEntries(t)
	s := mustSection(t, "albury-down", "_T_T_S_", 10, entries...)
	days := []calendar.DayOfWeek{calendar.Tuesday, calendar.Thursday, calendar.Saturday}

	for d, day := range days {
		for j := range entries {
			index := 10 + d*len(entries) + j
			e, ok := s.EntryByIndex(mustIndex(t, index))
			require.True(t, ok, "index %d", index)
			assert.Equal(t, day, e.DayOfWeek(), "index %d", index)
			assert.Equal(t, entries[j].Stops(), e.Stops(), "index %d", index)
		}
	}

	_, ok := s.EntryByIndex(mustIndex(t, 9))
	assert.False(t, ok)

	indexed := s.IndexedEntries()
	require.Len(t, indexed, 9)
	for i, e := range indexed {
		assert.Equal(t, 10+i, e.Index().Int())
		byIndex, ok := s.EntryByIndex(e.Index())
		require.True(t, ok)
		assert.Equal(t, byIndex, e)
	}
}

func TestNewSectionErrors(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		_, err := NewSection(mustDirection(t, "up"), mustWDR(t, "MTWTFSS"), mustIndex(t, 0), nil)
		var ttErr *Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, EmptySection, ttErr.Kind)
	})

	t.Run("no days", func(t *testing.T) {
		_, err := NewSection(mustDirection(t, "up"), mustWDR(t, "_______"), mustIndex(t, 0), upEntries(t))
		var ttErr *Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, EmptySection, ttErr.Kind)
	})

	t.Run("too many services", func(t *testing.T) {
		_, err := NewSection(mustDirection(t, "up"), mustWDR(t, "M______"), mustIndex(t, MaxEntryIndex), upEntries(t))
		var ttErr *Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, TooManyServices, ttErr.Kind)
	})

	t.Run("fills the index space exactly", func(t *testing.T) {
		s, err := NewSection(mustDirection(t, "up"), mustWDR(t, "M______"), mustIndex(t, MaxEntryIndex-1), upEntries(t))
		require.NoError(t, err)
		assert.Equal(t, MaxEntryIndex, s.LastIndex().Int())
	})
}

func TestBuildSections(t *testing.T) {
	sections, err := BuildSections([]SectionContent{
		{Direction: mustDirection(t, "albury-up"), WeekdayRange: mustWDR(t, "MTWT___"), Entries: upEntries(t)},
		{Direction: mustDirection(t, "albury-down"), WeekdayRange: mustWDR(t, "____F__"), Entries: downEntries(t)},
	})
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, 0, sections[0].FirstIndex().Int())
	assert.Equal(t, 8, sections[1].FirstIndex().Int())
	assert.Equal(t, 10, sections[1].LastIndex().Int())

	t.Run("too many services", func(t *testing.T) {
		entry := upEntries(t)[0]
		many := make([]EntryWithinSection, 0, 7000)
		for i := 0; i < 7000; i++ {
			many = append(many, entry)
		}
		_, err := BuildSections([]SectionContent{
			{Direction: mustDirection(t, "up"), WeekdayRange: mustWDR(t, "MTWTFSS"), Entries: many},
		})
		var ttErr *Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, TooManyServices, ttErr.Kind)
	})
}
