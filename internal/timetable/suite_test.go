package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suiteTimetable(t *testing.T, id, line int, ttype Type, begins, ends string) *Timetable {
	t.Helper()
	tt, err := New(Params{
		ID:       mustTimetableID(t, id),
		Line:     mustLine(t, line),
		Created:  *mustDate(t, "2022-08-01"),
		Type:     ttype,
		Begins:   mustDate(t, begins),
		Ends:     mustDate(t, ends),
		Sections: []*Section{mustSection(t, "albury-up", "MTWTF__", 0, upEntries(t)...)},
	})
	require.NoError(t, err)
	return tt
}

func TestHasOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		xStart, xEnd, yStart, yEnd string
		want                       bool
	}{
		{"both unbounded", "*", "*", "*", "*", true},
		{"unbounded and bounded", "*", "*", "2022-08-10", "2022-08-31", true},
		{"open end and open start apart", "2022-09-01", "*", "*", "2022-08-31", false},
		{"open end and open start touching", "2022-09-01", "*", "*", "2022-09-01", true},
		{"disjoint", "2022-01-01", "2022-01-31", "2022-02-01", "2022-02-28", false},
		{"shared day", "2022-01-01", "2022-02-01", "2022-02-01", "2022-02-28", true},
		{"contained", "2022-01-01", "2022-12-31", "2022-06-01", "2022-06-30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, xe := mustDate(t, tt.xStart), mustDate(t, tt.xEnd)
			ys, ye := mustDate(t, tt.yStart), mustDate(t, tt.yEnd)
			assert.Equal(t, tt.want, HasOverlap(xs, xe, ys, ye))
			assert.Equal(t, tt.want, HasOverlap(ys, ye, xs, xe))
		})
	}
}

func TestNewSuite(t *testing.T) {
	t.Run("overlapping main timetables", func(t *testing.T) {
		_, err := NewSuite([]*Timetable{
			suiteTimetable(t, 1, 3, TypeMain, "2022-08-10", "2022-08-31"),
			suiteTimetable(t, 2, 3, TypeMain, "*", "*"),
		})
		var ttErr *Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, OverlappingTimetables, ttErr.Kind)
		assert.Equal(t, TypeMain, ttErr.Type)
		assert.Equal(t, 3, ttErr.LineID.Int())
	})

	t.Run("different types may overlap", func(t *testing.T) {
		_, err := NewSuite([]*Timetable{
			suiteTimetable(t, 1, 3, TypeTemporary, "2022-08-10", "2022-08-31"),
			suiteTimetable(t, 2, 3, TypeMain, "*", "*"),
		})
		assert.NoError(t, err)
	})

	t.Run("different lines may overlap", func(t *testing.T) {
		_, err := NewSuite([]*Timetable{
			suiteTimetable(t, 1, 3, TypeMain, "*", "*"),
			suiteTimetable(t, 2, 6, TypeMain, "*", "*"),
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		_, err := NewSuite([]*Timetable{
			suiteTimetable(t, 1, 3, TypeMain, "*", "2022-08-31"),
			suiteTimetable(t, 1, 3, TypeMain, "2022-09-01", "*"),
		})
		var ttErr *Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, DuplicateTimetables, ttErr.Kind)
	})

	t.Run("nil timetable", func(t *testing.T) {
		_, err := NewSuite([]*Timetable{suiteTimetable(t, 1, 3, TypeMain, "*", "*"), nil})
		var ttErr *Error
		require.ErrorAs(t, err, &ttErr)
		assert.Equal(t, MissingElement, ttErr.Kind)
		assert.Contains(t, ttErr.Error(), "position 1")
	})
}

func TestSuiteLookup(t *testing.T) {
	suite, err := NewSuite([]*Timetable{
		suiteTimetable(t, 1, 3, TypeMain, "*", "2022-08-31"),
		suiteTimetable(t, 2, 3, TypeMain, "2022-09-01", "*"),
	})
	require.NoError(t, err)
	assert.Len(t, suite.Timetables(), 2)

	e, err := suite.RequireEntry(mustTimetableID(t, 2), mustIndex(t, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, e.Timetable().Int())
	assert.Equal(t, 3, e.Index().Int())

	_, ok := suite.Entry(mustTimetableID(t, 3), mustIndex(t, 0))
	assert.False(t, ok)
	_, err = suite.RequireEntry(mustTimetableID(t, 1), mustIndex(t, 10))
	assert.Error(t, err)

	tt, err := suite.RequireTimetable(mustTimetableID(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, tt.ID().Int())
	_, err = suite.RequireTimetable(mustTimetableID(t, 9))
	assert.Error(t, err)
}
