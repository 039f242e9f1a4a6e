package timetable

import (
	"fmt"
	"slices"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
)

// Sentinels for unbounded date ranges, outside any YYYYMMDD value.
const (
	unboundedStart = -1
	unboundedEnd   = 100000000
)

// Suite is a set of timetables with unique ids, where no two timetables for
// the same line and type are in effect on the same date.
type Suite struct {
	timetables []*Timetable
	byID       map[TimetableID]*Timetable
}

func NewSuite(timetables []*Timetable) (*Suite, error) {
	byID := make(map[TimetableID]*Timetable, len(timetables))
	for i, t := range timetables {
		if t == nil {
			return nil, &Error{Kind: MissingElement, Detail: fmt.Sprintf("timetable at position %d", i)}
		}
		if _, dup := byID[t.id]; dup {
			return nil, &Error{Kind: DuplicateTimetables, TimetableID: t.id}
		}
		byID[t.id] = t
	}

	for a := 0; a < len(timetables); a++ {
		for b := a + 1; b < len(timetables); b++ {
			x, y := timetables[a], timetables[b]
			if x.line != y.line || x.ttype != y.ttype {
				continue
			}
			if HasOverlap(x.begins, x.ends, y.begins, y.ends) {
				return nil, &Error{
					Kind:   OverlappingTimetables,
					LineID: x.line,
					Type:   x.ttype,
					Detail: fmt.Sprintf("timetables %s and %s", x.id, y.id),
				}
			}
		}
	}

	return &Suite{timetables: slices.Clone(timetables), byID: byID}, nil
}

// HasOverlap reports whether the date ranges [xStart, xEnd] and
// [yStart, yEnd] share a day. A nil start or end is unbounded.
func HasOverlap(xStart, xEnd, yStart, yEnd *calendar.LocalDate) bool {
	xs, xe := decimalOr(xStart, unboundedStart), decimalOr(xEnd, unboundedEnd)
	ys, ye := decimalOr(yStart, unboundedStart), decimalOr(yEnd, unboundedEnd)
	return !(xe < ys || ye < xs)
}

func decimalOr(d *calendar.LocalDate, fallback int) int {
	if d == nil {
		return fallback
	}
	return d.Decimal()
}

func (s *Suite) Timetables() []*Timetable { return slices.Clone(s.timetables) }

func (s *Suite) Timetable(id TimetableID) (*Timetable, bool) {
	t, ok := s.byID[id]
	return t, ok
}

func (s *Suite) RequireTimetable(id TimetableID) (*Timetable, error) {
	t, ok := s.Timetable(id)
	if !ok {
		return nil, &network.LookupError{What: "timetable", ID: id.String()}
	}
	return t, nil
}

// Entry returns the entry at index in the timetable with the given id.
func (s *Suite) Entry(id TimetableID, index EntryIndex) (Entry, bool) {
	t, ok := s.byID[id]
	if !ok {
		return Entry{}, false
	}
	return t.Entry(index)
}

func (s *Suite) RequireEntry(id TimetableID, index EntryIndex) (Entry, error) {
	e, ok := s.Entry(id, index)
	if !ok {
		return Entry{}, &network.LookupError{
			What: "timetable entry",
			ID:   fmt.Sprintf("%s in timetable %s", index, id),
		}
	}
	return e, nil
}
