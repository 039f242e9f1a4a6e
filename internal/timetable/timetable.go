package timetable

import (
	"fmt"
	"slices"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
)

// Params holds the fields of a Timetable before validation. A nil Begins means
// the timetable is already in effect; a nil Ends means it never expires.
type Params struct {
	ID       TimetableID
	Line     network.LineID
	Created  calendar.LocalDate
	Type     Type
	Begins   *calendar.LocalDate
	Ends     *calendar.LocalDate
	Sections []*Section
}

// Timetable is the schedule for one line. Its sections tile the index space
// from 0 upwards with no gaps or overlap.
type Timetable struct {
	id       TimetableID
	line     network.LineID
	created  calendar.LocalDate
	ttype    Type
	begins   *calendar.LocalDate
	ends     *calendar.LocalDate
	sections []*Section
}

func New(p Params) (*Timetable, error) {
	if len(p.Sections) < 1 {
		return nil, &Error{Kind: NoSections, TimetableID: p.ID}
	}

	next := 0
	for i, s := range p.Sections {
		if s == nil {
			return nil, &Error{Kind: MissingElement, TimetableID: p.ID, Detail: fmt.Sprintf("section at position %d", i)}
		}
		if s.firstIndex.value != next {
			return nil, &Error{Kind: BadSectionPartitioning, TimetableID: p.ID}
		}
		next = s.LastIndex().value + 1
	}

	if p.Begins != nil && p.Ends != nil && p.Begins.After(*p.Ends) {
		return nil, &Error{
			Kind:        BeginsAfterEnds,
			TimetableID: p.ID,
			Detail:      fmt.Sprintf("%s > %s", p.Begins, p.Ends),
		}
	}

	return &Timetable{
		id:       p.ID,
		line:     p.Line,
		created:  p.Created,
		ttype:    p.Type,
		begins:   cloneDate(p.Begins),
		ends:     cloneDate(p.Ends),
		sections: slices.Clone(p.Sections),
	}, nil
}

func cloneDate(d *calendar.LocalDate) *calendar.LocalDate {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func (t *Timetable) ID() TimetableID { return t.id }
func (t *Timetable) Line() network.LineID { return t.line }
func (t *Timetable) Created() calendar.LocalDate { return t.created }
func (t *Timetable) Type() Type { return t.ttype }
func (t *Timetable) Begins() *calendar.LocalDate { return cloneDate(t.begins) }
func (t *Timetable) Ends() *calendar.LocalDate { return cloneDate(t.ends) }
func (t *Timetable) Sections() []*Section { return slices.Clone(t.sections) }

// LastIndex is the index of the final entry of the final section.
func (t *Timetable) LastIndex() EntryIndex {
	return t.sections[len(t.sections)-1].LastIndex()
}

// EntriesCount is the number of indices in use.
func (t *Timetable) EntriesCount() int {
	return t.LastIndex().value + 1
}

// Entry returns the fully addressed entry at index.
func (t *Timetable) Entry(index EntryIndex) (Entry, bool) {
	for _, s := range t.sections {
		if !s.HasIndex(index) {
			continue
		}
		e, ok := s.EntryByIndex(index)
		if !ok {
			return Entry{}, false
		}
		return t.address(e), true
	}
	return Entry{}, false
}

func (t *Timetable) RequireEntry(index EntryIndex) (Entry, error) {
	e, ok := t.Entry(index)
	if !ok {
		return Entry{}, &network.LookupError{
			What: "timetable entry",
			ID:   fmt.Sprintf("%s in timetable %s", index, t.id),
		}
	}
	return e, nil
}

// Entries returns every fully addressed entry in index order.
func (t *Timetable) Entries() []Entry {
	result := make([]Entry, 0, t.EntriesCount())
	for _, s := range t.sections {
		for _, e := range s.IndexedEntries() {
			result = append(result, t.address(e))
		}
	}
	return result
}

// Validate checks the timetable against the network. See Validate.
func (t *Timetable) Validate(n *network.TransitNetwork) error {
	return Validate(t, n)
}

func (t *Timetable) address(e EntryWithinTimetable) Entry {
	return Entry{EntryWithinTimetable: e, timetable: t.id, line: t.line}
}
