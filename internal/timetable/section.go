package timetable

import (
	"slices"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
)

// Section is one direction and set of weekdays whose entries repeat
// identically on every included day. Its indices are laid out day-major: for
// the d-th included day and the j-th entry the index is
// firstIndex + d*len(entries) + j.
type Section struct {
	direction  network.DirectionID
	wdr        calendar.WeekdayRange
	firstIndex EntryIndex
	entries    []EntryWithinSection
}

func NewSection(direction network.DirectionID, wdr calendar.WeekdayRange, firstIndex EntryIndex,
	entries []EntryWithinSection) (*Section, error) {

	if len(entries) < 1 || wdr.NumOfDays() < 1 {
		return nil, &Error{Kind: EmptySection, DirectionID: direction}
	}

	lastIndex := firstIndex.value + len(entries)*wdr.NumOfDays() - 1
	if !IsEntryIndex(lastIndex) {
		return nil, &Error{Kind: TooManyServices, DirectionID: direction}
	}

	return &Section{
		direction:  direction,
		wdr:        wdr,
		firstIndex: firstIndex,
		entries:    slices.Clone(entries),
	}, nil
}

func (s *Section) Direction() network.DirectionID { return s.direction }
func (s *Section) WeekdayRange() calendar.WeekdayRange { return s.wdr }
func (s *Section) FirstIndex() EntryIndex { return s.firstIndex }
func (s *Section) Entries() []EntryWithinSection { return slices.Clone(s.entries) }

// EntriesCount is the number of indices the section occupies.
func (s *Section) EntriesCount() int {
	return len(s.entries) * s.wdr.NumOfDays()
}

func (s *Section) LastIndex() EntryIndex {
	return EntryIndex{value: s.firstIndex.value + s.EntriesCount() - 1}
}

func (s *Section) HasIndex(index EntryIndex) bool {
	return index.value >= s.firstIndex.value && index.value <= s.LastIndex().value
}

// EntryByIndex returns the entry addressed by index, stamped with its day.
func (s *Section) EntryByIndex(index EntryIndex) (EntryWithinTimetable, bool) {
	if !s.HasIndex(index) {
		return EntryWithinTimetable{}, false
	}

	local := index.value - s.firstIndex.value
	entryPos := local % len(s.entries)
	dayPos := local / len(s.entries)

	day, err := s.wdr.DayOfWeekByIndex(dayPos)
	if err != nil {
		return EntryWithinTimetable{}, false
	}

	return s.stamp(s.entries[entryPos], index, day), true
}

// IndexedEntries returns every entry on every included day, in index order.
func (s *Section) IndexedEntries() []EntryWithinTimetable {
	result := make([]EntryWithinTimetable, 0, s.EntriesCount())
	for d, day := range s.wdr.Days() {
		start := s.firstIndex.value + len(s.entries)*d
		for j, e := range s.entries {
			result = append(result, s.stamp(e, EntryIndex{value: start + j}, day))
		}
	}
	return result
}

func (s *Section) stamp(e EntryWithinSection, index EntryIndex, day calendar.DayOfWeek) EntryWithinTimetable {
	return EntryWithinTimetable{
		EntryWithinSection: e,
		index:              index,
		direction:          s.direction,
		dayOfWeek:          day,
	}
}

// SectionContent is a section before it has been given its place in the
// index space.
type SectionContent struct {
	Direction    network.DirectionID
	WeekdayRange calendar.WeekdayRange
	Entries      []EntryWithinSection
}

// BuildSections lays contents out one after another starting at index 0, so
// the result tiles the index space as New requires.
func BuildSections(contents []SectionContent) ([]*Section, error) {
	sections := make([]*Section, 0, len(contents))
	next := 0
	for _, c := range contents {
		first, err := ToEntryIndex(next)
		if err != nil {
			return nil, &Error{Kind: TooManyServices, DirectionID: c.Direction}
		}

		section, err := NewSection(c.Direction, c.WeekdayRange, first, c.Entries)
		if err != nil {
			return nil, err
		}

		sections = append(sections, section)
		next += section.EntriesCount()
	}
	return sections, nil
}
