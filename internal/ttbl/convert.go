package ttbl

import (
	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/timetable"
	"transitnet.org/ttbl/internal/utils"
)

// unnamedComment is used for a stop whose name has nothing left once
// kebabified.
const unnamedComment = "stop"

// ToTimetable turns each grid into a section and each grid column into a
// service. Sections take their indices in file order, starting from 0.
func ToTimetable(f *File) (*timetable.Timetable, error) {
	contents := make([]timetable.SectionContent, 0, len(f.grids))
	for _, g := range f.grids {
		entries := make([]timetable.EntryWithinSection, 0, g.Width())
		for x := 0; x < g.Width(); x++ {
			cells := g.Column(x)
			stops := make([]timetable.EntryStop, len(cells))
			for i, c := range cells {
				stops[i] = timetable.EntryStop{Stop: c.Stop, Time: c.Time}
			}

			entry, err := timetable.NewEntryWithinSection(stops)
			if err != nil {
				return nil, &FormatError{Kind: GridBadEntry, Section: g.Title(), Column: x + 1, Err: err}
			}
			entries = append(entries, entry)
		}

		contents = append(contents, timetable.SectionContent{
			Direction:    g.Direction(),
			WeekdayRange: g.WeekdayRange(),
			Entries:      entries,
		})
	}

	sections, err := timetable.BuildSections(contents)
	if err != nil {
		return nil, err
	}

	return timetable.New(timetable.Params{
		ID:       f.id,
		Line:     f.line,
		Created:  f.created,
		Type:     f.ttype,
		Begins:   f.begins,
		Ends:     f.ends,
		Sections: sections,
	})
}

// FromTimetable lays t out as grids. Each grid lists every stop of its
// direction, in direction order, commented with the stop's kebab-case name.
func FromTimetable(t *timetable.Timetable, n *network.TransitNetwork) (*File, error) {
	line, err := n.RequireLine(t.Line())
	if err != nil {
		return nil, err
	}

	grids := make([]*GridSection, 0, len(t.Sections()))
	for _, s := range t.Sections() {
		direction, err := line.RequireDirection(s.Direction())
		if err != nil {
			return nil, err
		}

		entries := s.Entries()
		rows := make([]GridRow, 0, len(direction.Stops()))
		for _, stopID := range direction.Stops() {
			stop, err := n.RequireStop(stopID)
			if err != nil {
				return nil, err
			}

			comment := utils.Kebabify(stop.Name())
			if comment == "" {
				comment = unnamedComment
			}

			times := make([]*calendar.LocalTime, len(entries))
			for i, e := range entries {
				if at, ok := e.TimeAt(stopID); ok {
					times[i] = &at
				}
			}

			rows = append(rows, GridRow{Stop: stopID, Comment: comment, Times: times})
		}

		grid, err := NewGridSection(s.Direction(), s.WeekdayRange(), rows)
		if err != nil {
			return nil, err
		}
		grids = append(grids, grid)
	}

	return NewFile(FileParams{
		Created: t.Created(),
		ID:      t.ID(),
		Line:    t.Line(),
		Type:    t.Type(),
		Begins:  t.Begins(),
		Ends:    t.Ends(),
		Grids:   grids,
	})
}
