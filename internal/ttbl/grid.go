package ttbl

import (
	"fmt"
	"slices"
	"strings"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/utils"
)

const (
	// NoTime marks a grid cell where the service doesn't stop.
	NoTime = "-"

	timeColumnWidth = 6
)

// GridRow is one stop of a grid and its time in every column. A nil time
// means the service in that column doesn't stop here.
type GridRow struct {
	Stop    network.StopID
	Comment string
	Times   []*calendar.LocalTime
}

// GridSection is a "[direction, WDR]" section: rows are stops, columns are
// services.
type GridSection struct {
	direction network.DirectionID
	wdr       calendar.WeekdayRange
	rows      []GridRow
}

// NewGridSection checks that stops are unique, that every row has the same
// number of columns, and that each comment is a single word without a colon.
func NewGridSection(direction network.DirectionID, wdr calendar.WeekdayRange, rows []GridRow) (*GridSection, error) {
	title := gridTitle(direction, wdr)
	if len(rows) == 0 {
		return nil, &FormatError{Kind: SectionEmpty, Section: title}
	}

	seen := make(map[network.StopID]struct{}, len(rows))
	width := len(rows[0].Times)
	for _, r := range rows {
		if _, dup := seen[r.Stop]; dup {
			return nil, &FormatError{Kind: GridDuplicateStop, Section: title, Text: fmt.Sprintf("%04d", r.Stop.Int())}
		}
		seen[r.Stop] = struct{}{}

		if len(r.Times) != width {
			return nil, &FormatError{Kind: GridJagged, Section: title}
		}
		if r.Comment == "" || strings.ContainsAny(r.Comment, ": \t") {
			return nil, &FormatError{Kind: GridBadSyntax, Section: title, Text: r.Comment}
		}
	}
	if width == 0 {
		return nil, &FormatError{Kind: GridBadSyntax, Section: title, Text: "grid has no services"}
	}

	copied := make([]GridRow, len(rows))
	for i, r := range rows {
		copied[i] = GridRow{Stop: r.Stop, Comment: r.Comment, Times: slices.Clone(r.Times)}
	}
	return &GridSection{direction: direction, wdr: wdr, rows: copied}, nil
}

func gridTitle(direction network.DirectionID, wdr calendar.WeekdayRange) string {
	return direction.String() + ", " + wdr.String()
}

// PromoteGrid parses a raw section as a grid. The title must be
// "<direction>, <WDR>" and each line "<stop> <comment> <time|-> ...".
func PromoteGrid(section Section) (*GridSection, error) {
	title := section.title
	badTitle := &FormatError{Kind: GridBadSyntax, Section: title, Text: title}

	titleWords := utils.SplitTrim(title, ",")
	if len(titleWords) != 2 {
		return nil, badTitle
	}
	direction, err := network.ToDirectionID(titleWords[0])
	if err != nil {
		return nil, badTitle
	}
	wdr, err := calendar.ParseWeekdayRange(titleWords[1])
	if err != nil {
		return nil, badTitle
	}

	rows := make([]GridRow, 0, len(section.lines))
	seen := make(map[network.StopID]struct{}, len(section.lines))
	for _, line := range section.lines {
		badLine := &FormatError{Kind: GridBadSyntax, Section: title, Text: line}

		words := strings.Fields(line)
		if len(words) < 3 {
			return nil, badLine
		}

		stop, err := network.ParseStopID(words[0])
		if err != nil {
			return nil, badLine
		}
		if _, dup := seen[stop]; dup {
			return nil, &FormatError{Kind: GridDuplicateStop, Section: title, Text: words[0]}
		}
		seen[stop] = struct{}{}

		// A colon here means the comment is missing and a time took its place.
		if strings.Contains(words[1], ":") {
			return nil, badLine
		}

		times := make([]*calendar.LocalTime, 0, len(words)-2)
		for _, w := range words[2:] {
			if w == NoTime {
				times = append(times, nil)
				continue
			}
			t, err := calendar.ParseLocalTimeWithMarker(w)
			if err != nil {
				return nil, badLine
			}
			times = append(times, &t)
		}

		rows = append(rows, GridRow{Stop: stop, Comment: words[1], Times: times})
	}

	return NewGridSection(direction, wdr, rows)
}

func (g *GridSection) Direction() network.DirectionID { return g.direction }
func (g *GridSection) WeekdayRange() calendar.WeekdayRange { return g.wdr }
func (g *GridSection) Title() string { return gridTitle(g.direction, g.wdr) }

func (g *GridSection) Rows() []GridRow {
	rows := make([]GridRow, len(g.rows))
	for i, r := range g.rows {
		rows[i] = GridRow{Stop: r.Stop, Comment: r.Comment, Times: slices.Clone(r.Times)}
	}
	return rows
}

// Width is the number of services (columns) in the grid.
func (g *GridSection) Width() int {
	return len(g.rows[0].Times)
}

// Column returns the stops the service in column x makes, top to bottom.
func (g *GridSection) Column(x int) []GridCell {
	var cells []GridCell
	for _, r := range g.rows {
		if t := r.Times[x]; t != nil {
			cells = append(cells, GridCell{Stop: r.Stop, Time: *t})
		}
	}
	return cells
}

// GridCell is a stop and the time a service is there.
type GridCell struct {
	Stop network.StopID
	Time calendar.LocalTime
}

// Write renders the grid with the comment column padded to the longest
// comment and every time padded to six characters.
func (g *GridSection) Write() string {
	commentWidth := 0
	for _, r := range g.rows {
		commentWidth = max(commentWidth, len(r.Comment))
	}

	lines := make([]string, 0, len(g.rows))
	for _, r := range g.rows {
		cells := make([]string, len(r.Times))
		for i, t := range r.Times {
			text := NoTime
			if t != nil {
				text = t.Format(true)
			}
			cells[i] = fmt.Sprintf("%-*s", timeColumnWidth, text)
		}
		lines = append(lines, fmt.Sprintf("%04d %-*s %s", r.Stop.Int(), commentWidth, r.Comment, strings.Join(cells, " ")))
	}
	return writeSection(g.Title(), lines)
}
