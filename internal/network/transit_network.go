package network

import (
	"fmt"
	"slices"
)

// TransitNetwork is the set of stops and lines timetables are checked
// against. Stop and line ids are unique and every stop a line visits exists.
type TransitNetwork struct {
	// hash identifies the data release, usually its date, e.g. "2022-10-26".
	hash  string
	stops []*Stop
	lines []*Line

	stopsByID map[StopID]*Stop
	linesByID map[LineID]*Line
}

func NewTransitNetwork(hash string, stops []*Stop, lines []*Line) (*TransitNetwork, error) {
	stopsByID := make(map[StopID]*Stop, len(stops))
	for i, s := range stops {
		if s == nil {
			return nil, &Error{Kind: MissingElement, Detail: fmt.Sprintf("stop at position %d", i)}
		}
		if _, dup := stopsByID[s.id]; dup {
			return nil, &Error{Kind: DuplicateStops, StopID: s.id}
		}
		stopsByID[s.id] = s
	}

	linesByID := make(map[LineID]*Line, len(lines))
	for i, l := range lines {
		if l == nil {
			return nil, &Error{Kind: MissingElement, Detail: fmt.Sprintf("line at position %d", i)}
		}
		if _, dup := linesByID[l.id]; dup {
			return nil, &Error{Kind: DuplicateLines, LineID: l.id}
		}
		linesByID[l.id] = l
	}

	for _, l := range lines {
		for _, s := range l.allStops {
			if _, ok := stopsByID[s]; !ok {
				return nil, &Error{Kind: GhostStops, LineID: l.id, StopID: s}
			}
		}
	}

	return &TransitNetwork{
		hash:      hash,
		stops:     slices.Clone(stops),
		lines:     slices.Clone(lines),
		stopsByID: stopsByID,
		linesByID: linesByID,
	}, nil
}

func (n *TransitNetwork) Hash() string { return n.hash }
func (n *TransitNetwork) Stops() []*Stop { return slices.Clone(n.stops) }
func (n *TransitNetwork) Lines() []*Line { return slices.Clone(n.lines) }

func (n *TransitNetwork) Stop(id StopID) (*Stop, bool) {
	s, ok := n.stopsByID[id]
	return s, ok
}

func (n *TransitNetwork) Line(id LineID) (*Line, bool) {
	l, ok := n.linesByID[id]
	return l, ok
}

func (n *TransitNetwork) RequireStop(id StopID) (*Stop, error) {
	s, ok := n.Stop(id)
	if !ok {
		return nil, &LookupError{What: "stop", ID: id.String()}
	}
	return s, nil
}

func (n *TransitNetwork) RequireLine(id LineID) (*Line, error) {
	l, ok := n.Line(id)
	if !ok {
		return nil, &LookupError{What: "line", ID: id.String()}
	}
	return l, nil
}

// RequireStopThat returns the first stop matching predicate.
func (n *TransitNetwork) RequireStopThat(predicate func(*Stop) bool) (*Stop, error) {
	for _, s := range n.stops {
		if predicate(s) {
			return s, nil
		}
	}
	return nil, &LookupError{What: "stop matching rule"}
}

// RequireLineThat returns the first line matching predicate.
func (n *TransitNetwork) RequireLineThat(predicate func(*Line) bool) (*Line, error) {
	for _, l := range n.lines {
		if predicate(l) {
			return l, nil
		}
	}
	return nil, &LookupError{What: "line matching rule"}
}

// LinesThatStopAt returns the lines with a direction visiting stop.
func (n *TransitNetwork) LinesThatStopAt(stop StopID) []*Line {
	var result []*Line
	for _, l := range n.lines {
		if l.StopsAt(stop) {
			result = append(result, l)
		}
	}
	return result
}

// StopFromName returns the stop whose name matches exactly.
func (n *TransitNetwork) StopFromName(name string) (*Stop, bool) {
	for _, s := range n.stops {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}
