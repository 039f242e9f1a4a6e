package timetable

import (
	"fmt"
	"slices"

	"transitnet.org/ttbl/internal/network"
)

// Validate checks that t's line and every section's direction exist in n, and
// that each entry visits its stops in the order the direction lists them.
// Entries may skip stops but never reorder them.
func Validate(t *Timetable, n *network.TransitNetwork) error {
	line, ok := n.Line(t.line)
	if !ok {
		return &Error{Kind: LineDoesntExist, TimetableID: t.id, LineID: t.line}
	}

	for _, s := range t.sections {
		direction, ok := line.Direction(s.direction)
		if !ok {
			return &Error{Kind: DirectionDoesntExist, TimetableID: t.id, LineID: t.line, DirectionID: s.direction}
		}

		directionStops := direction.Stops()
		for i, e := range s.entries {
			visited := e.StopIDs()
			expected := slices.DeleteFunc(slices.Clone(directionStops), func(stop network.StopID) bool {
				return !slices.Contains(visited, stop)
			})
			if !slices.Equal(visited, expected) {
				return &Error{
					Kind:        DirectionIncorrectStops,
					TimetableID: t.id,
					LineID:      t.line,
					DirectionID: s.direction,
					Detail:      fmt.Sprintf("entry %d of %s section", i+1, s.wdr),
				}
			}
		}
	}

	return nil
}
