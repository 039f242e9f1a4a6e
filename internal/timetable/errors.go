package timetable

import (
	"fmt"

	"transitnet.org/ttbl/internal/network"
)

// ErrorKind identifies which timetable rule was broken.
type ErrorKind int

const (
	NoSections ErrorKind = iota + 1
	EmptySection
	TooManyServices
	BadSectionPartitioning
	BeginsAfterEnds
	NotEnoughStops
	TimeTravel
	LineDoesntExist
	DirectionDoesntExist
	DirectionIncorrectStops
	DuplicateTimetables
	OverlappingTimetables
	MissingElement
)

// Error is returned when a timetable, section, entry or suite would break one
// of its invariants, or when a timetable doesn't fit the transit network.
type Error struct {
	Kind        ErrorKind
	TimetableID TimetableID
	LineID      network.LineID
	DirectionID network.DirectionID
	Type        Type
	Detail      string
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoSections:
		return "timetable cannot be empty (have no sections)"
	case EmptySection:
		return "timetable section cannot be empty (have no entries)"
	case TooManyServices:
		return "timetable exceeds maximum number of services for a timetable"
	case BadSectionPartitioning:
		return "timetable sections have overlap or gaps between section indices, or are not sorted in smallest to largest order"
	case BeginsAfterEnds:
		return fmt.Sprintf("begins date occurs after ends date (%s)", e.Detail)
	case NotEnoughStops:
		return "timetable section has entries that make less than 2 stops"
	case TimeTravel:
		return fmt.Sprintf("timetable section has entries that require time travel (%s)", e.Detail)
	case LineDoesntExist:
		return fmt.Sprintf("line %q doesn't exist", e.LineID)
	case DirectionDoesntExist:
		return fmt.Sprintf("direction %q doesn't exist on line %q", e.DirectionID, e.LineID)
	case DirectionIncorrectStops:
		return fmt.Sprintf("entry stops out of order for direction %q on line %q (%s)", e.DirectionID, e.LineID, e.Detail)
	case DuplicateTimetables:
		return fmt.Sprintf("timetable ID %q is used more than once", e.TimetableID)
	case OverlappingTimetables:
		return fmt.Sprintf("multiple overlapping timetables for line %q and type %q", e.LineID, e.Type)
	case MissingElement:
		return fmt.Sprintf("nil %s", e.Detail)
	default:
		return "timetable error"
	}
}
