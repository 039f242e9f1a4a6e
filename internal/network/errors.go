package network

import "fmt"

// ErrorKind identifies which network rule was broken.
type ErrorKind int

const (
	NotEnoughStops ErrorKind = iota + 1
	NoPlatforms
	NoDirections
	DuplicatePlatforms
	DuplicateDirections
	DuplicateStops
	DuplicateLines
	GhostStops
	PortalMismatch
	DuplicateStopsInDirection
	MalformedJSON
	MissingElement
)

// Error is returned when a Stop, Line, Direction or TransitNetwork would break
// one of its invariants, or when network JSON has the wrong shape.
type Error struct {
	Kind        ErrorKind
	StopID      StopID
	LineID      LineID
	DirectionID DirectionID
	Detail      string
	Err         error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NotEnoughStops:
		return fmt.Sprintf("direction with ID %q has less than 2 stops", e.DirectionID)
	case NoPlatforms:
		return fmt.Sprintf("stop with ID %q has no platforms", e.StopID)
	case NoDirections:
		return fmt.Sprintf("line with ID %q has no directions", e.LineID)
	case DuplicatePlatforms:
		return fmt.Sprintf("duplicate platform IDs in use for stop with ID %q", e.StopID)
	case DuplicateDirections:
		return fmt.Sprintf("duplicate direction IDs in use for line with ID %q", e.LineID)
	case DuplicateStops:
		return fmt.Sprintf("duplicate stop ID %q in use", e.StopID)
	case DuplicateLines:
		return fmt.Sprintf("duplicate line ID %q in use", e.LineID)
	case GhostStops:
		return fmt.Sprintf("line with ID %q refers to stop %q which doesn't exist", e.LineID, e.StopID)
	case PortalMismatch:
		return fmt.Sprintf("line with ID %q: %s", e.LineID, e.Detail)
	case DuplicateStopsInDirection:
		return fmt.Sprintf("direction %q has the same stops multiple times", e.DirectionID)
	case MalformedJSON:
		what := "network"
		if e.Detail != "" {
			what = e.Detail
		}
		return fmt.Sprintf("malformed %s JSON: %v", what, e.Err)
	case MissingElement:
		return fmt.Sprintf("nil %s", e.Detail)
	default:
		return "transit network error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IDType names the kind of identifier a BadIDError was raised for.
type IDType string

const (
	StopIDType      IDType = "stop"
	LineIDType      IDType = "line"
	DirectionIDType IDType = "direction"
	PlatformIDType  IDType = "platform"
)

// BadIDError is returned when a number or string is not a valid identifier.
type BadIDError struct {
	Type  IDType
	Value string
}

func (e *BadIDError) Error() string {
	return fmt.Sprintf("bad %s ID %q", e.Type, e.Value)
}

// BadEnumError is returned when a string is not one of an enum's values.
type BadEnumError struct {
	Enum  string
	Value string
}

func (e *BadEnumError) Error() string {
	return fmt.Sprintf("bad %s %q", e.Enum, e.Value)
}

// LookupError is returned by the Require* accessors when nothing matches.
type LookupError struct {
	What string
	ID   string
}

func (e *LookupError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("no %s found", e.What)
	}
	return fmt.Sprintf("%s %q not found", e.What, e.ID)
}

// LineGraphErrorKind identifies which line graph rule was broken.
type LineGraphErrorKind int

const (
	GraphNotEnoughStops LineGraphErrorKind = iota + 1
	GraphExpressTerminus
	GraphTransparentStopsUnavailable
	GraphBadFirstOpaqueStopIndex
)

// LineGraphError is returned when a LineGraph or one of its parts would be
// impossible to draw.
type LineGraphError struct {
	Kind  LineGraphErrorKind
	Index int
}

func (e *LineGraphError) Error() string {
	switch e.Kind {
	case GraphNotEnoughStops:
		return "some section of the line graph has too few stops"
	case GraphExpressTerminus:
		return "the terminus or origin of a line graph cannot be express"
	case GraphTransparentStopsUnavailable:
		return "only linear line graphs can have transparent stops"
	case GraphBadFirstOpaqueStopIndex:
		return fmt.Sprintf("first opaque stop index %d is out of range", e.Index)
	default:
		return "line graph error"
	}
}
