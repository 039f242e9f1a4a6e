package network

import (
	"errors"
	"fmt"
	"slices"
)

// Direction is one direction of travel on a line, with its stops in stopping
// order. A direction has at least two stops and never revisits a stop.
type Direction struct {
	id    DirectionID
	name  string
	stops []StopID
}

func NewDirection(id DirectionID, name string, stops []StopID) (*Direction, error) {
	if len(stops) < 2 {
		return nil, &Error{Kind: NotEnoughStops, DirectionID: id}
	}

	seen := make(map[StopID]struct{}, len(stops))
	for _, s := range stops {
		if _, dup := seen[s]; dup {
			return nil, &Error{Kind: DuplicateStopsInDirection, DirectionID: id}
		}
		seen[s] = struct{}{}
	}

	return &Direction{id: id, name: name, stops: slices.Clone(stops)}, nil
}

func (d *Direction) ID() DirectionID { return d.id }
func (d *Direction) Name() string { return d.name }
func (d *Direction) Stops() []StopID { return slices.Clone(d.stops) }

// Contains reports whether the direction stops at stop.
func (d *Direction) Contains(stop StopID) bool {
	return slices.Contains(d.stops, stop)
}

// LineParams holds the fields of a Line before validation.
type LineParams struct {
	ID                LineID
	Name              string
	Color             LineColor
	Service           LineService
	Route             Route
	SpecialEventsOnly bool
	Tags              []string
	Directions        []*Direction
}

// Line is a line on the transit network. It has at least one direction and
// its direction ids are unique.
type Line struct {
	id                LineID
	name              string
	color             LineColor
	service           LineService
	route             Route
	specialEventsOnly bool
	tags              []string
	directions        []*Direction
	allStops          []StopID
}

func NewLine(p LineParams) (*Line, error) {
	if _, err := ParseLineColor(string(p.Color)); err != nil {
		return nil, err
	}
	if _, err := ParseLineService(string(p.Service)); err != nil {
		return nil, err
	}
	if p.Route == nil {
		return nil, &Error{Kind: PortalMismatch, LineID: p.ID, Detail: "line has no route type"}
	}
	if _, err := NewRoute(p.Route.Type(), portalOf(p.Route)); err != nil {
		var netErr *Error
		if errors.As(err, &netErr) {
			netErr.LineID = p.ID
		}
		return nil, err
	}
	if len(p.Directions) < 1 {
		return nil, &Error{Kind: NoDirections, LineID: p.ID}
	}

	seen := make(map[DirectionID]struct{}, len(p.Directions))
	var allStops []StopID
	visited := make(map[StopID]struct{})
	for i, d := range p.Directions {
		if d == nil {
			return nil, &Error{Kind: MissingElement, LineID: p.ID, Detail: fmt.Sprintf("direction at position %d of line %s", i, p.ID)}
		}
		if _, dup := seen[d.id]; dup {
			return nil, &Error{Kind: DuplicateDirections, LineID: p.ID}
		}
		seen[d.id] = struct{}{}

		for _, s := range d.stops {
			if _, ok := visited[s]; !ok {
				visited[s] = struct{}{}
				allStops = append(allStops, s)
			}
		}
	}

	return &Line{
		id:                p.ID,
		name:              p.Name,
		color:             p.Color,
		service:           p.Service,
		route:             p.Route,
		specialEventsOnly: p.SpecialEventsOnly,
		tags:              slices.Clone(p.Tags),
		directions:        slices.Clone(p.Directions),
		allStops:          allStops,
	}, nil
}

func (l *Line) ID() LineID { return l.id }
func (l *Line) Name() string { return l.name }
func (l *Line) Color() LineColor { return l.color }
func (l *Line) Service() LineService { return l.service }
func (l *Line) Route() Route { return l.route }
func (l *Line) RouteType() RouteType { return l.route.Type() }
func (l *Line) SpecialEventsOnly() bool { return l.specialEventsOnly }
func (l *Line) Tags() []string { return slices.Clone(l.tags) }
func (l *Line) Directions() []*Direction { return slices.Clone(l.directions) }

// Portal returns the city loop portal for city-loop lines.
func (l *Line) Portal() (CityLoopPortal, bool) {
	if p := portalOf(l.route); p != nil {
		return *p, true
	}
	return "", false
}

// AllStops lists every stop any direction visits, each once, in the order
// they are first seen.
func (l *Line) AllStops() []StopID {
	return slices.Clone(l.allStops)
}

// StopsAt reports whether any direction of the line visits stop.
func (l *Line) StopsAt(stop StopID) bool {
	return slices.Contains(l.allStops, stop)
}

func (l *Line) Direction(id DirectionID) (*Direction, bool) {
	for _, d := range l.directions {
		if d.id == id {
			return d, true
		}
	}
	return nil, false
}

func (l *Line) RequireDirection(id DirectionID) (*Direction, error) {
	d, ok := l.Direction(id)
	if !ok {
		return nil, &LookupError{What: "direction", ID: id.String()}
	}
	return d, nil
}
