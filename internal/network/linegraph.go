package network

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"
)

// CityLoopDirection is the usual running direction of a line around the loop.
type CityLoopDirection string

const (
	LoopClockwise     CityLoopDirection = "clockwise"
	LoopAnticlockwise CityLoopDirection = "anticlockwise"
)

var CityLoopDirections = []CityLoopDirection{LoopClockwise, LoopAnticlockwise}

func ParseCityLoopDirection(s string) (CityLoopDirection, error) {
	return parseEnum(s, CityLoopDirections, "city loop direction")
}

// LineGraphStop is a stop drawn on a line diagram, optionally as express.
type LineGraphStop struct {
	id        StopID
	isExpress bool
}

func NewLineGraphStop(id StopID, isExpress bool) LineGraphStop {
	return LineGraphStop{id: id, isExpress: isExpress}
}

func (s LineGraphStop) ID() StopID { return s.id }
func (s LineGraphStop) IsExpress() bool { return s.isExpress }

// LineGraphCityLoop describes how the city loop is drawn. Stops inside the
// loop are never drawn as express.
type LineGraphCityLoop struct {
	portal    CityLoopPortal
	direction *CityLoopDirection
}

// NewLineGraphCityLoop builds the loop part of a diagram. A nil direction
// means the line has no usual running direction.
func NewLineGraphCityLoop(portal CityLoopPortal, direction *CityLoopDirection) (*LineGraphCityLoop, error) {
	if _, err := ParseCityLoopPortal(string(portal)); err != nil {
		return nil, err
	}
	loop := &LineGraphCityLoop{portal: portal}
	if direction != nil {
		d, err := ParseCityLoopDirection(string(*direction))
		if err != nil {
			return nil, err
		}
		loop.direction = &d
	}
	return loop, nil
}

func (l *LineGraphCityLoop) Portal() CityLoopPortal { return l.portal }

func (l *LineGraphCityLoop) Direction() (CityLoopDirection, bool) {
	if l.direction == nil {
		return "", false
	}
	return *l.direction, true
}

// LineGraphBranches holds the two branches a line forks into. Each branch has
// a stop and ends at a stop that is not express.
type LineGraphBranches struct {
	branchA []LineGraphStop
	branchB []LineGraphStop
}

func NewLineGraphBranches(branchA, branchB []LineGraphStop) (*LineGraphBranches, error) {
	if len(branchA) < 1 || len(branchB) < 1 {
		return nil, &LineGraphError{Kind: GraphNotEnoughStops}
	}
	if branchA[len(branchA)-1].isExpress || branchB[len(branchB)-1].isExpress {
		return nil, &LineGraphError{Kind: GraphExpressTerminus}
	}
	return &LineGraphBranches{branchA: slices.Clone(branchA), branchB: slices.Clone(branchB)}, nil
}

func (b *LineGraphBranches) BranchAStops() []LineGraphStop { return slices.Clone(b.branchA) }
func (b *LineGraphBranches) BranchBStops() []LineGraphStop { return slices.Clone(b.branchB) }

// LineGraphParams holds the fields of a LineGraph before validation.
type LineGraphParams struct {
	// Stops come after the loop and before the fork, if either is present.
	Stops    []LineGraphStop
	Loop     *LineGraphCityLoop
	Branches *LineGraphBranches
	// FirstOpaqueStopIndex, when set, draws every earlier stop semi-transparent.
	FirstOpaqueStopIndex *int
}

// LineGraph is what to draw in the line diagram of one line.
type LineGraph struct {
	stops                []LineGraphStop
	loop                 *LineGraphCityLoop
	branches             *LineGraphBranches
	firstOpaqueStopIndex *int
}

func NewLineGraph(p LineGraphParams) (*LineGraph, error) {
	linear := p.Loop == nil && p.Branches == nil

	// A loop or fork contributes the remaining stops.
	if len(p.Stops) < 1 || (linear && len(p.Stops) < 2) {
		return nil, &LineGraphError{Kind: GraphNotEnoughStops}
	}
	if p.Loop == nil && p.Stops[0].isExpress {
		return nil, &LineGraphError{Kind: GraphExpressTerminus}
	}

	g := &LineGraph{
		stops:    slices.Clone(p.Stops),
		loop:     p.Loop,
		branches: p.Branches,
	}
	if p.FirstOpaqueStopIndex != nil {
		i := *p.FirstOpaqueStopIndex
		if !linear {
			return nil, &LineGraphError{Kind: GraphTransparentStopsUnavailable}
		}
		if i < 0 || i >= len(p.Stops) {
			return nil, &LineGraphError{Kind: GraphBadFirstOpaqueStopIndex, Index: i}
		}
		g.firstOpaqueStopIndex = &i
	}
	return g, nil
}

func (g *LineGraph) Stops() []LineGraphStop { return slices.Clone(g.stops) }
func (g *LineGraph) Loop() *LineGraphCityLoop { return g.loop }
func (g *LineGraph) Branches() *LineGraphBranches { return g.branches }

func (g *LineGraph) FirstOpaqueStopIndex() (int, bool) {
	if g.firstOpaqueStopIndex == nil {
		return 0, false
	}
	return *g.firstOpaqueStopIndex, true
}

// RouteType is the route shape the diagram draws.
func (g *LineGraph) RouteType() RouteType {
	switch {
	case g.loop != nil:
		return RouteCityLoop
	case g.branches != nil:
		return RouteBranch
	default:
		return RouteLinear
	}
}

// StopIDs lists every stop drawn: the main stops, then branch A, then branch B.
func (g *LineGraph) StopIDs() []StopID {
	all := g.stops
	if g.branches != nil {
		all = slices.Concat(all, g.branches.branchA, g.branches.branchB)
	}
	ids := make([]StopID, 0, len(all))
	for _, s := range all {
		ids = append(ids, s.id)
	}
	return ids
}

// Validate checks that every stop drawn exists on n.
func (g *LineGraph) Validate(n *TransitNetwork) error {
	for _, id := range g.StopIDs() {
		if _, err := n.RequireStop(id); err != nil {
			return err
		}
	}
	return nil
}

type lineGraphStopRecord struct {
	ID        *int  `json:"id" validate:"required"`
	IsExpress *bool `json:"isExpress" validate:"required"`
}

type lineGraphCityLoopRecord struct {
	Portal    string  `json:"portal"`
	Direction *string `json:"direction"`
}

type lineGraphBranchesRecord struct {
	BranchAStops []lineGraphStopRecord `json:"branchAStops" validate:"required,min=1,dive"`
	BranchBStops []lineGraphStopRecord `json:"branchBStops" validate:"required,min=1,dive"`
}

type lineGraphRecord struct {
	Stops                []lineGraphStopRecord    `json:"stops" validate:"required,min=1,dive"`
	Loop                 *lineGraphCityLoopRecord `json:"loop"`
	Branches             *lineGraphBranchesRecord `json:"branches"`
	FirstOpaqueStopIndex *int                     `json:"firstOpaqueStopIndex"`
}

// ParseLineGraph builds a line graph from the JSON form written by
// MarshalJSON. Shape problems are an *Error of kind MalformedJSON.
func ParseLineGraph(data []byte) (*LineGraph, error) {
	return DecodeLineGraph(bytes.NewReader(data))
}

func DecodeLineGraph(r io.Reader) (*LineGraph, error) {
	var rec lineGraphRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, &Error{Kind: MalformedJSON, Detail: "line graph", Err: err}
	}
	if err := validate.Struct(rec); err != nil {
		return nil, &Error{Kind: MalformedJSON, Detail: "line graph", Err: err}
	}
	return rec.build()
}

func buildGraphStops(records []lineGraphStopRecord) ([]LineGraphStop, error) {
	stops := make([]LineGraphStop, 0, len(records))
	for _, r := range records {
		id, err := ToStopID(*r.ID)
		if err != nil {
			return nil, err
		}
		stops = append(stops, NewLineGraphStop(id, *r.IsExpress))
	}
	return stops, nil
}

func (rec lineGraphRecord) build() (*LineGraph, error) {
	stops, err := buildGraphStops(rec.Stops)
	if err != nil {
		return nil, err
	}
	p := LineGraphParams{Stops: stops, FirstOpaqueStopIndex: rec.FirstOpaqueStopIndex}

	if rec.Loop != nil {
		var direction *CityLoopDirection
		if rec.Loop.Direction != nil {
			d := CityLoopDirection(*rec.Loop.Direction)
			direction = &d
		}
		p.Loop, err = NewLineGraphCityLoop(CityLoopPortal(rec.Loop.Portal), direction)
		if err != nil {
			return nil, err
		}
	}

	if rec.Branches != nil {
		a, err := buildGraphStops(rec.Branches.BranchAStops)
		if err != nil {
			return nil, err
		}
		b, err := buildGraphStops(rec.Branches.BranchBStops)
		if err != nil {
			return nil, err
		}
		p.Branches, err = NewLineGraphBranches(a, b)
		if err != nil {
			return nil, err
		}
	}

	return NewLineGraph(p)
}

func graphStopRecords(stops []LineGraphStop) []lineGraphStopRecord {
	records := make([]lineGraphStopRecord, 0, len(stops))
	for _, s := range stops {
		id, express := s.id.Int(), s.isExpress
		records = append(records, lineGraphStopRecord{ID: &id, IsExpress: &express})
	}
	return records
}

// MarshalJSON writes the graph in the layout ParseLineGraph reads. Absent
// parts are written as null.
func (g *LineGraph) MarshalJSON() ([]byte, error) {
	rec := lineGraphRecord{
		Stops:                graphStopRecords(g.stops),
		FirstOpaqueStopIndex: g.firstOpaqueStopIndex,
	}
	if g.loop != nil {
		rec.Loop = &lineGraphCityLoopRecord{Portal: string(g.loop.portal)}
		if g.loop.direction != nil {
			d := string(*g.loop.direction)
			rec.Loop.Direction = &d
		}
	}
	if g.branches != nil {
		rec.Branches = &lineGraphBranchesRecord{
			BranchAStops: graphStopRecords(g.branches.branchA),
			BranchBStops: graphStopRecords(g.branches.branchB),
		}
	}
	return json.Marshal(rec)
}
