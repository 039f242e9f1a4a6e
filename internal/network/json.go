package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Records mirror the JSON layout of a network file. Decoding fills them and
// checks their shape; the New* constructors then apply the business rules.

type platformRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type stopRecord struct {
	ID        *int             `json:"id" validate:"required"`
	Name      string           `json:"name"`
	Platforms []platformRecord `json:"platforms" validate:"required,dive"`
	Tags      []string         `json:"tags" validate:"required"`
	URLName   string           `json:"urlName"`
	Zones     []string         `json:"zones" validate:"required"`
}

type directionRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stops []int  `json:"stops" validate:"required"`
}

type lineRecord struct {
	ID                *int              `json:"id" validate:"required"`
	Name              string            `json:"name"`
	Color             string            `json:"color"`
	Service           string            `json:"service"`
	RouteType         string            `json:"routeType"`
	SpecialEventsOnly *bool             `json:"specialEventsOnly" validate:"required"`
	Tags              []string          `json:"tags" validate:"required"`
	RouteLoopPortal   *string           `json:"routeLoopPortal,omitempty"`
	Directions        []directionRecord `json:"directions" validate:"required,dive"`
}

type networkRecord struct {
	Hash  string       `json:"hash"`
	Stops []stopRecord `json:"stops" validate:"required,dive"`
	Lines []lineRecord `json:"lines" validate:"required,dive"`
}

// ParseTransitNetwork builds a network from the JSON form written by
// MarshalJSON. Shape problems are reported as an *Error of kind MalformedJSON;
// anything else comes from the constructors.
func ParseTransitNetwork(data []byte) (*TransitNetwork, error) {
	return DecodeTransitNetwork(bytes.NewReader(data))
}

func DecodeTransitNetwork(r io.Reader) (*TransitNetwork, error) {
	var rec networkRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, &Error{Kind: MalformedJSON, Err: err}
	}
	if err := validate.Struct(rec); err != nil {
		return nil, &Error{Kind: MalformedJSON, Err: err}
	}
	return rec.build()
}

func (rec networkRecord) build() (*TransitNetwork, error) {
	stops := make([]*Stop, 0, len(rec.Stops))
	for _, sr := range rec.Stops {
		s, err := sr.build()
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}

	lines := make([]*Line, 0, len(rec.Lines))
	for _, lr := range rec.Lines {
		l, err := lr.build()
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return NewTransitNetwork(rec.Hash, stops, lines)
}

func (rec stopRecord) build() (*Stop, error) {
	id, err := ToStopID(*rec.ID)
	if err != nil {
		return nil, err
	}

	platforms := make([]Platform, 0, len(rec.Platforms))
	for _, pr := range rec.Platforms {
		pid, err := ToPlatformID(pr.ID)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, NewPlatform(pid, pr.Name))
	}

	return NewStop(StopParams{
		ID:        id,
		Name:      rec.Name,
		Platforms: platforms,
		Tags:      rec.Tags,
		URLName:   rec.URLName,
		Zones:     rec.Zones,
	})
}

func (rec directionRecord) build() (*Direction, error) {
	id, err := ToDirectionID(rec.ID)
	if err != nil {
		return nil, err
	}

	stops := make([]StopID, 0, len(rec.Stops))
	for _, v := range rec.Stops {
		s, err := ToStopID(v)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}

	return NewDirection(id, rec.Name, stops)
}

func (rec lineRecord) build() (*Line, error) {
	id, err := ToLineID(*rec.ID)
	if err != nil {
		return nil, err
	}
	color, err := ParseLineColor(rec.Color)
	if err != nil {
		return nil, err
	}
	service, err := ParseLineService(rec.Service)
	if err != nil {
		return nil, err
	}
	routeType, err := ParseRouteType(rec.RouteType)
	if err != nil {
		return nil, err
	}

	var portal *CityLoopPortal
	if rec.RouteLoopPortal != nil {
		p, err := ParseCityLoopPortal(*rec.RouteLoopPortal)
		if err != nil {
			return nil, err
		}
		portal = &p
	}
	route, err := NewRoute(routeType, portal)
	if err != nil {
		return nil, fmt.Errorf("line %s: %w", id, err)
	}

	directions := make([]*Direction, 0, len(rec.Directions))
	for _, dr := range rec.Directions {
		d, err := dr.build()
		if err != nil {
			return nil, err
		}
		directions = append(directions, d)
	}

	return NewLine(LineParams{
		ID:                id,
		Name:              rec.Name,
		Color:             color,
		Service:           service,
		Route:             route,
		SpecialEventsOnly: *rec.SpecialEventsOnly,
		Tags:              rec.Tags,
		Directions:        directions,
	})
}

// MarshalJSON writes the network in the layout ParseTransitNetwork reads.
func (n *TransitNetwork) MarshalJSON() ([]byte, error) {
	rec := networkRecord{
		Hash:  n.hash,
		Stops: make([]stopRecord, 0, len(n.stops)),
		Lines: make([]lineRecord, 0, len(n.lines)),
	}

	for _, s := range n.stops {
		id := s.id.Int()
		sr := stopRecord{
			ID:        &id,
			Name:      s.name,
			Platforms: make([]platformRecord, 0, len(s.platforms)),
			Tags:      nonNil(s.tags),
			URLName:   s.urlName,
			Zones:     nonNil(s.zones),
		}
		for _, p := range s.platforms {
			sr.Platforms = append(sr.Platforms, platformRecord{ID: p.id.String(), Name: p.name})
		}
		rec.Stops = append(rec.Stops, sr)
	}

	for _, l := range n.lines {
		id := l.id.Int()
		special := l.specialEventsOnly
		lr := lineRecord{
			ID:                &id,
			Name:              l.name,
			Color:             string(l.color),
			Service:           string(l.service),
			RouteType:         string(l.route.Type()),
			SpecialEventsOnly: &special,
			Tags:              nonNil(l.tags),
			Directions:        make([]directionRecord, 0, len(l.directions)),
		}
		if p := portalOf(l.route); p != nil {
			portal := string(*p)
			lr.RouteLoopPortal = &portal
		}
		for _, d := range l.directions {
			dr := directionRecord{ID: d.id.String(), Name: d.name, Stops: make([]int, 0, len(d.stops))}
			for _, s := range d.stops {
				dr.Stops = append(dr.Stops, s.Int())
			}
			lr.Directions = append(lr.Directions, dr)
		}
		rec.Lines = append(rec.Lines, lr)
	}

	return json.Marshal(rec)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
