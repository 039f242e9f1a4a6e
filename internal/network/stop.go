package network

import "slices"

// Platform is a platform at a stop.
type Platform struct {
	id   PlatformID
	name string
}

func NewPlatform(id PlatformID, name string) Platform {
	return Platform{id: id, name: name}
}

func (p Platform) ID() PlatformID { return p.id }
func (p Platform) Name() string { return p.name }

// StopParams holds the fields of a Stop before validation.
type StopParams struct {
	ID        StopID
	Name      string
	Platforms []Platform
	Tags      []string
	// URLName is the stop's slug in web addresses.
	URLName string
	Zones   []string
}

// Stop is a stop on the transit network. It always has at least one platform
// and its platform ids are unique.
type Stop struct {
	id        StopID
	name      string
	platforms []Platform
	tags      []string
	urlName   string
	zones     []string
}

func NewStop(p StopParams) (*Stop, error) {
	if len(p.Platforms) < 1 {
		return nil, &Error{Kind: NoPlatforms, StopID: p.ID}
	}

	seen := make(map[PlatformID]struct{}, len(p.Platforms))
	for _, platform := range p.Platforms {
		if _, dup := seen[platform.id]; dup {
			return nil, &Error{Kind: DuplicatePlatforms, StopID: p.ID}
		}
		seen[platform.id] = struct{}{}
	}

	return &Stop{
		id:        p.ID,
		name:      p.Name,
		platforms: slices.Clone(p.Platforms),
		tags:      slices.Clone(p.Tags),
		urlName:   p.URLName,
		zones:     slices.Clone(p.Zones),
	}, nil
}

func (s *Stop) ID() StopID { return s.id }
func (s *Stop) Name() string { return s.name }
func (s *Stop) Platforms() []Platform { return slices.Clone(s.platforms) }
func (s *Stop) Tags() []string { return slices.Clone(s.tags) }
func (s *Stop) URLName() string { return s.urlName }
func (s *Stop) Zones() []string { return slices.Clone(s.zones) }

// Platform returns the platform with the given id.
func (s *Stop) Platform(id PlatformID) (Platform, bool) {
	for _, p := range s.platforms {
		if p.id == id {
			return p, true
		}
	}
	return Platform{}, false
}

func (s *Stop) RequirePlatform(id PlatformID) (Platform, error) {
	p, ok := s.Platform(id)
	if !ok {
		return Platform{}, &LookupError{What: "platform", ID: id.String()}
	}
	return p, nil
}
