package gtfsimport

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jamespfennell/gtfs"

	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/utils"
)

type namedStop struct {
	kebab string
	id    network.StopID
}

// stopMatcher finds the network stop for a GTFS stop: first by explicit
// mapping of the stop or its parent station, then by name. A GTFS name
// matches a network name when it equals it once kebabified, or starts with
// it followed by a dash ("Seymour Railway Station" matches "Seymour").
type stopMatcher struct {
	overrides map[string]network.StopID
	// longest names first, so "North Melbourne" wins over "North".
	names []namedStop
}

func newStopMatcher(n *network.TransitNetwork, overrides map[string]network.StopID) *stopMatcher {
	m := &stopMatcher{overrides: overrides}
	for _, s := range n.Stops() {
		m.names = append(m.names, namedStop{kebab: utils.Kebabify(s.Name()), id: s.ID()})
	}
	slices.SortStableFunc(m.names, func(a, b namedStop) int {
		return cmp.Compare(len(b.kebab), len(a.kebab))
	})
	return m
}

func (m *stopMatcher) match(stop *gtfs.Stop) (network.StopID, bool) {
	if id, ok := m.overrides[stop.Id]; ok {
		return id, true
	}
	root := stop.Root()
	if id, ok := m.overrides[root.Id]; ok {
		return id, true
	}

	name := utils.Kebabify(root.Name)
	for _, candidate := range m.names {
		if name == candidate.kebab || strings.HasPrefix(name, candidate.kebab+"-") {
			return candidate.id, true
		}
	}
	return network.StopID{}, false
}
