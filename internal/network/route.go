package network

import "fmt"

// Route is the route type of a line together with whatever data that route
// type needs. Only CityLoopRoute carries a portal.
type Route interface {
	Type() RouteType
	isRoute()
}

type LinearRoute struct{}

func (LinearRoute) Type() RouteType { return RouteLinear }
func (LinearRoute) isRoute() {}

type BranchRoute struct{}

func (BranchRoute) Type() RouteType { return RouteBranch }
func (BranchRoute) isRoute() {}

type CityLoopRoute struct {
	Portal CityLoopPortal
}

func (CityLoopRoute) Type() RouteType { return RouteCityLoop }
func (CityLoopRoute) isRoute() {}

// NewRoute pairs a route type with an optional portal. A portal must be given
// for city-loop routes and must be absent for every other route type.
func NewRoute(routeType RouteType, portal *CityLoopPortal) (Route, error) {
	isCityLoop := routeType == RouteCityLoop
	if isCityLoop != (portal != nil) {
		detail := "null"
		if portal != nil {
			detail = string(*portal)
		}
		return nil, &Error{
			Kind:   PortalMismatch,
			Detail: fmt.Sprintf("route type %q should not have city loop portal value of %q", routeType, detail),
		}
	}

	switch routeType {
	case RouteLinear:
		return LinearRoute{}, nil
	case RouteBranch:
		return BranchRoute{}, nil
	case RouteCityLoop:
		if _, err := ParseCityLoopPortal(string(*portal)); err != nil {
			return nil, err
		}
		return CityLoopRoute{Portal: *portal}, nil
	default:
		return nil, &BadEnumError{Enum: "line route type", Value: string(routeType)}
	}
}

// portalOf returns the portal of a city-loop route, or nil.
func portalOf(r Route) *CityLoopPortal {
	if loop, ok := r.(CityLoopRoute); ok {
		p := loop.Portal
		return &p
	}
	return nil
}
