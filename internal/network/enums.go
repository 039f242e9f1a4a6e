package network

import "slices"

// LineColor is the color a line is drawn in.
type LineColor string

const (
	ColorRed    LineColor = "red"
	ColorYellow LineColor = "yellow"
	ColorGreen  LineColor = "green"
	ColorCyan   LineColor = "cyan"
	ColorBlue   LineColor = "blue"
	ColorPurple LineColor = "purple"
	ColorPink   LineColor = "pink"
	ColorGrey   LineColor = "grey"
)

var LineColors = []LineColor{
	ColorRed, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorPurple, ColorPink, ColorGrey,
}

func ParseLineColor(s string) (LineColor, error) {
	return parseEnum(s, LineColors, "line color")
}

// LineService is the kind of service a line runs.
type LineService string

const (
	ServiceSuburban LineService = "suburban"
	ServiceRegional LineService = "regional"
)

var LineServices = []LineService{ServiceSuburban, ServiceRegional}

func ParseLineService(s string) (LineService, error) {
	return parseEnum(s, LineServices, "line service")
}

// RouteType describes the shape of a line's route.
type RouteType string

const (
	RouteLinear   RouteType = "linear"
	RouteCityLoop RouteType = "city-loop"
	RouteBranch   RouteType = "branch"
)

var RouteTypes = []RouteType{RouteLinear, RouteCityLoop, RouteBranch}

func ParseRouteType(s string) (RouteType, error) {
	return parseEnum(s, RouteTypes, "line route type")
}

// CityLoopPortal is the station where a city-loop line enters the loop.
type CityLoopPortal string

const (
	PortalRichmond       CityLoopPortal = "richmond"
	PortalNorthMelbourne CityLoopPortal = "north-melbourne"
	PortalJolimont       CityLoopPortal = "jolimont"
)

var CityLoopPortals = []CityLoopPortal{PortalRichmond, PortalNorthMelbourne, PortalJolimont}

func ParseCityLoopPortal(s string) (CityLoopPortal, error) {
	return parseEnum(s, CityLoopPortals, "city loop portal")
}

func parseEnum[T ~string](s string, options []T, name string) (T, error) {
	v := T(s)
	if !slices.Contains(options, v) {
		return "", &BadEnumError{Enum: name, Value: s}
	}
	return v, nil
}
