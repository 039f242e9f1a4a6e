package network

import (
	"strconv"

	"transitnet.org/ttbl/internal/utils"
)

const (
	MinStopID = 1
	MaxStopID = 9999

	MinLineID = 1
	// MaxLineID is the largest value that fits in one base-36 digit.
	MaxLineID = 35
)

// StopID identifies a stop. The zero value is not a valid id.
type StopID struct {
	value int
}

func IsStopID(value int) bool {
	return value >= MinStopID && value <= MaxStopID
}

func ToStopID(value int) (StopID, error) {
	if !IsStopID(value) {
		return StopID{}, &BadIDError{Type: StopIDType, Value: strconv.Itoa(value)}
	}
	return StopID{value: value}, nil
}

// ParseStopID parses a decimal stop id, allowing zero padding such as "0042".
func ParseStopID(s string) (StopID, error) {
	v, err := utils.ParseIntStrict(s)
	if err != nil {
		return StopID{}, &BadIDError{Type: StopIDType, Value: s}
	}
	return ToStopID(v)
}

func (id StopID) Int() int { return id.value }
func (id StopID) IsZero() bool { return id.value == 0 }
func (id StopID) String() string { return strconv.Itoa(id.value) }

// LineID identifies a line.
type LineID struct {
	value int
}

func IsLineID(value int) bool {
	return value >= MinLineID && value <= MaxLineID
}

func ToLineID(value int) (LineID, error) {
	if !IsLineID(value) {
		return LineID{}, &BadIDError{Type: LineIDType, Value: strconv.Itoa(value)}
	}
	return LineID{value: value}, nil
}

func ParseLineID(s string) (LineID, error) {
	v, err := utils.ParseIntStrict(s)
	if err != nil {
		return LineID{}, &BadIDError{Type: LineIDType, Value: s}
	}
	return ToLineID(v)
}

// LineIDFromBase36 decodes the single-digit form produced by Base36.
func LineIDFromBase36(s string) (LineID, error) {
	v, err := utils.DecodeBase36(s, 1)
	if err != nil {
		return LineID{}, &BadIDError{Type: LineIDType, Value: s}
	}
	return ToLineID(v)
}

func (id LineID) Int() int { return id.value }
func (id LineID) IsZero() bool { return id.value == 0 }
func (id LineID) String() string { return strconv.Itoa(id.value) }

// Base36 encodes the id as one base-36 digit, e.g. 35 becomes "z".
func (id LineID) Base36() string { return utils.EncodeBase36(id.value, 1) }

// DirectionID is a kebab-case name for a direction, unique within its line.
type DirectionID struct {
	value string
}

func IsDirectionID(s string) bool {
	return utils.IsKebabCase(s)
}

func ToDirectionID(s string) (DirectionID, error) {
	if !IsDirectionID(s) {
		return DirectionID{}, &BadIDError{Type: DirectionIDType, Value: s}
	}
	return DirectionID{value: s}, nil
}

func (id DirectionID) IsZero() bool { return id.value == "" }
func (id DirectionID) String() string { return id.value }

// PlatformID is a kebab-case name for a platform, unique within its stop.
type PlatformID struct {
	value string
}

func IsPlatformID(s string) bool {
	return utils.IsKebabCase(s)
}

func ToPlatformID(s string) (PlatformID, error) {
	if !IsPlatformID(s) {
		return PlatformID{}, &BadIDError{Type: PlatformIDType, Value: s}
	}
	return PlatformID{value: s}, nil
}

func (id PlatformID) String() string { return id.value }
