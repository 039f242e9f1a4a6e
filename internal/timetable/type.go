package timetable

import (
	"slices"

	"transitnet.org/ttbl/internal/network"
)

// Type is the kind of timetable, which decides when it applies.
type Type string

const (
	TypeMain          Type = "main"
	TypeTemporary     Type = "temporary"
	TypePublicHoliday Type = "public-holiday"
)

var Types = []Type{TypeMain, TypeTemporary, TypePublicHoliday}

func ParseType(s string) (Type, error) {
	if !slices.Contains(Types, Type(s)) {
		return "", &network.BadEnumError{Enum: "timetable type", Value: s}
	}
	return Type(s), nil
}

// TypeNames lists the accepted spellings of Type.
func TypeNames() []string {
	names := make([]string, 0, len(Types))
	for _, t := range Types {
		names = append(names, string(t))
	}
	return names
}
