package timetable

import (
	"strconv"

	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/utils"
)

const (
	MinTimetableID = 1
	// MaxTimetableID is the largest value that fits in two base-36 digits.
	MaxTimetableID = 36*36 - 1

	MinEntryIndex = 0
	// MaxEntryIndex is the largest value that fits in three base-36 digits.
	MaxEntryIndex = 36*36*36 - 1
)

const (
	TimetableIDType network.IDType = "timetable"
	EntryIndexType  network.IDType = "service index"
)

// TimetableID identifies a timetable.
type TimetableID struct {
	value int
}

func IsTimetableID(value int) bool {
	return value >= MinTimetableID && value <= MaxTimetableID
}

func ToTimetableID(value int) (TimetableID, error) {
	if !IsTimetableID(value) {
		return TimetableID{}, &network.BadIDError{Type: TimetableIDType, Value: strconv.Itoa(value)}
	}
	return TimetableID{value: value}, nil
}

func ParseTimetableID(s string) (TimetableID, error) {
	v, err := utils.ParseIntStrict(s)
	if err != nil {
		return TimetableID{}, &network.BadIDError{Type: TimetableIDType, Value: s}
	}
	return ToTimetableID(v)
}

// TimetableIDFromBase36 decodes the two-digit form produced by Base36.
func TimetableIDFromBase36(s string) (TimetableID, error) {
	v, err := utils.DecodeBase36(s, 2)
	if err != nil {
		return TimetableID{}, &network.BadIDError{Type: TimetableIDType, Value: s}
	}
	return ToTimetableID(v)
}

func (id TimetableID) Int() int { return id.value }
func (id TimetableID) IsZero() bool { return id.value == 0 }
func (id TimetableID) String() string { return strconv.Itoa(id.value) }

// Base36 encodes the id as two base-36 digits, e.g. 108 becomes "30".
func (id TimetableID) Base36() string { return utils.EncodeBase36(id.value, 2) }

// EntryIndex addresses one entry on one day of the week within a timetable.
type EntryIndex struct {
	value int
}

func IsEntryIndex(value int) bool {
	return value >= MinEntryIndex && value <= MaxEntryIndex
}

func ToEntryIndex(value int) (EntryIndex, error) {
	if !IsEntryIndex(value) {
		return EntryIndex{}, &network.BadIDError{Type: EntryIndexType, Value: strconv.Itoa(value)}
	}
	return EntryIndex{value: value}, nil
}

func (i EntryIndex) Int() int { return i.value }
func (i EntryIndex) String() string { return strconv.Itoa(i.value) }

// Base36 encodes the index as three base-36 digits.
func (i EntryIndex) Base36() string { return utils.EncodeBase36(i.value, 3) }
