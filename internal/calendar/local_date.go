package calendar

import (
	"fmt"
	"strconv"
	"time"
)

const isoDateLayout = "2006-01-02"

// LocalDate is a calendar date with no time zone attached.
type LocalDate struct {
	year  int
	month int
	day   int
}

// NewLocalDate validates the components against the proleptic Gregorian
// calendar, so 2023-02-29 is rejected.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if year < 1 || year > 9999 || t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return LocalDate{}, timeError(InvalidDate, "year=%d, month=%d, day=%d", year, month, day)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// ParseLocalDate parses an ISO 8601 calendar date such as "2022-07-21".
// Strings carrying a time component are rejected.
func ParseLocalDate(iso string) (LocalDate, error) {
	if len(iso) != len(isoDateLayout) {
		return LocalDate{}, timeError(InvalidISODate, "%s", iso)
	}
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return LocalDate{}, timeError(InvalidISODate, "%s", iso)
	}
	return LocalDateFromTime(t), nil
}

// LocalDateFromTime takes the date of t as seen in t's own location.
func LocalDateFromTime(t time.Time) LocalDate {
	return LocalDate{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

func (d LocalDate) Year() int { return d.year }
func (d LocalDate) Month() int { return d.month }
func (d LocalDate) Day() int { return d.day }

// IsZero reports whether d is the zero value rather than a real date.
func (d LocalDate) IsZero() bool {
	return d == LocalDate{}
}

// ToTime returns midnight at the start of d in loc.
func (d LocalDate) ToTime(loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

// ISO returns e.g. "2022-07-21".
func (d LocalDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d LocalDate) String() string {
	return d.ISO()
}

// Decimal packs the date into YYYYMMDD so dates compare as plain integers.
func (d LocalDate) Decimal() int {
	return d.year*10000 + d.month*100 + d.day
}

// Compare returns -1, 0 or 1 as d is before, equal to or after other.
func (d LocalDate) Compare(other LocalDate) int {
	a, b := d.Decimal(), other.Decimal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (d LocalDate) Before(other LocalDate) bool { return d.Compare(other) < 0 }
func (d LocalDate) BeforeOrEqual(other LocalDate) bool { return d.Compare(other) <= 0 }
func (d LocalDate) After(other LocalDate) bool { return d.Compare(other) > 0 }
func (d LocalDate) AfterOrEqual(other LocalDate) bool { return d.Compare(other) >= 0 }

// DayOfWeek returns which weekday d falls on.
func (d LocalDate) DayOfWeek() DayOfWeek {
	return DayOfWeekFromTime(d.ToTime(time.UTC))
}

func (d LocalDate) Yesterday() LocalDate {
	return LocalDateFromTime(d.ToTime(time.UTC).AddDate(0, 0, -1))
}

func (d LocalDate) Tomorrow() LocalDate {
	return LocalDateFromTime(d.ToTime(time.UTC).AddDate(0, 0, 1))
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
