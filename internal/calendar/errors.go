package calendar

import "fmt"

// TimeErrorKind identifies which calendar rule was broken.
type TimeErrorKind int

const (
	TimeOutOfRange TimeErrorKind = iota + 1
	BadTimeString
	InvalidDayOfWeek
	InvalidDate
	InvalidISODate
	InvalidWeekdayRange
	DayIndexOutOfRange
	DayNotInRange
)

// TimeError is returned when a LocalTime, LocalDate, DayOfWeek or
// WeekdayRange cannot be constructed or queried.
type TimeError struct {
	Kind  TimeErrorKind
	Value string
}

func (e *TimeError) Error() string {
	switch e.Kind {
	case TimeOutOfRange:
		return fmt.Sprintf("minute of day %q is out of range for a local time", e.Value)
	case BadTimeString:
		return fmt.Sprintf("string %q cannot be interpreted as a local time", e.Value)
	case InvalidDayOfWeek:
		return fmt.Sprintf("%q is not a valid days since Monday number for a day of week", e.Value)
	case InvalidDate:
		return fmt.Sprintf("date %s is invalid", e.Value)
	case InvalidISODate:
		return fmt.Sprintf("%q is an invalid date string", e.Value)
	case InvalidWeekdayRange:
		return fmt.Sprintf("%q is not a valid weekday range", e.Value)
	case DayIndexOutOfRange:
		return fmt.Sprintf("day index %s is out of range for the weekday range", e.Value)
	case DayNotInRange:
		return fmt.Sprintf("%s is not in the weekday range", e.Value)
	default:
		return "calendar error: " + e.Value
	}
}

func timeError(kind TimeErrorKind, format string, args ...any) *TimeError {
	return &TimeError{Kind: kind, Value: fmt.Sprintf(format, args...)}
}
