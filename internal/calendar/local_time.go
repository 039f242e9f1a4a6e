package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	minutesPerDay = 24 * 60

	// MaxMinuteOfDay is the last minute a LocalTime can hold: 23:59 on the
	// following day.
	MaxMinuteOfDay = 2*minutesPerDay - 1

	// NextDayMarker prefixes times that fall on the following day, e.g. ">01:15".
	NextDayMarker = ">"
)

var timePattern = regexp.MustCompile(`^[0-9]{1,2}:[0-9]{2}$`)

// LocalTime is a minute of the service day. Timetables run past midnight, so
// values from 24:00 up to 47:59 mean the following calendar day, but never
// further.
type LocalTime struct {
	minuteOfDay int
}

// NewLocalTime fails for values outside [0, 2880).
func NewLocalTime(minuteOfDay int) (LocalTime, error) {
	if minuteOfDay < 0 || minuteOfDay > MaxMinuteOfDay {
		return LocalTime{}, timeError(TimeOutOfRange, "%d", minuteOfDay)
	}
	return LocalTime{minuteOfDay: minuteOfDay}, nil
}

// LocalTimeFromTime builds a time from a 24-hour clock reading. nextDay moves
// it onto the following day.
func LocalTimeFromTime(hour, minute int, nextDay bool) (LocalTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return LocalTime{}, timeError(BadTimeString, "%d:%02d", hour, minute)
	}
	m := hour*60 + minute
	if nextDay {
		m += minutesPerDay
	}
	return NewLocalTime(m)
}

// StartOfTomorrow is midnight at the start of the following day.
func StartOfTomorrow() LocalTime {
	return LocalTime{minuteOfDay: minutesPerDay}
}

// ParseLocalTime parses a 24-hour "H:MM" or "HH:MM" string. Use nextDay rather
// than a ">" prefix to place the time on the following day.
func ParseLocalTime(value string, nextDay bool) (LocalTime, error) {
	if !timePattern.MatchString(value) {
		return LocalTime{}, timeError(BadTimeString, "%s", value)
	}
	hourText, minuteText, _ := strings.Cut(value, ":")
	hour, _ := strconv.Atoi(hourText)
	minute, _ := strconv.Atoi(minuteText)
	if hour > 23 || minute > 59 {
		return LocalTime{}, timeError(BadTimeString, "%s", value)
	}
	return LocalTimeFromTime(hour, minute, nextDay)
}

// ParseLocalTimeWithMarker parses strings like ">2:04" or "15:28", where a
// leading ">" places the time on the following day.
func ParseLocalTimeWithMarker(value string) (LocalTime, error) {
	if rest, ok := strings.CutPrefix(value, NextDayMarker); ok {
		return ParseLocalTime(rest, true)
	}
	return ParseLocalTime(value, false)
}

func (t LocalTime) MinuteOfDay() int { return t.minuteOfDay }

// Hour returns the clock hour 0-23, ignoring which day the time is on.
func (t LocalTime) Hour() int { return (t.minuteOfDay / 60) % 24 }

func (t LocalTime) Minute() int { return t.minuteOfDay % 60 }

// IsNextDay reports whether the time falls on the following day.
func (t LocalTime) IsNextDay() bool { return t.minuteOfDay >= minutesPerDay }

// Format renders "HH:MM", prefixed with ">" for next-day times when
// withMarker is set.
func (t LocalTime) Format(withMarker bool) string {
	prefix := ""
	if withMarker && t.IsNextDay() {
		prefix = NextDayMarker
	}
	return fmt.Sprintf("%s%02d:%02d", prefix, t.Hour(), t.Minute())
}

func (t LocalTime) String() string {
	return t.Format(true)
}

func (t LocalTime) Before(other LocalTime) bool { return t.minuteOfDay < other.minuteOfDay }
func (t LocalTime) BeforeOrEqual(other LocalTime) bool { return t.minuteOfDay <= other.minuteOfDay }
func (t LocalTime) After(other LocalTime) bool { return t.minuteOfDay > other.minuteOfDay }
func (t LocalTime) AfterOrEqual(other LocalTime) bool { return t.minuteOfDay >= other.minuteOfDay }

// Yesterday returns the same clock time on the previous day. It fails unless
// t is a next-day time.
func (t LocalTime) Yesterday() (LocalTime, error) {
	return NewLocalTime(t.minuteOfDay - minutesPerDay)
}

// Tomorrow returns the same clock time on the following day. It fails if t is
// already a next-day time.
func (t LocalTime) Tomorrow() (LocalTime, error) {
	return NewLocalTime(t.minuteOfDay + minutesPerDay)
}
