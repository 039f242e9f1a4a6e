package calendar

import "time"

// DayOfWeek is a day of the week counted from Monday (0) to Sunday (6).
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var (
	dayNames     = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	dayCodeNames = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
)

// NewDayOfWeek returns the day that is daysSinceMonday days after Monday.
func NewDayOfWeek(daysSinceMonday int) (DayOfWeek, error) {
	if daysSinceMonday < 0 || daysSinceMonday > 6 {
		return 0, timeError(InvalidDayOfWeek, "%d", daysSinceMonday)
	}
	return DayOfWeek(daysSinceMonday), nil
}

// DayOfWeekFromTime returns the weekday of t in t's own location.
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	return DayOfWeek((int(t.Weekday()) + 6) % 7)
}

// DaysSinceMonday returns 0 for Monday through 6 for Sunday.
func (d DayOfWeek) DaysSinceMonday() int {
	return int(d)
}

// Valid reports whether d is one of the seven days.
func (d DayOfWeek) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Name returns e.g. "Thursday".
func (d DayOfWeek) Name() string {
	if !d.Valid() {
		return "DayOfWeek(" + itoa(int(d)) + ")"
	}
	return dayNames[d]
}

// CodeName returns e.g. "thu".
func (d DayOfWeek) CodeName() string {
	if !d.Valid() {
		return ""
	}
	return dayCodeNames[d]
}

func (d DayOfWeek) String() string {
	return d.Name()
}

func (d DayOfWeek) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

func (d DayOfWeek) IsWeekday() bool {
	return !d.IsWeekend()
}

// Yesterday wraps from Monday to Sunday.
func (d DayOfWeek) Yesterday() DayOfWeek {
	return DayOfWeek((int(d) + 6) % 7)
}

// Tomorrow wraps from Sunday to Monday.
func (d DayOfWeek) Tomorrow() DayOfWeek {
	return DayOfWeek((int(d) + 1) % 7)
}
