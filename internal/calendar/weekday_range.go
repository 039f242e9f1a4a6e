package calendar

import "strings"

// weekdayLetters are the characters allowed at each position of a weekday
// range code; "_" marks an excluded day.
const weekdayLetters = "MTWTFSS"

// WeekdayRange is the set of days of the week a schedule runs on, written as a
// 7-character code such as "MTWT___".
type WeekdayRange struct {
	days [7]bool
}

func NewWeekdayRange(mon, tue, wed, thu, fri, sat, sun bool) WeekdayRange {
	return WeekdayRange{days: [7]bool{mon, tue, wed, thu, fri, sat, sun}}
}

// ParseWeekdayRange parses codes such as "MTWTFSS", "____F__" or "_____SS".
func ParseWeekdayRange(value string) (WeekdayRange, error) {
	if len(value) != len(weekdayLetters) {
		return WeekdayRange{}, timeError(InvalidWeekdayRange, "%s", value)
	}
	var r WeekdayRange
	for i := 0; i < len(weekdayLetters); i++ {
		switch value[i] {
		case weekdayLetters[i]:
			r.days[i] = true
		case '_':
		default:
			return WeekdayRange{}, timeError(InvalidWeekdayRange, "%s", value)
		}
	}
	return r, nil
}

func (r WeekdayRange) String() string {
	var b strings.Builder
	for i, included := range r.days {
		if included {
			b.WriteByte(weekdayLetters[i])
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// NumOfDays counts the included days.
func (r WeekdayRange) NumOfDays() int {
	count := 0
	for _, included := range r.days {
		if included {
			count++
		}
	}
	return count
}

// Days lists the included days from Monday to Sunday.
func (r WeekdayRange) Days() []DayOfWeek {
	days := make([]DayOfWeek, 0, 7)
	for i, included := range r.days {
		if included {
			days = append(days, DayOfWeek(i))
		}
	}
	return days
}

// DayOfWeekByIndex returns the index-th included day. For "__WT_S_", index 0
// is Wednesday, 1 is Thursday and 2 is Saturday.
func (r WeekdayRange) DayOfWeekByIndex(index int) (DayOfWeek, error) {
	days := r.Days()
	if index < 0 || index >= len(days) {
		return 0, timeError(DayIndexOutOfRange, "%d", index)
	}
	return days[index], nil
}

// Includes reports whether day is part of the range.
func (r WeekdayRange) Includes(day DayOfWeek) bool {
	return day.Valid() && r.days[day]
}

// IndexOf is the inverse of DayOfWeekByIndex.
func (r WeekdayRange) IndexOf(day DayOfWeek) (int, error) {
	for i, d := range r.Days() {
		if d == day {
			return i, nil
		}
	}
	return -1, timeError(DayNotInRange, "%s", day.Name())
}

func (r WeekdayRange) Equal(other WeekdayRange) bool {
	return r.days == other.days
}
