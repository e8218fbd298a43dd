package domain

import "time"

// DayKeyFormat is the calendar-day encoding used by the remote API and by
// day buckets.
const DayKeyFormat = "2006-01-02"

// StartOfWeek normalizes d to the most recent Sunday at or before it, at
// calendar-day granularity. A Sunday normalizes to itself.
func StartOfWeek(d time.Time) time.Time {
	day := truncateToDay(d)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekDays returns the 7 consecutive dates start..start+6.
func WeekDays(start time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// ShiftWeek moves the reference date by whole weeks. The window start is
// recomputed from the shifted date, so forward/backward navigation is
// reversible: ShiftWeek(ShiftWeek(d, 1), -1) == d.
func ShiftWeek(d time.Time, weeks int) time.Time {
	return d.AddDate(0, 0, 7*weeks)
}

// WeekdayName returns the stable English weekday name ("Sunday".."Saturday")
// that availability lists are matched against.
func WeekdayName(d time.Time) string {
	return d.Weekday().String()
}

// DayKey formats d as its calendar-day key.
func DayKey(d time.Time) string {
	return d.Format(DayKeyFormat)
}

func truncateToDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
