package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"sunday is identity", date(2024, time.March, 10), date(2024, time.March, 10)},
		{"monday goes back one day", date(2024, time.March, 11), date(2024, time.March, 10)},
		{"saturday goes back six days", date(2024, time.March, 16), date(2024, time.March, 10)},
		{"crosses month boundary", date(2024, time.May, 1), date(2024, time.April, 28)},
		{"crosses year boundary", date(2025, time.January, 3), date(2024, time.December, 29)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfWeek(tc.in)
			if !got.Equal(tc.want) {
				t.Fatalf("StartOfWeek(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStartOfWeekIdempotent(t *testing.T) {
	d := date(2024, time.July, 18) // a Thursday
	for i := 0; i < 14; i++ {
		once := StartOfWeek(d)
		twice := StartOfWeek(once)
		if !once.Equal(twice) {
			t.Fatalf("StartOfWeek not idempotent for %v: %v != %v", d, once, twice)
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestWeekDaysContainsReference(t *testing.T) {
	d := date(2024, time.March, 13)
	days := WeekDays(StartOfWeek(d))
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	found := false
	for i, day := range days {
		if i > 0 && !day.Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("days not consecutive at index %d", i)
		}
		if day.Equal(truncateToDay(d)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("week days %v do not contain reference date %v", days, d)
	}
}

func TestShiftWeekReversible(t *testing.T) {
	d := date(2024, time.March, 13)
	back := ShiftWeek(ShiftWeek(d, 1), -1)
	if !back.Equal(d) {
		t.Fatalf("ShiftWeek round trip changed date: %v != %v", back, d)
	}
	next := ShiftWeek(d, 1)
	if !StartOfWeek(next).Equal(StartOfWeek(d).AddDate(0, 0, 7)) {
		t.Fatalf("shifted window start is not one week forward")
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(date(2024, time.March, 10)); got != "Sunday" {
		t.Fatalf("expected Sunday, got %s", got)
	}
	if got := WeekdayName(date(2024, time.March, 13)); got != "Wednesday" {
		t.Fatalf("expected Wednesday, got %s", got)
	}
}

func TestDayKey(t *testing.T) {
	if got := DayKey(date(2024, time.March, 5)); got != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %s", got)
	}
}
