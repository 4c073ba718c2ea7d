// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func BeginningOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// YearRange returns the first and last instant of the given calendar year,
// used to scope the sent-log lookup.
func YearRange(year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, loc)
	return start, end
}

// MonthDay formats a date as zero-padded "MM-DD". Birthdays recur yearly,
// so matching ignores the stored birth year.
func MonthDay(t time.Time) string {
	return t.Format("01-02")
}
