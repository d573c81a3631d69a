// Package billing derives rental totals from dates and the daily rate.
// Everything here is a pure function of its inputs so the stored total is
// always recomputable.
package billing

import "time"

// DateFormat is the wire format for all rental and payment dates.
const DateFormat = "2006-01-02"

// ParseDate parses a yyyy-mm-dd date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}

// truncate drops any time-of-day component so arithmetic is date-only.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ChargeableDays is the number of whole days between start and end, with a
// one-day minimum. A same-day or partial-day rental still bills one day.
func ChargeableDays(start, end time.Time) int64 {
	days := int64(truncate(end).Sub(truncate(start)).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// Total computes the amount owed in cents for the interval at the given daily
// rate.
func Total(start, end time.Time, dailyRateCents int64) int64 {
	return ChargeableDays(start, end) * dailyRateCents
}

// Overlaps reports whether two half-open intervals [start1, end1) and
// [start2, end2) intersect.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}
