package entity

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// DateOnly truncates t to its calendar day at UTC midnight, the form every
// date column is stored and compared in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a DateOnly value
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// DaysInclusive counts calendar days in [start, end]
func DaysInclusive(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours()/24) + 1
}
