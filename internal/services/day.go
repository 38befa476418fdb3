package services

import "time"

const dayFormat = "2006-01-02"

// Day truncates a moment to its calendar date in the given location. Date
// columns store these UTC-midnight values, so two writes on the same local
// day always hit the same per-(user, date) row.
func Day(moment time.Time, location *time.Location) time.Time {
	local := moment.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into the canonical day value.
func ParseDay(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dayFormat, raw, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func FormatDay(day time.Time) string {
	return day.Format(dayFormat)
}
