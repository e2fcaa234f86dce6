package services

import "time"

// timeLayout is the timestamp format used in API responses.
const timeLayout = time.RFC3339

// parseDate accepts either a full RFC3339 timestamp or a plain date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
