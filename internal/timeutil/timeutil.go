package timeutil

import "time"

// UTCDateTimeFormat is the wire format the Solidtime API exchanges
// timestamps in. All values sent and received are UTC.
const UTCDateTimeFormat = "2006-01-02T15:04:05Z"

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// FormatUTC renders t in the API wire format.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(UTCDateTimeFormat)
}

// ParseUTC parses an API timestamp and converts it to the local zone.
func ParseUTC(s string) (time.Time, error) {
	t, err := time.Parse(UTCDateTimeFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}
