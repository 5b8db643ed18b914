package dataprocessing

import (
	"time"
)

// timestampLayout matches the source file's day/month/year date and 24-hour
// time, e.g. "1/2/2007 00:42:00".
const timestampLayout = "2/1/2006 15:04:05"

// deriveTimestamp parses the space-joined Date and Time strings into a
// timezone-naive local time. Malformed input yields the zero time; callers
// check Reading.HasTimestamp.
func deriveTimestamp(date, clock string) time.Time {
	if date == "" || clock == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(timestampLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
