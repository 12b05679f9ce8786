package timestamp

import (
	"fmt"
	"time"
)

// Layout is the access-log time format, e.g. 10/Oct/2023:13:55:36 +0000.
const Layout = "02/Jan/2006:15:04:05 -0700"

// Parse reads an access-log timestamp keeping its own UTC offset.
func Parse(text string) (time.Time, error) {
	tm, err := time.Parse(Layout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", text, err)
	}

	return tm, nil
}

// HourOf returns the hour of day (0-23) as written in the log line, in the
// line's own offset. ok is false when the text is not a valid timestamp.
func HourOf(text string) (hour int, ok bool) {
	tm, err := Parse(text)
	if err != nil {
		return 0, false
	}

	return tm.Hour(), true
}
