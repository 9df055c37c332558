// Package localtime converts between an owner's wall-clock time and the UTC
// instants that are persisted.
package localtime

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

var ErrBadClock = errors.New("time must be HH:MM, 00:00 to 23:59")

var clockRx = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock accepts exactly HH:MM in 24-hour form.
func ParseClock(s string) (hour, minute int, err error) {
	m := clockRx.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, ErrBadClock
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

// LocalToUTC places hour:minute on the calendar day of date as seen in loc and
// returns that instant in UTC.
func LocalToUTC(date time.Time, hour, minute int, loc *time.Location) time.Time {
	y, mo, d := date.Date()
	return time.Date(y, mo, d, hour, minute, 0, 0, loc).UTC()
}

// UTCToLocal is the inverse of LocalToUTC. The returned date is midnight in loc.
func UTCToLocal(instant time.Time, loc *time.Location) (date time.Time, hour, minute int) {
	l := instant.In(loc)
	y, mo, d := l.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, loc), l.Hour(), l.Minute()
}

// ReplaceClock keeps the local calendar day of instant and swaps in a new
// time of day.
func ReplaceClock(instant time.Time, hour, minute int, loc *time.Location) time.Time {
	date, _, _ := UTCToLocal(instant, loc)
	return LocalToUTC(date, hour, minute, loc)
}

// FormatClock renders a time of day as HH:MM.
func FormatClock(hour, minute int) string {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04")
}
