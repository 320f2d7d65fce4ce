// Package welshdate parses the Welsh-language date strings used by the Clic catalogue.
package welshdate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for date parsing failures.
var (
	// ErrMalformed is returned when the string is not "day month-name year" or
	// the month name is not a Welsh month.
	ErrMalformed = errors.New("malformed Welsh date")
	// ErrInvalid is returned when the tokens parse but do not form a real
	// calendar date (e.g. "31 Chwefror 2021").
	ErrInvalid = errors.New("invalid calendar date")
)

// months maps Welsh month names to their month numbers.
var months = map[string]time.Month{
	"Ionawr":     time.January,
	"Chwefror":   time.February,
	"Mawrth":     time.March,
	"Ebrill":     time.April,
	"Mai":        time.May,
	"Mehefin":    time.June,
	"Gorffennaf": time.July,
	"Awst":       time.August,
	"Medi":       time.September,
	"Hydref":     time.October,
	"Tachwedd":   time.November,
	"Rhagfyr":    time.December,
}

// Month returns the month number for a Welsh month name.
func Month(name string) (time.Month, bool) {
	m, ok := months[name]
	return m, ok
}

// Parse converts a Welsh date string like "15 Ionawr 2021" to midnight UTC of
// that day. The string must be exactly three space-separated tokens: day,
// Welsh month name, year.
func Parse(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day %q", ErrMalformed, fields[0])
	}
	month, ok := months[fields[1]]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown month %q", ErrMalformed, fields[1])
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: year %q", ErrMalformed, fields[2])
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31 Chwefror becomes 2-3 Mawrth), so round-trip
	// the components to reject impossible dates.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return t, nil
}

// Compact renders a timestamp as the 8-character YYYYMMDD form, in UTC.
func Compact(t time.Time) string {
	return t.UTC().Format("20060102")
}
