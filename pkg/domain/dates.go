package domain

import (
	"strconv"
	"strings"
	"time"
)

var monthsByAbbrev = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

// ParseDate parses a record date of the form "01 JUN 2001" (day, English
// month abbreviation, year). It reports ok=false for anything else, including
// partial year-only dates; callers treat an unknown date as never newer than
// a known one.
func ParseDate(text string) (time.Time, bool) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, ok := monthsByAbbrev[strings.ToUpper(fields[1])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil || year <= 0 {
		return time.Time{}, false
	}
	parsed := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if parsed.Day() != day {
		// Day overflowed the month, e.g. "31 FEB 2001".
		return time.Time{}, false
	}
	return parsed, true
}
