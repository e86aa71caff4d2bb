package dateutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// weekdays maps accepted weekday spellings (lowercase) to time.Weekday.
// Both full names and 3-letter abbreviations are recognized.
var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

// ParseWeekday resolves a weekday name (full or abbreviated, any case)
// to a time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	weekday, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, fmt.Errorf("unknown weekday %q", name)
	}
	return weekday, nil
}

// WeekdayCode returns the canonical lowercase 3-letter code for a weekday,
// e.g. "mon" for time.Monday.
func WeekdayCode(weekday time.Weekday) string {
	return strings.ToLower(weekday.String()[:3])
}

// ordinalSuffix matches ordinal day numbers such as "1st", "22nd", "3rd", "14th".
var ordinalSuffix = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)\b`)

// dateLayouts are tried in order before falling back to dateparse.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006-01-02T15:04:05",
	"2 Jan, 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"Monday 2 Jan, 2006",
	"Monday, 2 Jan 2006",
}

// ParseDate parses a date string in any reasonable format, including
// human-friendly forms such as "1st Jan, 2013". Ordinal day suffixes are
// normalized away before parsing.
func ParseDate(value string) (time.Time, error) {
	cleaned := ordinalSuffix.ReplaceAllString(strings.TrimSpace(value), "$1")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseAny(cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q: %w", value, err)
	}
	return t, nil
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// DateKey formats the date part of a value as YYYY-MM-DD.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// BeforeDay returns true if date1 falls on an earlier calendar day than
// date2, ignoring time-of-day. Comparison is on the wall-clock date of
// each value.
func BeforeDay(date1, date2 time.Time) bool {
	return DateKey(date1) < DateKey(date2)
}
