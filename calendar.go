// Package business provides business-day calendars: date classification,
// rolling to the nearest business day, business-day arithmetic, and counting.
//
// A Calendar is built once from configuration (inline or resolved from a
// named source) and is immutable afterwards, so it is safe to share between
// goroutines for queries.
package business

import (
	"fmt"
	"sort"
	"time"

	"github.com/paypronl/business/pkg/dateutil"
)

// Config is the raw calendar configuration. Both keys are optional:
// an absent or empty business_days list falls back to Monday-Friday,
// an absent holidays list means no holidays.
type Config struct {
	BusinessDays []string `mapstructure:"business_days" yaml:"business_days"`
	Holidays     []string `mapstructure:"holidays" yaml:"holidays"`
}

// Calendar answers business-day queries for one set of conventions.
type Calendar struct {
	businessDays map[time.Weekday]struct{}
	holidays     map[string]struct{} // keyed by YYYY-MM-DD
}

// New builds a Calendar from an in-memory configuration. Any unrecognized
// weekday name or unparseable holiday date fails construction.
func New(cfg Config) (*Calendar, error) {
	c := &Calendar{}
	if err := c.SetBusinessDays(cfg.BusinessDays); err != nil {
		return nil, err
	}
	if err := c.SetHolidays(cfg.Holidays); err != nil {
		return nil, err
	}
	return c, nil
}

// SetBusinessDays replaces the business-day set. Days are weekday names,
// full or abbreviated, in any case. A nil or empty slice selects the
// default Monday-Friday week. Intended for construction only: the calendar
// must not be mutated concurrently with queries.
func (c *Calendar) SetBusinessDays(days []string) error {
	if len(days) == 0 {
		c.businessDays = map[time.Weekday]struct{}{
			time.Monday:    {},
			time.Tuesday:   {},
			time.Wednesday: {},
			time.Thursday:  {},
			time.Friday:    {},
		}
		return nil
	}

	set := make(map[time.Weekday]struct{}, len(days))
	for _, day := range days {
		weekday, err := dateutil.ParseWeekday(day)
		if err != nil {
			return fmt.Errorf("invalid business day: %w", err)
		}
		set[weekday] = struct{}{}
	}
	c.businessDays = set
	return nil
}

// SetHolidays replaces the holiday set. Entries are date strings in any
// format dateutil.ParseDate accepts; the time component, if any, is
// discarded. A nil slice means no holidays. Intended for construction only.
func (c *Calendar) SetHolidays(dates []string) error {
	set := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		parsed, err := dateutil.ParseDate(date)
		if err != nil {
			return fmt.Errorf("invalid holiday: %w", err)
		}
		set[dateutil.DateKey(parsed)] = struct{}{}
	}
	c.holidays = set
	return nil
}

// BusinessDays returns the configured business days as canonical lowercase
// 3-letter codes, in Sunday-first weekday order.
func (c *Calendar) BusinessDays() []string {
	days := make([]string, 0, len(c.businessDays))
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if _, ok := c.businessDays[weekday]; ok {
			days = append(days, dateutil.WeekdayCode(weekday))
		}
	}
	return days
}

// Holidays returns the configured holidays as midnight UTC dates, sorted
// ascending.
func (c *Calendar) Holidays() []time.Time {
	dates := make([]time.Time, 0, len(c.holidays))
	for key := range c.holidays {
		parsed, _ := time.Parse("2006-01-02", key)
		dates = append(dates, parsed)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
