package business

import (
	"fmt"
	"time"

	"github.com/paypronl/business/pkg/dateutil"
)

// IsBusinessDay reports whether the date part of d falls on a configured
// business weekday and is not a holiday. Time-of-day is ignored.
func (c *Calendar) IsBusinessDay(d time.Time) bool {
	if _, ok := c.businessDays[d.Weekday()]; !ok {
		return false
	}
	if _, ok := c.holidays[dateutil.DateKey(d)]; ok {
		return false
	}
	return true
}

// RollForward returns d unchanged if it is a business day, otherwise the
// earliest business day after it. Time-of-day is preserved.
func (c *Calendar) RollForward(d time.Time) time.Time {
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// RollBackward returns d unchanged if it is a business day, otherwise the
// latest business day before it. Time-of-day is preserved.
func (c *Calendar) RollBackward(d time.Time) time.Time {
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// NextBusinessDay returns the earliest business day strictly after d,
// even when d itself is a business day.
func (c *Calendar) NextBusinessDay(d time.Time) time.Time {
	return c.RollForward(d.AddDate(0, 0, 1))
}

// AddBusinessDays advances d by delta business days: each of the delta
// steps moves one day forward and then rolls forward through any run of
// non-business days. A negative delta is rejected; use
// SubtractBusinessDays to move backward.
func (c *Calendar) AddBusinessDays(d time.Time, delta int) (time.Time, error) {
	if delta < 0 {
		return time.Time{}, fmt.Errorf("business days delta must not be negative, got %d", delta)
	}
	for i := 0; i < delta; i++ {
		d = c.NextBusinessDay(d)
	}
	return d, nil
}

// SubtractBusinessDays is the mirror of AddBusinessDays, stepping backward
// and rolling backward through runs of non-business days.
func (c *Calendar) SubtractBusinessDays(d time.Time, delta int) (time.Time, error) {
	if delta < 0 {
		return time.Time{}, fmt.Errorf("business days delta must not be negative, got %d", delta)
	}
	for i := 0; i < delta; i++ {
		d = c.RollBackward(d.AddDate(0, 0, -1))
	}
	return d, nil
}

// BusinessDaysBetween counts the business days strictly after d1 up to and
// including d2, comparing calendar dates only. Equal or reversed ranges
// count zero.
func (c *Calendar) BusinessDaysBetween(d1, d2 time.Time) int {
	count := 0
	d := d1
	for dateutil.BeforeDay(d, d2) {
		d = d.AddDate(0, 0, 1)
		if c.IsBusinessDay(d) {
			count++
		}
	}
	return count
}
