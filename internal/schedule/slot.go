// Package schedule parses the slot date/time strings appointments carry and
// answers the past/future questions booking, reconciliation, and the
// dashboards all need.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MalformedError reports a slot date or time that cannot be parsed. It carries
// the offending value so sweeps can report the record without aborting.
type MalformedError struct {
	Field string
	Value string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed slot %s: %q", e.Field, e.Value)
}

// ParseSlotDate parses a "D_M_YYYY" date key (no zero padding) into its
// day, month, and year components.
func ParseSlotDate(slotDate string) (day, month, year int, err error) {
	parts := strings.Split(slotDate, "_")
	if len(parts) != 3 {
		return 0, 0, 0, &MalformedError{Field: "date", Value: slotDate}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, &MalformedError{Field: "date", Value: slotDate}
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// ParseSlotTime parses an "H:MM" 24-hour time string (hour not necessarily
// zero padded) into hour and minute components.
func ParseSlotTime(slotTime string) (hour, minute int, err error) {
	parts := strings.Split(slotTime, ":")
	if len(parts) != 2 {
		return 0, 0, &MalformedError{Field: "time", Value: slotTime}
	}
	hour, hErr := strconv.Atoi(parts[0])
	minute, mErr := strconv.Atoi(parts[1])
	if hErr != nil || mErr != nil {
		return 0, 0, &MalformedError{Field: "time", Value: slotTime}
	}
	return hour, minute, nil
}

// SlotInstant combines a slot date and time into an instant in loc.
func SlotInstant(slotDate, slotTime string, loc *time.Location) (time.Time, error) {
	day, month, year, err := ParseSlotDate(slotDate)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := ParseSlotTime(slotTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), nil
}

// IsSlotPast reports whether the slot's instant is strictly before now.
func IsSlotPast(slotDate, slotTime string, loc *time.Location, now time.Time) (bool, error) {
	instant, err := SlotInstant(slotDate, slotTime, loc)
	if err != nil {
		return false, err
	}
	return instant.Before(now), nil
}

// IsDatePast reports whether the slot's calendar date is before today.
// This is a date-only comparison, coarser than IsSlotPast: a slot earlier
// today is past by clock but not by date.
func IsDatePast(slotDate string, loc *time.Location, now time.Time) (bool, error) {
	day, month, year, err := ParseSlotDate(slotDate)
	if err != nil {
		return false, err
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	nowLoc := now.In(loc)
	startToday := time.Date(nowLoc.Year(), nowLoc.Month(), nowLoc.Day(), 0, 0, 0, 0, loc)
	return date.Before(startToday), nil
}
