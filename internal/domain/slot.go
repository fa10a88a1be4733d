package domain

import (
	"fmt"
	"time"
)

// SlotHour is the start hour of a one-hour lab slot
type SlotHour int

const (
	Slot18 SlotHour = 18
	Slot19 SlotHour = 19
	Slot20 SlotHour = 20
)

// SlotHours lists the lab slots in display order
var SlotHours = []SlotHour{Slot18, Slot19, Slot20}

// IsValid returns true for the three defined slots
func (h SlotHour) IsValid() bool {
	return h == Slot18 || h == Slot19 || h == Slot20
}

// Label formats the slot as "18:00-19:00"
func (h SlotHour) Label() string {
	return fmt.Sprintf("%02d:00-%02d:00", int(h), int(h)+1)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateFormat, date)
}

// WeekdayOf returns the day of week of a calendar date. A calendar date has the
// same weekday in every timezone, so the date is interpreted at UTC midnight.
func WeekdayOf(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// IsDateBefore returns true if date lies before today's date in loc
func IsDateBefore(date string, now time.Time, loc *time.Location) bool {
	today := now.In(loc).Format(DateFormat)
	return date < today
}
