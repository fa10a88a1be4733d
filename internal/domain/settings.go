package domain

import (
	"sort"
	"time"
)

// BlockingRules admin-blocked weekdays (0..6) and lab slots
type BlockingRules struct {
	Weekdays []int
	Slots    []int
}

// StudyBlockingRules blocked weekdays and hours (0..23) for study rooms
type StudyBlockingRules struct {
	Weekdays []int
	Hours    []int
}

// AdminSettings is the process-wide admin configuration singleton
type AdminSettings struct {
	PinHash              string
	Notice               string
	WebhookURL           string
	BlockedWeekdays      []int
	BlockedSlots         []int
	StudyBlockedWeekdays []int
	StudyBlockedHours    []int
	UpdatedAt            time.Time
}

// BookingRules returns the lab blocking rules
func (s *AdminSettings) BookingRules() BlockingRules {
	return BlockingRules{
		Weekdays: append([]int(nil), s.BlockedWeekdays...),
		Slots:    append([]int(nil), s.BlockedSlots...),
	}
}

// StudyRules returns the study room blocking rules
func (s *AdminSettings) StudyRules() StudyBlockingRules {
	return StudyBlockingRules{
		Weekdays: append([]int(nil), s.StudyBlockedWeekdays...),
		Hours:    append([]int(nil), s.StudyBlockedHours...),
	}
}

// Clone returns a deep copy
func (s *AdminSettings) Clone() *AdminSettings {
	c := *s
	c.BlockedWeekdays = append([]int(nil), s.BlockedWeekdays...)
	c.BlockedSlots = append([]int(nil), s.BlockedSlots...)
	c.StudyBlockedWeekdays = append([]int(nil), s.StudyBlockedWeekdays...)
	c.StudyBlockedHours = append([]int(nil), s.StudyBlockedHours...)
	return &c
}

// ContainsInt reports whether v is in set
func ContainsInt(set []int, v int) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

// ToggleInt adds v to set or removes it, returning a new sorted slice
func ToggleInt(set []int, v int) []int {
	result := make([]int, 0, len(set)+1)
	found := false
	for _, x := range set {
		if x == v {
			found = true
			continue
		}
		result = append(result, x)
	}
	if !found {
		result = append(result, v)
	}
	sort.Ints(result)
	return result
}

// NormalizeIntSet sorts and de-duplicates set
func NormalizeIntSet(set []int) []int {
	seen := make(map[int]struct{}, len(set))
	result := make([]int, 0, len(set))
	for _, v := range set {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	sort.Ints(result)
	return result
}
