package domain

import "time"

// Booking represents a reserved computer-lab seat for one slot on one date
type Booking struct {
	ID         string
	SeatNumber int
	Date       string // YYYY-MM-DD
	SlotHour   SlotHour
	Name       string
	StudentID  string
	Phone      string // canonical digits, 01XXXXXXXXX
	Department string
	CreatedAt  time.Time
}

// Matches returns true if the booking occupies the given date and slot
func (b *Booking) Matches(date string, slot SlotHour) bool {
	return b.Date == date && b.SlotHour == slot
}

// Weekday returns the day of week of the booking date (Sunday = 0)
func (b *Booking) Weekday() (time.Weekday, error) {
	return WeekdayOf(b.Date)
}

// IsNonReservableSeat returns true for seats that can never be booked
func IsNonReservableSeat(seat int) bool {
	return seat >= FirstNonReservableSeat && seat <= TotalSeats
}

// IsSeatInRange returns true if the seat exists in the lab
func IsSeatInRange(seat int) bool {
	return seat >= 1 && seat <= TotalSeats
}

// IsAllowedDepartment returns true if students of the department may book
func IsAllowedDepartment(department string) bool {
	return department == AllowedDepartment
}
