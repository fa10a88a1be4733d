package availability

import (
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// BlockReason причина блокировки слота
type BlockReason int

const (
	NotBlocked BlockReason = iota
	BlockedByWeekday
	BlockedBySlot
)

// CheckBlocked определяет, закрыт ли слот правилами администратора.
// День недели проверяется раньше слота, чтобы сообщение об ошибке было про день.
func CheckBlocked(weekday time.Weekday, slot domain.SlotHour, rules domain.BlockingRules) BlockReason {
	if domain.ContainsInt(rules.Weekdays, int(weekday)) {
		return BlockedByWeekday
	}
	if domain.ContainsInt(rules.Slots, int(slot)) {
		return BlockedBySlot
	}
	return NotBlocked
}

// IsBlocked возвращает true, если день недели даты или слот заблокированы.
// Некорректная дата проверяется только по слоту.
func IsBlocked(date string, slot domain.SlotHour, rules domain.BlockingRules) bool {
	weekday, err := domain.WeekdayOf(date)
	if err != nil {
		return domain.ContainsInt(rules.Slots, int(slot))
	}
	return CheckBlocked(weekday, slot, rules) != NotBlocked
}

// IsStudyBlocked проверяет правила студий для момента now в часовом поясе loc
func IsStudyBlocked(now time.Time, loc *time.Location, rules domain.StudyBlockingRules) bool {
	local := now.In(loc)
	return domain.ContainsInt(rules.Weekdays, int(local.Weekday())) ||
		domain.ContainsInt(rules.Hours, local.Hour())
}

// BlockedBookings выбирает бронирования, попадающие под правила
func BlockedBookings(bookings []*domain.Booking, rules domain.BlockingRules) []*domain.Booking {
	var blocked []*domain.Booking
	for _, b := range bookings {
		if IsBlocked(b.Date, b.SlotHour, rules) {
			blocked = append(blocked, b)
		}
	}
	return blocked
}
