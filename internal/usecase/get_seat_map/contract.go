package get_seat_map

import (
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	OccupiedSeats(date string, slot domain.SlotHour) map[int]*domain.Booking
}

// RulesProvider источник текущих правил блокировки
type RulesProvider interface {
	BookingRules() domain.BlockingRules
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
