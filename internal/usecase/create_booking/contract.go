package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/service/bookings/models"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	OccupiedSeats(date string, slot domain.SlotHour) map[int]*domain.Booking
	Create(p models.CreateParams) *domain.Booking
	Add(ctx context.Context, booking *domain.Booking) error
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
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
