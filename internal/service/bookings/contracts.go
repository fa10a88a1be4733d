package bookings

import (
	"context"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований (табличное или key-value)
type BookingRepository interface {
	LoadAll(ctx context.Context) ([]*domain.Booking, error)
	Insert(ctx context.Context, booking *domain.Booking) error
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
}

// Metrics счетчики доменных событий
type Metrics interface {
	BookingCreated()
	BookingsRemoved(reason string, n int)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
