package bulk_cancel

import (
	"context"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/integrations/webhook"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	GetByID(id string) (*domain.Booking, error)
	BulkCancel(ctx context.Context, ids []string) (int, error)
}

// SettingsProvider источник адреса webhook
type SettingsProvider interface {
	Snapshot() *domain.AdminSettings
}

// Notifier отправляет уведомление на webhook
type Notifier interface {
	Send(ctx context.Context, url string, payload webhook.Payload) error
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
