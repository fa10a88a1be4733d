package settings

import (
	"context"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// SettingsRepository интерфейс хранилища настроек
type SettingsRepository interface {
	Load(ctx context.Context) (*domain.AdminSettings, error)
	Upsert(ctx context.Context, settings *domain.AdminSettings) error
}

// Purger удаляет бронирования, попавшие под новые правила блокировки
type Purger interface {
	PurgeBlocked(ctx context.Context, rules domain.BlockingRules) (int, error)
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
