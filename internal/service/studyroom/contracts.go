package studyroom

import (
	"context"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// SessionRepository интерфейс хранилища сессий студий
type SessionRepository interface {
	LoadAll(ctx context.Context) ([]*domain.StudySession, error)
	Insert(ctx context.Context, session *domain.StudySession) error
	DeleteByIDs(ctx context.Context, ids []string) (int, error)
}

// RulesProvider источник текущих правил блокировки студий
type RulesProvider interface {
	StudyRules() domain.StudyBlockingRules
}

// Metrics счетчики событий сессий
type Metrics interface {
	StudySessionEvent(event string, n int)
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
