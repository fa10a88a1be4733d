package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// SessionSweeper удаляет истекшие сессии студий
type SessionSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SweeperConfig настройки фоновой очистки
type SweeperConfig struct {
	Interval time.Duration
}

// DefaultSweeperConfig возвращает настройки по умолчанию
func DefaultSweeperConfig() *SweeperConfig {
	return &SweeperConfig{
		Interval: domain.DefaultSweepIntervalSec * time.Second,
	}
}

// SessionExpiryJob периодически удаляет сессии, у которых истек endAt
type SessionExpiryJob struct {
	sweeper SessionSweeper
	config  *SweeperConfig
	logger  Logger

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSessionExpiryJob создает фоновую задачу очистки
func NewSessionExpiryJob(sweeper SessionSweeper, config *SweeperConfig, logger Logger) *SessionExpiryJob {
	if config == nil || config.Interval <= 0 {
		config = DefaultSweeperConfig()
	}

	return &SessionExpiryJob{
		sweeper: sweeper,
		config:  config,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start запускает очистку в отдельной горутине
func (j *SessionExpiryJob) Start(ctx context.Context) {
	j.wg.Add(1)
	go j.run(ctx)
	j.logger.Info("Session expiry job started with %v interval", j.config.Interval)
}

// Stop останавливает очистку и ждет завершения текущего прохода
func (j *SessionExpiryJob) Stop() {
	j.stopOnce.Do(func() { close(j.done) })
	j.wg.Wait()
	j.logger.Info("Session expiry job stopped")
}

func (j *SessionExpiryJob) run(ctx context.Context) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep(ctx)
		case <-j.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (j *SessionExpiryJob) sweep(ctx context.Context) {
	removed, err := j.sweeper.SweepExpired(ctx)
	if err != nil {
		j.logger.Error("Session expiry job: sweep failed: %v", err)
		return
	}
	if removed > 0 {
		j.logger.Info("Session expiry job: removed %d expired sessions", removed)
	}
}
