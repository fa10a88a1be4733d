package update_study_blocks

import (
	"context"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type SettingsService interface {
	SetStudyBlocking(ctx context.Context, weekdays, hours []int) (*domain.AdminSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
