package toggle_block

import (
	"context"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type SettingsService interface {
	ToggleWeekdayBlock(ctx context.Context, weekday int) (*domain.AdminSettings, int, error)
	ToggleSlotBlock(ctx context.Context, hour int) (*domain.AdminSettings, int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
