package update_settings

import (
	"context"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type SettingsService interface {
	UpdateNotice(ctx context.Context, notice string) error
	UpdateWebhookURL(ctx context.Context, url string) error
	Snapshot() *domain.AdminSettings
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
