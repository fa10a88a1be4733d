package get_settings

import (
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type SettingsService interface {
	Snapshot() *domain.AdminSettings
}
