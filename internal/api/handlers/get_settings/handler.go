package get_settings

import (
	"net/http"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings/models"
)

type Handler struct {
	service SettingsService
	admin   bool
}

// NewHandler публичный обработчик
func NewHandler(service SettingsService) *Handler {
	return &Handler{service: service}
}

// NewAdminHandler обработчик для администратора, дополнительно отдает webhook URL
func NewAdminHandler(service SettingsService) *Handler {
	return &Handler{service: service, admin: true}
}

// Handle GET /api/v1/settings и GET /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.service.Snapshot()
	if h.admin {
		handlers.RespondJSON(w, http.StatusOK, models.FromDomainAdmin(snapshot))
		return
	}
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainPublic(snapshot))
}
