package get_study_rooms

import (
	"net/http"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom/models"
)

type Handler struct {
	service SessionService
}

func NewHandler(service SessionService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/study-rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := h.service.Now()
	handlers.RespondJSON(w, http.StatusOK, models.ToRoomStatuses(h.service.ActiveByRoom(), now))
}

// HandleAdmin GET /api/v1/admin/study-rooms/sessions, без маскирования
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	now := h.service.Now()
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSessionList(h.service.List(), now))
}
