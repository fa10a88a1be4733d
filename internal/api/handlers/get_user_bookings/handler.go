package get_user_bookings

import (
	"net/http"
	"strings"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/bookings/models"
)

const (
	msgMissingStudentID = "학번을 입력하세요."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?studentId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID := strings.TrimSpace(r.URL.Query().Get("studentId"))
	if studentID == "" {
		h.logger.Warn("GET /bookings - Missing studentId")
		handlers.RespondBadRequest(w, msgMissingStudentID)
		return
	}

	result := h.service.FindByStudent(studentID)

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, models.ToPublicBookingList(result))
}
