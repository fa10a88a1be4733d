package get_admin_bookings

import (
	"net/http"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/service/bookings/models"
)

const (
	msgInvalidDate = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)."
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

// Handle GET /api/v1/admin/bookings?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	var result []*domain.Booking
	if date == "" {
		result = h.service.List()
	} else {
		if _, err := domain.ParseDate(date); err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result = h.service.ListByDate(date)
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: date=%q, count=%d", date, len(result))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBookingList(result))
}
