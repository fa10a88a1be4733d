package cancel_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgMissingStudentID   = "학번을 입력하세요."
	msgNotFound           = "예약을 찾을 수 없습니다."
	msgForbidden          = "본인의 예약만 취소할 수 있습니다."
	msgCancelFailed       = "예약 취소에 실패했습니다."
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

// Handle POST /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if strings.TrimSpace(req.StudentID) == "" {
		handlers.RespondBadRequest(w, msgMissingStudentID)
		return
	}

	err := h.service.CancelOwn(r.Context(), bookingID, req.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/cancel - Access denied: booking_id=%s", bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCancelFailed)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
