package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	createBooking "github.com/m04kA/EconLab-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgInvalidInput       = "날짜 또는 시간대 형식이 올바르지 않습니다."
	msgMissingName        = "이름을 입력하세요."
	msgInvalidStudentID   = "학번 형식이 올바르지 않습니다 (8~9자리)."
	msgDisallowedDept     = "경제학과 학생만 이용 가능합니다."
	msgInvalidPhone       = "전화번호 형식이 올바르지 않습니다."
	msgBlockedWeekday     = "해당 요일에는 예약이 불가합니다."
	msgBlockedSlot        = "해당 시간대는 예약이 불가합니다."
	msgPastDate           = "지난 날짜는 예약할 수 없습니다."
	msgNoSeatSelected     = "좌석을 선택하세요."
	msgInvalidSeat        = "존재하지 않는 좌석입니다."
	msgNonReservableSeat  = "해당 좌석은 예약 불가 (57~60)."
	msgSeatTaken          = "이미 예약된 좌석입니다."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Порядок важен: ErrBlockedWeekday оборачивает ErrBlockedSlot
		switch {
		case errors.Is(err, createBooking.ErrSeatTaken):
			h.logger.Warn("POST /bookings - Seat taken: date=%s, slot=%d", req.Date, req.SlotHour)
			handlers.RespondConflict(w, msgSeatTaken)

		case errors.Is(err, createBooking.ErrBlockedWeekday):
			handlers.RespondBadRequest(w, msgBlockedWeekday)

		case errors.Is(err, createBooking.ErrBlockedSlot):
			handlers.RespondBadRequest(w, msgBlockedSlot)

		case errors.Is(err, createBooking.ErrInternal):
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot=%d, error=%v",
				req.Date, req.SlotHour, err)
			handlers.RespondInternalError(w)

		default:
			msg, ok := validationMessage(err)
			if !ok {
				h.logger.Error("POST /bookings - Unexpected error: %v", err)
				handlers.RespondInternalError(w)
				return
			}
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msg)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, seat=%d, date=%s, slot=%d",
		result.ID, result.SeatNumber, result.Date, result.SlotHour)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		return msgInvalidInput, true
	case errors.Is(err, createBooking.ErrMissingField):
		return msgMissingName, true
	case errors.Is(err, createBooking.ErrInvalidStudentID):
		return msgInvalidStudentID, true
	case errors.Is(err, createBooking.ErrDisallowedDepartment):
		return msgDisallowedDept, true
	case errors.Is(err, createBooking.ErrInvalidPhone):
		return msgInvalidPhone, true
	case errors.Is(err, createBooking.ErrPastDate):
		return msgPastDate, true
	case errors.Is(err, createBooking.ErrNoSeatSelected):
		return msgNoSeatSelected, true
	case errors.Is(err, createBooking.ErrInvalidSeat):
		return msgInvalidSeat, true
	case errors.Is(err, createBooking.ErrNonReservableSeat):
		return msgNonReservableSeat, true
	}
	return "", false
}
