package bulk_cancel

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	bulkCancel "github.com/m04kA/EconLab-ReservationService/internal/usecase/bulk_cancel"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgInvalidIDs         = "취소할 예약을 선택하세요."
	msgNothingToCancel    = "취소할 예약을 찾을 수 없습니다."
	msgCancelFailed       = "예약 취소에 실패했습니다."
)

type Handler struct {
	useCase  BulkCancelUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase BulkCancelUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/bookings/bulk-cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkCancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/bulk-cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /admin/bookings/bulk-cancel - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIDs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bulkCancel.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidIDs)
		case errors.Is(err, bulkCancel.ErrNothingToCancel):
			h.logger.Warn("POST /admin/bookings/bulk-cancel - Nothing to cancel: ids=%v", req.IDs)
			handlers.RespondNotFound(w, msgNothingToCancel)
		default:
			h.logger.Error("POST /admin/bookings/bulk-cancel - Failed to cancel: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCancelFailed)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/bulk-cancel - Cancelled %d bookings, notified=%t", result.Cancelled, result.Notified)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
