package send_notification

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	sendNotification "github.com/m04kA/EconLab-ReservationService/internal/usecase/send_notification"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgInvalidInput       = "메시지와 수신 대상을 입력하세요."
	msgWebhookMissing     = "웹훅 URL을 설정하세요."
	msgNoContacts         = "연락처가 없습니다."
	msgDeliveryFailed     = "알림 전송에 실패했습니다."
)

type Handler struct {
	useCase  SendNotificationUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase SendNotificationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendNotificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/notifications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /admin/notifications - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sendNotification.Request{
		BookingIDs: req.BookingIDs,
		Phones:     req.Phones,
		Message:    req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, sendNotification.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, sendNotification.ErrWebhookNotConfigured):
			handlers.RespondBadRequest(w, msgWebhookMissing)
		case errors.Is(err, sendNotification.ErrNoContacts):
			handlers.RespondBadRequest(w, msgNoContacts)
		case errors.Is(err, sendNotification.ErrDeliveryFailed):
			h.logger.Warn("POST /admin/notifications - Delivery failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDeliveryFailed)
		default:
			h.logger.Error("POST /admin/notifications - Failed to send: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/notifications - Sent to %d numbers", len(result.Numbers))
	handlers.RespondJSON(w, http.StatusOK, &SendNotificationResponse{
		Numbers:    result.Numbers,
		MissingIDs: result.MissingIDs,
	})
}
