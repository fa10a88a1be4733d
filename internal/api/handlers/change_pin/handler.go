package change_pin

import (
	"errors"
	"net/http"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgInvalidCurrentPin  = "현재 PIN이 올바르지 않습니다."
	msgPinTooShort        = "새 PIN은 4자리 이상이어야 합니다."
	msgPinMismatch        = "새 PIN이 일치하지 않습니다."
)

// ChangePinRequest HTTP request model
type ChangePinRequest struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin"`
	ConfirmPin string `json:"confirmPin"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/pin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChangePinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/pin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.ChangePin(r.Context(), req.CurrentPin, req.NewPin, req.ConfirmPin)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidPin):
			h.logger.Warn("POST /admin/pin - Current PIN rejected")
			handlers.RespondUnauthorized(w, msgInvalidCurrentPin)
		case errors.Is(err, settings.ErrPinTooShort):
			handlers.RespondBadRequest(w, msgPinTooShort)
		case errors.Is(err, settings.ErrPinMismatch):
			handlers.RespondBadRequest(w, msgPinMismatch)
		default:
			h.logger.Error("POST /admin/pin - Failed to change PIN: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/pin - PIN changed")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
