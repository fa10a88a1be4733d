package update_settings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgNothingToUpdate    = "변경할 항목이 없습니다."
	msgInvalidNotice      = "공지사항은 2000자 이하로 입력하세요."
	msgInvalidWebhookURL  = "웹훅 URL 형식이 올바르지 않습니다."
)

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

// Handle PATCH /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Notice == nil && req.WebhookURL == nil {
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	if req.Notice != nil {
		if err := h.service.UpdateNotice(r.Context(), *req.Notice); err != nil {
			h.respondError(w, err, msgInvalidNotice)
			return
		}
	}

	if req.WebhookURL != nil {
		if err := h.service.UpdateWebhookURL(r.Context(), *req.WebhookURL); err != nil {
			h.respondError(w, err, msgInvalidWebhookURL)
			return
		}
	}

	current := h.service.Snapshot()

	h.logger.Info("PATCH /admin/settings - Settings updated successfully")
	handlers.RespondJSON(w, http.StatusOK, &SettingsResponse{
		Notice:     current.Notice,
		WebhookURL: current.WebhookURL,
		UpdatedAt:  current.UpdatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) respondError(w http.ResponseWriter, err error, invalidMsg string) {
	switch {
	case errors.Is(err, settings.ErrInvalidInput):
		h.logger.Warn("PATCH /admin/settings - Invalid input: %v", err)
		handlers.RespondBadRequest(w, invalidMsg)
	default:
		h.logger.Error("PATCH /admin/settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
	}
}
