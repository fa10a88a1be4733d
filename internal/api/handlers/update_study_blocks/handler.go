package update_study_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgInvalidValues      = "요일은 0~6, 시간은 0~23 사이여야 합니다."
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

// Handle PUT /api/v1/admin/study-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateStudyBlocksRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/study-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.SetStudyBlocking(r.Context(), req.Weekdays, req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/study-blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidValues)
		default:
			h.logger.Error("PUT /admin/study-blocks - Failed to update: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/study-blocks - Updated: weekdays=%v, hours=%v",
		updated.StudyBlockedWeekdays, updated.StudyBlockedHours)
	handlers.RespondJSON(w, http.StatusOK, &StudyBlocksResponse{
		Weekdays: updated.StudyBlockedWeekdays,
		Hours:    updated.StudyBlockedHours,
	})
}
