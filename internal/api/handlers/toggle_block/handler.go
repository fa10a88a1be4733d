package toggle_block

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings/models"
)

const (
	msgInvalidWeekday = "요일은 0(일)~6(토) 사이여야 합니다."
	msgInvalidSlot    = "시간대는 18, 19, 20 중 하나여야 합니다."
	msgPurgeFailed    = "차단 설정은 저장되었지만 기존 예약 정리에 실패했습니다."
)

type toggleFunc func(ctx context.Context, v int) (*domain.AdminSettings, int, error)

type Handler struct {
	toggle     toggleFunc
	param      string
	route      string
	invalidMsg string
	logger     Logger
}

// NewWeekdayHandler POST /api/v1/admin/blocks/weekdays/{weekday}
func NewWeekdayHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		toggle:     service.ToggleWeekdayBlock,
		param:      "weekday",
		route:      "POST /admin/blocks/weekdays/{weekday}",
		invalidMsg: msgInvalidWeekday,
		logger:     logger,
	}
}

// NewSlotHandler POST /api/v1/admin/blocks/slots/{hour}
func NewSlotHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		toggle:     service.ToggleSlotBlock,
		param:      "hour",
		route:      "POST /admin/blocks/slots/{hour}",
		invalidMsg: msgInvalidSlot,
		logger:     logger,
	}
}

// Handle переключает блокировку и возвращает новые правила и число удаленных бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.Atoi(mux.Vars(r)[h.param])
	if err != nil {
		h.logger.Warn("%s - Invalid %s: %v", h.route, h.param, err)
		handlers.RespondBadRequest(w, h.invalidMsg)
		return
	}

	updated, purged, err := h.toggle(r.Context(), value)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", h.route, err)
			handlers.RespondBadRequest(w, h.invalidMsg)

		case errors.Is(err, settings.ErrPurgeFailed) && updated != nil:
			// Правила уже сохранены, администратор должен увидеть новое состояние
			h.logger.Error("%s - Purge failed: %v", h.route, err)
			resp := models.FromDomainBlocking(updated, 0)
			resp.PurgeFailed = true
			handlers.RespondJSON(w, http.StatusOK, resp)

		case errors.Is(err, settings.ErrPurgeFailed):
			h.logger.Error("%s - Purge failed: %v", h.route, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPurgeFailed)

		default:
			h.logger.Error("%s - Failed to toggle block: %v", h.route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Block toggled: %s=%d, purged=%d", h.route, h.param, value, purged)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBlocking(updated, purged))
}
