package get_seat_map

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	getSeatMap "github.com/m04kA/EconLab-ReservationService/internal/usecase/get_seat_map"
)

const (
	msgInvalidQuery = "날짜(YYYY-MM-DD)와 시간대(18, 19, 20)를 확인하세요."
)

type Handler struct {
	useCase GetSeatMapUseCase
	logger  Logger
}

func NewHandler(useCase GetSeatMapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/seats?date=YYYY-MM-DD&slot=18
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	slot, err := strconv.Atoi(query.Get("slot"))
	if err != nil {
		h.logger.Warn("GET /seats - Invalid slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSeatMap.Request{
		Date:     query.Get("date"),
		SlotHour: slot,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSeatMap.ErrInvalidInput):
			h.logger.Warn("GET /seats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
		default:
			h.logger.Error("GET /seats - Failed to build seat map: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
