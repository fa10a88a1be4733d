package end_study_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom"
)

const (
	msgNotFound = "이미 종료되었거나 존재하지 않는 세션입니다."
)

type Handler struct {
	service SessionService
	route   string
	logger  Logger
}

// NewHandler завершение сессии участником
func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{service: service, route: "DELETE /study-rooms/sessions/{id}", logger: logger}
}

// NewAdminHandler принудительное завершение администратором
func NewAdminHandler(service SessionService, logger Logger) *Handler {
	return &Handler{service: service, route: "DELETE /admin/study-rooms/sessions/{id}", logger: logger}
}

// Handle завершает сессию {sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if err := h.service.End(r.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, studyroom.ErrSessionNotFound):
			h.logger.Warn("%s - Session not found: session_id=%s", h.route, sessionID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("%s - Failed to end session: session_id=%s, error=%v", h.route, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Session ended: session_id=%s", h.route, sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
