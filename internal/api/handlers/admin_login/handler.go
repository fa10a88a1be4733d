package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgInvalidPin         = "PIN이 올바르지 않습니다."
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Pin string `json:"pin"`
}

type Handler struct {
	auth   PinAuthenticator
	logger Logger
}

func NewHandler(auth PinAuthenticator, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.auth.Authenticate(req.Pin); err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidPin):
			h.logger.Warn("POST /admin/login - Invalid PIN")
			handlers.RespondUnauthorized(w, msgInvalidPin)
		default:
			h.logger.Error("POST /admin/login - Failed to authenticate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
