package get_contacts

import (
	"net/http"
	"strings"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

const (
	msgMissingSelection = "예약 ID 또는 날짜를 지정하세요."
	msgInvalidDate      = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)."
	msgNoContacts       = "연락처가 없습니다."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/contacts?ids=a,b&message= или ?date=YYYY-MM-DD&message=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ids := splitIDs(query.Get("ids"))
	date := query.Get("date")

	var (
		phones  []string
		missing []string
	)
	switch {
	case len(ids) > 0:
		for _, id := range ids {
			b, err := h.service.GetByID(id)
			if err != nil {
				missing = append(missing, id)
				continue
			}
			phones = append(phones, b.Phone)
		}

	case date != "":
		if _, err := domain.ParseDate(date); err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		for _, b := range h.service.ListByDate(date) {
			phones = append(phones, b.Phone)
		}

	default:
		handlers.RespondBadRequest(w, msgMissingSelection)
		return
	}

	resp := ToContactsResponse(phones, query.Get("message"), missing)
	if len(resp.Phones) == 0 {
		h.logger.Warn("GET /admin/contacts - No contacts: ids=%v, date=%q", ids, date)
		handlers.RespondNotFound(w, msgNoContacts)
		return
	}

	h.logger.Info("GET /admin/contacts - Contacts built: count=%d", len(resp.Phones))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func splitIDs(raw string) []string {
	result := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			result = append(result, id)
		}
	}
	return result
}
