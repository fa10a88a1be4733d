package export_csv

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/export"
)

const (
	msgInvalidDate = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)."
)

type Handler struct {
	bookings BookingService
	sessions SessionService
	location *time.Location
	logger   Logger
}

func NewHandler(bookings BookingService, sessions SessionService, loc *time.Location, logger Logger) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		bookings: bookings,
		sessions: sessions,
		location: loc,
		logger:   logger,
	}
}

// HandleBookings GET /api/v1/admin/export/bookings.csv?date=
func (h *Handler) HandleBookings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	list := h.bookings.List()
	filename := "pc_lab_bookings.csv"
	if date != "" {
		if _, err := domain.ParseDate(date); err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		list = h.bookings.ListByDate(date)
		filename = fmt.Sprintf("pc_lab_bookings_%s.csv", date)
	}

	var buf bytes.Buffer
	if err := export.WriteBookingsCSV(&buf, list, h.location); err != nil {
		h.logger.Error("GET /admin/export/bookings.csv - Failed to build CSV: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/export/bookings.csv - Exported %d bookings", len(list))
	writeCSV(w, filename, buf.Bytes())
}

// HandleSessions GET /api/v1/admin/export/sessions.csv
func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	list := h.sessions.List()

	var buf bytes.Buffer
	if err := export.WriteSessionsCSV(&buf, list, h.location); err != nil {
		h.logger.Error("GET /admin/export/sessions.csv - Failed to build CSV: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/export/sessions.csv - Exported %d sessions", len(list))
	writeCSV(w, "study_room_sessions.csv", buf.Bytes())
}

func writeCSV(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
