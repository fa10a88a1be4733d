package export_csv

import (
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type BookingService interface {
	List() []*domain.Booking
	ListByDate(date string) []*domain.Booking
}

type SessionService interface {
	List() []*domain.StudySession
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
