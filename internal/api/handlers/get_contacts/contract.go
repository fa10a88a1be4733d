package get_contacts

import (
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type BookingService interface {
	GetByID(id string) (*domain.Booking, error)
	ListByDate(date string) []*domain.Booking
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
