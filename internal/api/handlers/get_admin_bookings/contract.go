package get_admin_bookings

import (
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type BookingService interface {
	List() []*domain.Booking
	ListByDate(date string) []*domain.Booking
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
