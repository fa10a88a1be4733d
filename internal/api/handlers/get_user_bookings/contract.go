package get_user_bookings

import (
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type BookingService interface {
	FindByStudent(studentID string) []*domain.Booking
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
