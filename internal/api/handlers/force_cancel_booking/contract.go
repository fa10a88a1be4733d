package force_cancel_booking

import "context"

type BookingService interface {
	ForceCancel(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
