package send_notification

import (
	"context"

	sendNotification "github.com/m04kA/EconLab-ReservationService/internal/usecase/send_notification"
)

type SendNotificationUseCase interface {
	Execute(ctx context.Context, req *sendNotification.Request) (*sendNotification.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
