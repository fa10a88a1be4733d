package change_pin

import "context"

type SettingsService interface {
	ChangePin(ctx context.Context, currentPin, newPin, confirmPin string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
