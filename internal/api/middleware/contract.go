package middleware

// PinAuthenticator проверяет PIN администратора
type PinAuthenticator interface {
	Authenticate(pin string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
