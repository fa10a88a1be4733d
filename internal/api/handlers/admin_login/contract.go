package admin_login

type PinAuthenticator interface {
	Authenticate(pin string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
