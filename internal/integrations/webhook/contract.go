package webhook

// Metrics счетчик результатов отправки
type Metrics interface {
	WebhookOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
