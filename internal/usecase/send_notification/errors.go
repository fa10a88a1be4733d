package send_notification

import "errors"

var (
	// ErrInvalidInput возвращается, когда не переданы ни бронирования, ни телефоны
	ErrInvalidInput = errors.New("send_notification: invalid input data")

	// ErrWebhookNotConfigured возвращается, когда адрес webhook не задан
	ErrWebhookNotConfigured = errors.New("send_notification: webhook url is not configured")

	// ErrNoContacts возвращается, когда после разрешения не осталось ни одного телефона
	ErrNoContacts = errors.New("send_notification: no contacts")

	// ErrDeliveryFailed возвращается, когда получатель webhook недоступен или ответил ошибкой
	ErrDeliveryFailed = errors.New("send_notification: delivery failed")
)
