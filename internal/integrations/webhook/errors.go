package webhook

import "errors"

var (
	// ErrNotConfigured возвращается, когда адрес webhook не задан
	ErrNotConfigured = errors.New("webhook: url is not configured")

	// ErrUnexpectedStatus возвращается, когда получатель ответил не 2xx
	ErrUnexpectedStatus = errors.New("webhook: unexpected status code")

	// ErrInternal возвращается при ошибках построения или выполнения запроса
	ErrInternal = errors.New("webhook client: internal error")
)
