package bulk_cancel

import "errors"

var (
	// ErrInvalidInput возвращается, когда список идентификаторов пуст
	ErrInvalidInput = errors.New("bulk_cancel: invalid input data")

	// ErrNothingToCancel возвращается, когда ни одно бронирование не найдено
	ErrNothingToCancel = errors.New("bulk_cancel: no matching bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("bulk_cancel: internal error")
)
