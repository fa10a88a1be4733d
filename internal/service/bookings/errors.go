package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSeatTaken возвращается, когда место заняли между проверкой и сохранением
	ErrSeatTaken = errors.New("seat already taken")

	// ErrAccessDenied возвращается, когда студент отменяет чужое бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
