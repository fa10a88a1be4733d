package settings

import "errors"

var (
	// ErrInvalidPin возвращается при неверном PIN
	ErrInvalidPin = errors.New("invalid admin pin")

	// ErrPinTooShort возвращается, когда новый PIN короче допустимого
	ErrPinTooShort = errors.New("new pin is too short")

	// ErrPinMismatch возвращается, когда подтверждение не совпадает с новым PIN
	ErrPinMismatch = errors.New("pin confirmation mismatch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotLoaded возвращается, если настройки еще не загружены
	ErrNotLoaded = errors.New("settings not loaded")

	// ErrPurgeFailed возвращается, когда правила сохранены, но очистка бронирований не удалась
	ErrPurgeFailed = errors.New("blocked bookings purge failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
