package get_seat_map

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном формате даты или слота
	ErrInvalidInput = errors.New("get_seat_map: invalid input data")
)
