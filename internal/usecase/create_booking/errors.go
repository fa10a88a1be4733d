package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField возвращается, когда имя пустое
	ErrMissingField = errors.New("create_booking: name is required")

	// ErrInvalidStudentID возвращается, когда номер студента не 8-9 цифр
	ErrInvalidStudentID = errors.New("create_booking: invalid student id")

	// ErrDisallowedDepartment возвращается для студента другого факультета
	ErrDisallowedDepartment = errors.New("create_booking: department not allowed")

	// ErrInvalidPhone возвращается, когда телефон не нормализуется
	ErrInvalidPhone = errors.New("create_booking: invalid phone")

	// ErrBlockedSlot возвращается, когда дата или слот закрыты администратором
	ErrBlockedSlot = errors.New("create_booking: slot is blocked")

	// ErrBlockedWeekday уточнение ErrBlockedSlot: закрыт день недели
	ErrBlockedWeekday = fmt.Errorf("%w: weekday is blocked", ErrBlockedSlot)

	// ErrPastDate возвращается для даты раньше сегодняшней
	ErrPastDate = errors.New("create_booking: date is in the past")

	// ErrNoSeatSelected возвращается, когда место не выбрано
	ErrNoSeatSelected = errors.New("create_booking: no seat selected")

	// ErrInvalidSeat возвращается для номера места вне 1..60
	ErrInvalidSeat = errors.New("create_booking: seat out of range")

	// ErrNonReservableSeat возвращается для мест 57-60
	ErrNonReservableSeat = errors.New("create_booking: seat is not reservable")

	// ErrSeatTaken возвращается, когда место уже занято
	ErrSeatTaken = errors.New("create_booking: seat already taken")

	// ErrInvalidInput возвращается при некорректном формате даты или слота
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
