package studyroom

import (
	"errors"
	"fmt"
)

var (
	// ErrStudyBlocked возвращается, когда текущий день недели или час закрыт администратором
	ErrStudyBlocked = errors.New("study room is blocked at this time")

	// ErrInvalidRoom возвращается для неизвестной комнаты
	ErrInvalidRoom = errors.New("invalid room")

	// ErrMissingName возвращается, когда имя участника пустое
	ErrMissingName = errors.New("member name is required")

	// ErrInvalidStudentID возвращается, когда номер студента не 8-9 цифр
	ErrInvalidStudentID = errors.New("invalid student id")

	// ErrDisallowedDepartment возвращается для участника другого факультета
	ErrDisallowedDepartment = errors.New("department not allowed")

	// ErrInvalidPhone возвращается, когда у лидера нет контактного телефона
	ErrInvalidPhone = errors.New("invalid leader phone")

	// ErrPartyTooSmall возвращается, когда участников меньше трех
	ErrPartyTooSmall = errors.New("party is too small")

	// ErrPartyTooLarge возвращается, когда участников больше шести
	ErrPartyTooLarge = errors.New("party is too large")

	// ErrInvalidDuration возвращается для длительности вне 15..120 минут или не кратной 15
	ErrInvalidDuration = errors.New("invalid session duration")

	// ErrRoomBusy возвращается, когда в комнате уже идет сессия
	ErrRoomBusy = errors.New("room is busy")

	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// MemberError ошибка валидации участника, не являющегося лидером.
// Index считается с единицы в порядке списка
type MemberError struct {
	Index int
	Err   error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("member %d: %v", e.Index, e.Err)
}

func (e *MemberError) Unwrap() error {
	return e.Err
}
