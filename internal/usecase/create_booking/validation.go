package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/EconLab-ReservationService/internal/availability"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/pkg/phone"
)

// Input поля заявки в том виде, в котором их проверяет Validate
type Input struct {
	Name       string
	StudentID  string
	Phone      string
	Department string
	Date       string
	SlotHour   domain.SlotHour
	SeatNumber *int
}

// Validate проверяет заявку в фиксированном порядке и возвращает первую ошибку.
// occupied - занятые места на (Date, SlotHour)
func Validate(in Input, rules domain.BlockingRules, isPastDate bool, occupied map[int]*domain.Booking) error {
	// 1. Имя
	if strings.TrimSpace(in.Name) == "" {
		return ErrMissingField
	}

	// 2. Номер студента
	if !domain.StudentIDPattern.MatchString(strings.TrimSpace(in.StudentID)) {
		return ErrInvalidStudentID
	}

	// 3. Факультет
	if !domain.IsAllowedDepartment(strings.TrimSpace(in.Department)) {
		return ErrDisallowedDepartment
	}

	// 4. Телефон
	if _, err := phone.Normalize(in.Phone); err != nil {
		return ErrInvalidPhone
	}

	// 5. Блокировка дня недели или слота
	if err := checkBlocked(in.Date, in.SlotHour, rules); err != nil {
		return err
	}

	// 6. Прошедшая дата
	if isPastDate {
		return ErrPastDate
	}

	// 7. Место выбрано
	if in.SeatNumber == nil {
		return ErrNoSeatSelected
	}
	seat := *in.SeatNumber

	// 8. Место существует и доступно для бронирования
	if !domain.IsSeatInRange(seat) {
		return fmt.Errorf("%w: seat %d", ErrInvalidSeat, seat)
	}
	if domain.IsNonReservableSeat(seat) {
		return ErrNonReservableSeat
	}

	// 9. Место свободно
	if _, taken := occupied[seat]; taken {
		return ErrSeatTaken
	}

	return nil
}

func checkBlocked(date string, slot domain.SlotHour, rules domain.BlockingRules) error {
	weekday, err := domain.WeekdayOf(date)
	if err != nil {
		if availability.IsBlocked(date, slot, rules) {
			return ErrBlockedSlot
		}
		return nil
	}

	switch availability.CheckBlocked(weekday, slot, rules) {
	case availability.BlockedByWeekday:
		return ErrBlockedWeekday
	case availability.BlockedBySlot:
		return ErrBlockedSlot
	default:
		return nil
	}
}

// validateRequest проверяет формат даты и слота до основной валидации
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if _, err := domain.ParseDate(req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	if !domain.SlotHour(req.SlotHour).IsValid() {
		return fmt.Errorf("%w: slot must be one of 18, 19, 20", ErrInvalidInput)
	}

	return nil
}
