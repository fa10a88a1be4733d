package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	bookingsService "github.com/m04kA/EconLab-ReservationService/internal/service/bookings"
	"github.com/m04kA/EconLab-ReservationService/internal/service/bookings/models"
)

// UseCase use case для создания бронирования места в лаборатории
type UseCase struct {
	store        BookingStore
	rules        RulesProvider
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// loc задает часовой пояс, в котором определяется "сегодня"
func NewUseCase(store BookingStore, rules RulesProvider, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		store:        store,
		rules:        rules,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute проверяет заявку и сохраняет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формата запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: invalid request: %v", err)
		return nil, err
	}

	slot := domain.SlotHour(req.SlotHour)
	uc.logger.Info("CreateBooking: date=%s, slot=%d, seat=%v", req.Date, req.SlotHour, seatLabel(req.SeatNumber))

	// 2. Получаем текущее состояние
	now := uc.timeProvider.Now()
	rules := uc.rules.BookingRules()
	isPast := domain.IsDateBefore(req.Date, now, uc.location)
	occupied := uc.store.OccupiedSeats(req.Date, slot)

	// 3. Проверяем заявку
	input := Input{
		Name:       req.Name,
		StudentID:  req.StudentID,
		Phone:      req.Phone,
		Department: req.Department,
		Date:       req.Date,
		SlotHour:   slot,
		SeatNumber: req.SeatNumber,
	}
	if err := Validate(input, rules, isPast, occupied); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 4. Создаем и сохраняем бронирование
	booking := uc.store.Create(models.CreateParams{
		Name:       req.Name,
		StudentID:  req.StudentID,
		Phone:      req.Phone,
		Department: req.Department,
		Date:       req.Date,
		SlotHour:   slot,
		SeatNumber: *req.SeatNumber,
	})

	if err := uc.store.Add(ctx, booking); err != nil {
		if errors.Is(err, bookingsService.ErrSeatTaken) {
			uc.logger.Warn("CreateBooking: seat %d taken concurrently", booking.SeatNumber)
			return nil, ErrSeatTaken
		}
		uc.logger.Error("CreateBooking: failed to save booking: %v", err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	return &Response{
		ID:         booking.ID,
		SeatNumber: booking.SeatNumber,
		Date:       booking.Date,
		SlotHour:   int(booking.SlotHour),
		Name:       booking.Name,
		StudentID:  booking.StudentID,
		Phone:      booking.Phone,
		Department: booking.Department,
		CreatedAt:  booking.CreatedAt,
	}, nil
}

func seatLabel(seat *int) string {
	if seat == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *seat)
}
