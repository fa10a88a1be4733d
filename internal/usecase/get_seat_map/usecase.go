package get_seat_map

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/availability"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/pkg/masking"
)

// UseCase use case для построения схемы мест лаборатории
type UseCase struct {
	store        BookingStore
	rules        RulesProvider
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
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

// Execute строит схему всех мест на дату и слот
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	weekday, err := domain.WeekdayOf(req.Date)
	if err != nil {
		uc.logger.Warn("GetSeatMap: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	slot := domain.SlotHour(req.SlotHour)
	if !slot.IsValid() {
		uc.logger.Warn("GetSeatMap: invalid slot %d", req.SlotHour)
		return nil, fmt.Errorf("%w: slot must be one of 18, 19, 20", ErrInvalidInput)
	}

	// 2. Правила блокировки и занятость
	resp := &Response{
		Date:      req.Date,
		SlotHour:  req.SlotHour,
		SlotLabel: slot.Label(),
		IsPast:    domain.IsDateBefore(req.Date, uc.timeProvider.Now(), uc.location),
	}

	switch availability.CheckBlocked(weekday, slot, uc.rules.BookingRules()) {
	case availability.BlockedByWeekday:
		resp.Blocked, resp.BlockReason = true, BlockReasonWeekday
	case availability.BlockedBySlot:
		resp.Blocked, resp.BlockReason = true, BlockReasonSlot
	}

	occupied := uc.store.OccupiedSeats(req.Date, slot)

	// 3. Собираем схему
	resp.Seats = make([]Seat, 0, domain.TotalSeats)
	for n := 1; n <= domain.TotalSeats; n++ {
		seat := Seat{Number: n, Status: SeatFree}
		switch booking, taken := occupied[n]; {
		case domain.IsNonReservableSeat(n):
			seat.Status = SeatDisabled
		case taken:
			seat.Status = SeatReserved
			seat.OccupantMasked = masking.Name(booking.Name)
		}
		resp.Seats = append(resp.Seats, seat)
	}

	if !resp.Blocked && !resp.IsPast {
		resp.FreeSeats = availability.FreeSeatCount(occupied)
	}

	uc.logger.Info("GetSeatMap: date=%s slot=%d occupied=%d free=%d", req.Date, req.SlotHour, len(occupied), resp.FreeSeats)
	return resp, nil
}
