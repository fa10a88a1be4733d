package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/EconLab-ReservationService/internal/service/bookings"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
	"github.com/m04kA/EconLab-ReservationService/pkg/metrics"
)

type memoryRepository struct {
	stored    []*domain.Booking
	insertErr error
}

func (r *memoryRepository) LoadAll(context.Context) ([]*domain.Booking, error) {
	return r.stored, nil
}

func (r *memoryRepository) Insert(_ context.Context, b *domain.Booking) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.stored = append(r.stored, b)
	return nil
}

func (r *memoryRepository) DeleteByIDs(_ context.Context, ids []string) (int, error) {
	return len(ids), nil
}

type staticRules struct {
	rules domain.BlockingRules
}

func (s *staticRules) BookingRules() domain.BlockingRules {
	return s.rules
}

var seoul = time.FixedZone("KST", 9*60*60)

// Tuesday 2025-03-04 10:00 KST
var now = time.Date(2025, 3, 4, 10, 0, 0, 0, seoul)

func newTestUseCase(repo *memoryRepository, rules domain.BlockingRules) (*UseCase, *bookings.Service) {
	clock := testfixtures.NewClock(now)
	store := bookings.NewService(repo, (*metrics.Metrics)(nil), &testfixtures.Logger{},
		bookings.WithTimeProvider(clock), bookings.WithIDGenerator(testfixtures.NewIDGenerator("b").NewID))
	uc := NewUseCase(store, &staticRules{rules: rules}, seoul, &testfixtures.Logger{}).WithTimeProvider(clock)
	return uc, store
}

func request(date string, slot, seatNumber int) *Request {
	return &Request{
		Name:       "홍길동",
		StudentID:  "20231234",
		Phone:      "+82 10 1234 5678",
		Department: domain.AllowedDepartment,
		Date:       date,
		SlotHour:   slot,
		SeatNumber: seat(seatNumber),
	}
}

func TestUseCase_CreateThenOccupied(t *testing.T) {
	uc, store := newTestUseCase(&memoryRepository{}, domain.BlockingRules{})

	resp, err := uc.Execute(context.Background(), request("2025-03-05", 18, 7))
	require.NoError(t, err)

	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "01012345678", resp.Phone)
	assert.Equal(t, now, resp.CreatedAt)
	assert.Contains(t, store.OccupiedSeats("2025-03-05", domain.Slot18), 7)

	_, err = uc.Execute(context.Background(), request("2025-03-05", 18, 7))
	assert.ErrorIs(t, err, ErrSeatTaken)

	_, err = uc.Execute(context.Background(), request("2025-03-05", 19, 7))
	assert.NoError(t, err)
}

func TestUseCase_TodayIsNotPast(t *testing.T) {
	uc, _ := newTestUseCase(&memoryRepository{}, domain.BlockingRules{})

	_, err := uc.Execute(context.Background(), request("2025-03-04", 20, 1))
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), request("2025-03-03", 20, 1))
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestUseCase_BlockedWeekday(t *testing.T) {
	uc, store := newTestUseCase(&memoryRepository{}, domain.BlockingRules{Weekdays: []int{int(time.Wednesday)}})

	_, err := uc.Execute(context.Background(), request("2025-03-05", 18, 7))

	assert.ErrorIs(t, err, ErrBlockedWeekday)
	assert.Empty(t, store.List())
}

func TestUseCase_InvalidRequestShape(t *testing.T) {
	uc, _ := newTestUseCase(&memoryRepository{}, domain.BlockingRules{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, request("05/03/2025", 18, 7))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, request("2025-03-05", 17, 7))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_StorageErrors(t *testing.T) {
	t.Run("lost race", func(t *testing.T) {
		uc, _ := newTestUseCase(&memoryRepository{insertErr: bookingRepo.ErrSeatTaken}, domain.BlockingRules{})
		_, err := uc.Execute(context.Background(), request("2025-03-05", 18, 7))
		assert.ErrorIs(t, err, ErrSeatTaken)
	})

	t.Run("store failure", func(t *testing.T) {
		uc, _ := newTestUseCase(&memoryRepository{insertErr: errors.New("disk full")}, domain.BlockingRules{})
		_, err := uc.Execute(context.Background(), request("2025-03-05", 18, 7))
		assert.ErrorIs(t, err, ErrInternal)
	})
}
