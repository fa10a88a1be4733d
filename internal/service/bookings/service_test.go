package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/EconLab-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
	"github.com/m04kA/EconLab-ReservationService/pkg/metrics"
)

type stubRepository struct {
	stored      []*domain.Booking
	insertErr   error
	deleteErr   error
	deleteCalls [][]string
}

func (r *stubRepository) LoadAll(context.Context) ([]*domain.Booking, error) {
	return append([]*domain.Booking(nil), r.stored...), nil
}

func (r *stubRepository) Insert(_ context.Context, b *domain.Booking) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.stored = append(r.stored, b)
	return nil
}

func (r *stubRepository) DeleteByIDs(_ context.Context, ids []string) (int, error) {
	r.deleteCalls = append(r.deleteCalls, ids)
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	return len(ids), nil
}

var start = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

func newTestService(repo *stubRepository) (*Service, *testfixtures.Clock) {
	clock := testfixtures.NewClock(start)
	ids := testfixtures.NewIDGenerator("b")
	svc := NewService(repo, (*metrics.Metrics)(nil), &testfixtures.Logger{},
		WithTimeProvider(clock), WithIDGenerator(ids.NewID))
	return svc, clock
}

func params(date string, slot domain.SlotHour, seat int) models.CreateParams {
	return models.CreateParams{
		Name:       " 홍길동 ",
		StudentID:  "20231234",
		Phone:      "+82 10-1234-5678",
		Department: domain.AllowedDepartment,
		Date:       date,
		SlotHour:   slot,
		SeatNumber: seat,
	}
}

func addBooking(t *testing.T, svc *Service, date string, slot domain.SlotHour, seat int) *domain.Booking {
	t.Helper()
	b := svc.Create(params(date, slot, seat))
	require.NoError(t, svc.Add(context.Background(), b))
	return b
}

func TestService_CreateDerivesCanonicalBooking(t *testing.T) {
	svc, _ := newTestService(&stubRepository{})

	b := svc.Create(params("2025-03-04", domain.Slot19, 12))

	assert.Equal(t, "b-1", b.ID)
	assert.Equal(t, "홍길동", b.Name)
	assert.Equal(t, "01012345678", b.Phone)
	assert.Equal(t, start, b.CreatedAt)
	assert.Equal(t, 12, b.SeatNumber)
}

func TestService_AddThenOccupiedThenCancel(t *testing.T) {
	repo := &stubRepository{}
	svc, _ := newTestService(repo)
	ctx := context.Background()

	b := addBooking(t, svc, "2025-03-04", domain.Slot18, 10)

	occupied := svc.OccupiedSeats("2025-03-04", domain.Slot18)
	require.Contains(t, occupied, 10)
	assert.Equal(t, b.ID, occupied[10].ID)

	require.NoError(t, svc.Cancel(ctx, b.ID))
	assert.NotContains(t, svc.OccupiedSeats("2025-03-04", domain.Slot18), 10)
	assert.Equal(t, [][]string{{b.ID}}, repo.deleteCalls)
}

func TestService_ListNewestFirst(t *testing.T) {
	svc, clock := newTestService(&stubRepository{})

	first := addBooking(t, svc, "2025-03-04", domain.Slot18, 1)
	clock.Advance(time.Minute)
	second := addBooking(t, svc, "2025-03-05", domain.Slot18, 1)

	list := svc.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	byDate := svc.ListByDate("2025-03-04")
	require.Len(t, byDate, 1)
	assert.Equal(t, first.ID, byDate[0].ID)
}

func TestService_AddPersistenceFailureLeavesState(t *testing.T) {
	repo := &stubRepository{insertErr: errors.New("network down")}
	svc, _ := newTestService(repo)

	err := svc.Add(context.Background(), svc.Create(params("2025-03-04", domain.Slot18, 1)))

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, svc.List())
}

func TestService_AddSeatTakenByConcurrentWriter(t *testing.T) {
	repo := &stubRepository{insertErr: bookingRepo.ErrSeatTaken}
	svc, _ := newTestService(repo)

	err := svc.Add(context.Background(), svc.Create(params("2025-03-04", domain.Slot18, 1)))

	assert.ErrorIs(t, err, ErrSeatTaken)
	assert.Empty(t, svc.List())
}

func TestService_CancelUnknown(t *testing.T) {
	repo := &stubRepository{}
	svc, _ := newTestService(repo)

	assert.ErrorIs(t, svc.ForceCancel(context.Background(), "missing"), ErrBookingNotFound)
	assert.Empty(t, repo.deleteCalls)
}

func TestService_CancelOwn(t *testing.T) {
	svc, _ := newTestService(&stubRepository{})
	ctx := context.Background()
	b := addBooking(t, svc, "2025-03-04", domain.Slot18, 3)

	assert.ErrorIs(t, svc.CancelOwn(ctx, b.ID, "20239999"), ErrAccessDenied)
	assert.Len(t, svc.List(), 1)

	require.NoError(t, svc.CancelOwn(ctx, b.ID, " 20231234 "))
	assert.Empty(t, svc.List())
}

func TestService_BulkCancelSingleMutation(t *testing.T) {
	repo := &stubRepository{}
	svc, _ := newTestService(repo)

	a := addBooking(t, svc, "2025-03-04", domain.Slot18, 1)
	b := addBooking(t, svc, "2025-03-04", domain.Slot18, 2)
	c := addBooking(t, svc, "2025-03-04", domain.Slot18, 3)

	removed, err := svc.BulkCancel(context.Background(), []string{a.ID, c.ID, a.ID})
	require.NoError(t, err)

	assert.Equal(t, 2, removed)
	require.Len(t, repo.deleteCalls, 1)
	assert.ElementsMatch(t, []string{a.ID, c.ID}, repo.deleteCalls[0])

	remaining := svc.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, b.ID, remaining[0].ID)
}

func TestService_BulkCancelAllOrNothing(t *testing.T) {
	repo := &stubRepository{}
	svc, _ := newTestService(repo)

	a := addBooking(t, svc, "2025-03-04", domain.Slot18, 1)
	b := addBooking(t, svc, "2025-03-04", domain.Slot18, 2)
	repo.deleteErr = errors.New("timeout")

	_, err := svc.BulkCancel(context.Background(), []string{a.ID, b.ID})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Len(t, svc.List(), 2)
}

func TestService_PurgeBlocked(t *testing.T) {
	repo := &stubRepository{}
	svc, _ := newTestService(repo)

	addBooking(t, svc, "2025-03-03", domain.Slot18, 1) // Monday
	addBooking(t, svc, "2025-03-10", domain.Slot19, 2) // Monday
	keep := addBooking(t, svc, "2025-03-04", domain.Slot19, 3)
	addBooking(t, svc, "2025-03-05", domain.Slot20, 4)

	removed, err := svc.PurgeBlocked(context.Background(), domain.BlockingRules{
		Weekdays: []int{int(time.Monday)},
		Slots:    []int{20},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, removed)
	assert.Len(t, repo.deleteCalls, 1)

	remaining := svc.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
	for _, b := range remaining {
		wd, err := b.Weekday()
		require.NoError(t, err)
		assert.NotEqual(t, time.Monday, wd)
	}
}

func TestService_PurgeNothingSkipsRepository(t *testing.T) {
	repo := &stubRepository{}
	svc, _ := newTestService(repo)
	addBooking(t, svc, "2025-03-04", domain.Slot18, 1)

	removed, err := svc.PurgeBlocked(context.Background(), domain.BlockingRules{Weekdays: []int{0}})

	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Empty(t, repo.deleteCalls)
}

func TestService_Load(t *testing.T) {
	repo := &stubRepository{stored: []*domain.Booking{
		{ID: "x", Date: "2025-03-04", SlotHour: domain.Slot20, SeatNumber: 9, StudentID: "20231234"},
	}}
	svc, _ := newTestService(repo)

	require.NoError(t, svc.Load(context.Background()))

	assert.Contains(t, svc.OccupiedSeats("2025-03-04", domain.Slot20), 9)
	assert.Len(t, svc.FindByStudent("20231234"), 1)

	got, err := svc.GetByID("x")
	require.NoError(t, err)
	got.SeatNumber = 1
	assert.Contains(t, svc.OccupiedSeats("2025-03-04", domain.Slot20), 9, "returned bookings are copies")
}
