package bulk_cancel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/integrations/webhook"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
)

type stubStore struct {
	bookings  map[string]*domain.Booking
	cancelled [][]string
	err       error
}

func (s *stubStore) GetByID(id string) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (s *stubStore) BulkCancel(_ context.Context, ids []string) (int, error) {
	s.cancelled = append(s.cancelled, ids)
	if s.err != nil {
		return 0, s.err
	}
	return len(ids), nil
}

type stubSettings struct {
	url string
}

func (s *stubSettings) Snapshot() *domain.AdminSettings {
	return &domain.AdminSettings{WebhookURL: s.url}
}

type stubNotifier struct {
	url      string
	payloads []webhook.Payload
	err      error
}

func (n *stubNotifier) Send(_ context.Context, url string, p webhook.Payload) error {
	n.url = url
	n.payloads = append(n.payloads, p)
	return n.err
}

var now = time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

func newStore() *stubStore {
	return &stubStore{bookings: map[string]*domain.Booking{
		"a": {ID: "a", Phone: "01012345678"},
		"b": {ID: "b", Phone: "01012345678"},
		"c": {ID: "c", Phone: "0161234567"},
	}}
}

func newTestUseCase(store *stubStore, notifier *stubNotifier) *UseCase {
	return NewUseCase(store, &stubSettings{url: "https://hooks.example.com"}, notifier, &testfixtures.Logger{}).
		WithTimeProvider(testfixtures.NewClock(now))
}

func TestUseCase_CancelAndNotify(t *testing.T) {
	store := newStore()
	notifier := &stubNotifier{}

	resp, err := newTestUseCase(store, notifier).Execute(context.Background(), &Request{
		IDs:     []string{"a", "b", "c", "a", "zzz"},
		Message: "금일 휴관",
		Notify:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Cancelled)
	assert.Equal(t, []string{"a", "b", "c"}, resp.CancelledIDs)
	assert.Equal(t, []string{"zzz"}, resp.MissingIDs)
	assert.Equal(t, []string{"010-1234-5678", "016-123-4567"}, resp.Phones)
	assert.True(t, resp.Notified)
	assert.Empty(t, resp.NotificationError)

	require.Len(t, store.cancelled, 1)
	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, "https://hooks.example.com", notifier.url)
	assert.Equal(t, "금일 휴관", notifier.payloads[0].Message)
	assert.Equal(t, now, notifier.payloads[0].Timestamp)
	assert.Equal(t, resp.Phones, notifier.payloads[0].Numbers)
}

func TestUseCase_NotificationFailureKeepsCancel(t *testing.T) {
	store := newStore()
	notifier := &stubNotifier{err: webhook.ErrUnexpectedStatus}

	resp, err := newTestUseCase(store, notifier).Execute(context.Background(), &Request{IDs: []string{"a"}, Notify: true})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Cancelled)
	assert.False(t, resp.Notified)
	assert.Contains(t, resp.NotificationError, "unexpected status")
}

func TestUseCase_WithoutNotify(t *testing.T) {
	notifier := &stubNotifier{}

	resp, err := newTestUseCase(newStore(), notifier).Execute(context.Background(), &Request{IDs: []string{"c"}})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Cancelled)
	assert.Empty(t, notifier.payloads)
}

func TestUseCase_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestUseCase(newStore(), &stubNotifier{}).Execute(ctx, &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = newTestUseCase(newStore(), &stubNotifier{}).Execute(ctx, &Request{IDs: []string{"x", "y"}})
	assert.ErrorIs(t, err, ErrNothingToCancel)

	store := newStore()
	store.err = errors.New("timeout")
	notifier := &stubNotifier{}
	_, err = newTestUseCase(store, notifier).Execute(ctx, &Request{IDs: []string{"a"}, Notify: true})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.payloads)
}
