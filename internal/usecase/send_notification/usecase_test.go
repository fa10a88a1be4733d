package send_notification

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

type stubStore map[string]*domain.Booking

func (s stubStore) GetByID(id string) (*domain.Booking, error) {
	b, ok := s[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
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

func newTestUseCase(url string, notifier *stubNotifier) *UseCase {
	store := stubStore{
		"a": {ID: "a", Phone: "01012345678"},
		"b": {ID: "b", Phone: "01012345678"},
	}
	return NewUseCase(store, &stubSettings{url: url}, notifier, &testfixtures.Logger{}).
		WithTimeProvider(testfixtures.NewClock(now))
}

func TestUseCase_Sends(t *testing.T) {
	notifier := &stubNotifier{}

	resp, err := newTestUseCase("https://hooks.example.com", notifier).Execute(context.Background(), &Request{
		BookingIDs: []string{"a", "b", "zzz"},
		Phones:     []string{"010 9999 8888"},
		Message:    "내일 휴관합니다",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"010-1234-5678", "010-9999-8888"}, resp.Numbers)
	assert.Equal(t, []string{"zzz"}, resp.MissingIDs)

	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, "https://hooks.example.com", notifier.url)
	assert.Equal(t, "내일 휴관합니다", notifier.payloads[0].Message)
	assert.Equal(t, now, notifier.payloads[0].Timestamp)
	assert.Empty(t, notifier.payloads[0].CancelledIDs)
}

func TestUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		req     *Request
		sendErr error
		wantErr error
	}{
		{
			name:    "empty request",
			url:     "https://hooks.example.com",
			req:     &Request{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "webhook not configured",
			url:     "  ",
			req:     &Request{BookingIDs: []string{"a"}},
			wantErr: ErrWebhookNotConfigured,
		},
		{
			name:    "no contacts",
			url:     "https://hooks.example.com",
			req:     &Request{BookingIDs: []string{"zzz"}},
			wantErr: ErrNoContacts,
		},
		{
			name:    "delivery failed",
			url:     "https://hooks.example.com",
			req:     &Request{BookingIDs: []string{"a"}},
			sendErr: webhook.ErrUnexpectedStatus,
			wantErr: ErrDeliveryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestUseCase(tt.url, &stubNotifier{err: tt.sendErr}).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
