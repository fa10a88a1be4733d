package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := New("test")

	m.BookingCreated()
	m.BookingsRemoved(ReasonPurge, 3)
	m.BookingsRemoved(ReasonUser, 1)
	m.BookingsRemoved(ReasonBulk, 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.BookingsPurged))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.BookingsCancelled.WithLabelValues(ReasonPurge)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsCancelled.WithLabelValues(ReasonUser)))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.BookingsRemoved(ReasonAdmin, 2)
		m.StudySessionEvent(SessionStarted, 1)
		m.WebhookOutcome("ok")
	})
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
