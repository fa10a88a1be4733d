package get_settings

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type stubService struct{}

func (stubService) Snapshot() *domain.AdminSettings {
	return &domain.AdminSettings{
		PinHash:         "$2a$04$secret",
		Notice:          "시험 기간 연장 운영",
		WebhookURL:      "https://hooks.example.com/lab",
		BlockedWeekdays: []int{0},
		UpdatedAt:       time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
	}
}

func get(h *Handler) string {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
	if w.Code != http.StatusOK {
		return ""
	}
	return w.Body.String()
}

func TestHandler_PublicHidesSecrets(t *testing.T) {
	body := get(NewHandler(stubService{}))
	require.NotEmpty(t, body)

	assert.Contains(t, body, "시험 기간 연장 운영")
	assert.Contains(t, body, `"blockedWeekdays":[0]`)
	assert.Contains(t, body, `"blockedSlots":[]`)
	assert.NotContains(t, body, "hooks.example.com")
	assert.NotContains(t, body, "secret")
}

func TestHandler_AdminIncludesWebhook(t *testing.T) {
	body := get(NewAdminHandler(stubService{}))

	assert.Contains(t, body, `"webhookUrl":"https://hooks.example.com/lab"`)
	assert.NotContains(t, body, "secret")
}
