package change_pin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EconLab-ReservationService/internal/service/settings"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
)

type stubService struct {
	err error
}

func (s *stubService) ChangePin(context.Context, string, string, string) error {
	return s.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "changed", body: `{"currentPin":"0423","newPin":"2468","confirmPin":"2468"}`, want: http.StatusNoContent},
		{name: "malformed body", body: `{"currentPin":`, want: http.StatusBadRequest},
		{name: "wrong current pin", body: `{"currentPin":"9999","newPin":"2468","confirmPin":"2468"}`, err: settings.ErrInvalidPin, want: http.StatusUnauthorized},
		{name: "too short", body: `{"currentPin":"0423","newPin":"1","confirmPin":"1"}`, err: settings.ErrPinTooShort, want: http.StatusBadRequest},
		{name: "mismatch", body: `{"currentPin":"0423","newPin":"2468","confirmPin":"2469"}`, err: settings.ErrPinMismatch, want: http.StatusBadRequest},
		{name: "storage failure", body: `{"currentPin":"0423","newPin":"2468","confirmPin":"2468"}`, err: settings.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, &testfixtures.Logger{})
			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodPost, "/admin/pin", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
