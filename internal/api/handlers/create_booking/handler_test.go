package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
	createBooking "github.com/m04kA/EconLab-ReservationService/internal/usecase/create_booking"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

const body = `{"name":"홍길동","studentId":"20231234","phone":"010-1234-5678","department":"경제학과","date":"2025-03-04","slotHour":19,"seatNumber":12}`

func TestHandler_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID: "b-1", SeatNumber: 12, Date: "2025-03-04", SlotHour: 19,
		Name: "홍길동", StudentID: "20231234", Phone: "01012345678",
		CreatedAt: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
	}}
	w := httptest.NewRecorder()

	NewHandler(uc, &testfixtures.Logger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got.SeatNumber)
	assert.Equal(t, 12, *uc.got.SeatNumber)
	assert.Equal(t, 19, uc.got.SlotHour)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "010-1234-5678", resp.Phone)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{createBooking.ErrSeatTaken, http.StatusConflict, msgSeatTaken},
		{createBooking.ErrBlockedWeekday, http.StatusBadRequest, msgBlockedWeekday},
		{createBooking.ErrBlockedSlot, http.StatusBadRequest, msgBlockedSlot},
		{createBooking.ErrNonReservableSeat, http.StatusBadRequest, msgNonReservableSeat},
		{createBooking.ErrPastDate, http.StatusBadRequest, msgPastDate},
		{fmt.Errorf("%w: bad date", createBooking.ErrInvalidInput), http.StatusBadRequest, msgInvalidInput},
		{createBooking.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHandler(&stubUseCase{err: tt.err}, &testfixtures.Logger{}).
				Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))

			assert.Equal(t, tt.code, w.Code)
			if tt.msg != "" {
				var resp handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.msg, resp.Message)
			}
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}
	w := httptest.NewRecorder()

	NewHandler(uc, &testfixtures.Logger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.got)
}
