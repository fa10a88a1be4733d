package get_contacts

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
)

type stubBookings []*domain.Booking

func (s stubBookings) GetByID(id string) (*domain.Booking, error) {
	for _, b := range s {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("not found")
}

func (s stubBookings) ListByDate(date string) []*domain.Booking {
	var result []*domain.Booking
	for _, b := range s {
		if b.Date == date {
			result = append(result, b)
		}
	}
	return result
}

var bookings = stubBookings{
	{ID: "a", Date: "2025-03-04", Phone: "01012345678"},
	{ID: "b", Date: "2025-03-04", Phone: "01012345678"},
	{ID: "c", Date: "2025-03-05", Phone: "01099998888"},
}

func get(url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(bookings, &testfixtures.Logger{}).Handle(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestHandler_ByIDs(t *testing.T) {
	w := get("/api/v1/admin/contacts?ids=a,b,%20c,zzz&message=" + "%EA%B8%88%EC%9D%BC%20%ED%9C%B4%EA%B4%80")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ContactsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []string{"010-1234-5678", "010-9999-8888"}, resp.Phones)
	assert.Equal(t, "010-1234-5678, 010-9999-8888", resp.Clipboard)
	assert.Equal(t, []string{"zzz"}, resp.MissingIDs)
	require.Len(t, resp.SMS, 2)
	assert.Contains(t, resp.SMS[0].URI, "sms:010-1234-5678?body=")
	assert.NotContains(t, resp.SMS[0].URI, "+")
}

func TestHandler_ByDate(t *testing.T) {
	w := get("/api/v1/admin/contacts?date=2025-03-04")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ContactsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"010-1234-5678"}, resp.Phones)
	assert.Equal(t, "sms:010-1234-5678", resp.SMS[0].URI)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get("/api/v1/admin/contacts").Code)
	assert.Equal(t, http.StatusBadRequest, get("/api/v1/admin/contacts?date=bad").Code)
	assert.Equal(t, http.StatusNotFound, get("/api/v1/admin/contacts?ids=zzz").Code)
}
