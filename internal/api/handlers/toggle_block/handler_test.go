package toggle_block

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings"
	"github.com/m04kA/EconLab-ReservationService/internal/service/settings/models"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
)

type stubService struct {
	weekday, hour int
	purged        int
	err           error
}

func (s *stubService) ToggleWeekdayBlock(_ context.Context, weekday int) (*domain.AdminSettings, int, error) {
	s.weekday = weekday
	updated := &domain.AdminSettings{BlockedWeekdays: []int{weekday}}
	if s.err != nil && !errors.Is(s.err, settings.ErrPurgeFailed) {
		return nil, 0, s.err
	}
	return updated, s.purged, s.err
}

func (s *stubService) ToggleSlotBlock(_ context.Context, hour int) (*domain.AdminSettings, int, error) {
	s.hour = hour
	if s.err != nil {
		return nil, 0, s.err
	}
	return &domain.AdminSettings{BlockedSlots: []int{hour}}, s.purged, nil
}

func serve(h *Handler, pattern, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc(pattern, h.Handle).Methods(http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w
}

func TestWeekdayHandler(t *testing.T) {
	svc := &stubService{purged: 3}
	w := serve(NewWeekdayHandler(svc, &testfixtures.Logger{}), "/blocks/weekdays/{weekday}", "/blocks/weekdays/1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.weekday)

	var resp models.BlockingChangeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{1}, resp.BlockedWeekdays)
	assert.Equal(t, []int{}, resp.BlockedSlots)
	assert.Equal(t, 3, resp.Purged)
}

func TestSlotHandler_InvalidPath(t *testing.T) {
	w := serve(NewSlotHandler(&stubService{}, &testfixtures.Logger{}), "/blocks/slots/{hour}", "/blocks/slots/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlotHandler_InvalidValue(t *testing.T) {
	svc := &stubService{err: settings.ErrInvalidInput}
	w := serve(NewSlotHandler(svc, &testfixtures.Logger{}), "/blocks/slots/{hour}", "/blocks/slots/17")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 17, svc.hour)
}

func TestWeekdayHandler_PurgeFailedStillReturnsRules(t *testing.T) {
	svc := &stubService{err: settings.ErrPurgeFailed}
	w := serve(NewWeekdayHandler(svc, &testfixtures.Logger{}), "/blocks/weekdays/{weekday}", "/blocks/weekdays/6")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BlockingChangeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.PurgeFailed)
	assert.Equal(t, []int{6}, resp.BlockedWeekdays)
}
