package start_study_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom/models"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
)

var now = time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)

type stubService struct {
	got models.StartParams
	err error
}

func (s *stubService) Start(_ context.Context, p models.StartParams) (*domain.StudySession, error) {
	s.got = p
	if s.err != nil {
		return nil, s.err
	}
	return &domain.StudySession{
		ID:      "s-1",
		Room:    p.Room,
		Leader:  p.Leader,
		Others:  p.Others,
		StartAt: now,
		EndAt:   now.Add(time.Duration(p.DurationMinutes) * time.Minute),
	}, nil
}

func (s *stubService) Now() time.Time { return now }

const body = `{
	"room": "B",
	"leader": {"name": "김대표", "studentId": "20231234", "department": "경제학과", "phone": "01012345678"},
	"others": [
		{"name": "이하나", "studentId": "20231235", "department": "경제학과"},
		{"name": "박두리", "studentId": "20231236", "department": "경제학과"}
	],
	"durationMinutes": 60
}`

func post(svc *stubService) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, &testfixtures.Logger{}).
		Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/study-rooms/sessions", strings.NewReader(body)))
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestHandler_Started(t *testing.T) {
	svc := &stubService{}
	w := post(svc)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, domain.RoomB, svc.got.Room)
	assert.Equal(t, "01012345678", svc.got.Leader.Phone)
	assert.Len(t, svc.got.Others, 2)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s-1", resp.ID)
	assert.Equal(t, 3, resp.PartySize)
	assert.Equal(t, 60, resp.RemainingMinutes)
}

func TestHandler_RoomBusy(t *testing.T) {
	w := post(&stubService{err: studyroom.ErrRoomBusy})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "B은 사용 중입니다.", message(t, w))
}

func TestHandler_MemberErrorNumbering(t *testing.T) {
	w := post(&stubService{err: &studyroom.MemberError{Index: 2, Err: studyroom.ErrInvalidStudentID}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "3번 인원의 학번은 8~9자리 숫자입니다.", message(t, w))
}

func TestHandler_ValidationMessages(t *testing.T) {
	tests := []struct {
		err error
		msg string
	}{
		{studyroom.ErrStudyBlocked, msgStudyBlocked},
		{studyroom.ErrMissingName, msgLeaderName},
		{studyroom.ErrInvalidPhone, msgLeaderPhone},
		{studyroom.ErrPartyTooSmall, msgPartyTooSmall},
		{studyroom.ErrPartyTooLarge, msgPartyTooLarge},
		{studyroom.ErrInvalidDuration, msgInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := post(&stubService{err: tt.err})
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.msg, message(t, w))
		})
	}
}

func TestHandler_Internal(t *testing.T) {
	w := post(&stubService{err: studyroom.ErrInternal})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
