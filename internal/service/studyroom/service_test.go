package studyroom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	sessionRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/session"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom/models"
	"github.com/m04kA/EconLab-ReservationService/internal/testfixtures"
	"github.com/m04kA/EconLab-ReservationService/pkg/metrics"
)

type stubRepository struct {
	stored      []*domain.StudySession
	insertErr   error
	deleteErr   error
	deleteCalls [][]string
}

func (r *stubRepository) LoadAll(context.Context) ([]*domain.StudySession, error) {
	return append([]*domain.StudySession(nil), r.stored...), nil
}

func (r *stubRepository) Insert(_ context.Context, s *domain.StudySession) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.stored = append(r.stored, s)
	return nil
}

func (r *stubRepository) DeleteByIDs(_ context.Context, ids []string) (int, error) {
	r.deleteCalls = append(r.deleteCalls, ids)
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	return len(ids), nil
}

type staticRules struct {
	rules domain.StudyBlockingRules
}

func (s *staticRules) StudyRules() domain.StudyBlockingRules {
	return s.rules
}

// Wednesday 14:00 UTC
var start = time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)

func newTestService(repo *stubRepository, rules *staticRules) (*Service, *testfixtures.Clock) {
	clock := testfixtures.NewClock(start)
	ids := testfixtures.NewIDGenerator("s")
	svc := NewService(repo, rules, time.UTC, (*metrics.Metrics)(nil), &testfixtures.Logger{},
		WithTimeProvider(clock), WithIDGenerator(ids.NewID))
	return svc, clock
}

func member(name, studentID string) domain.StudyMember {
	return domain.StudyMember{Name: name, StudentID: studentID, Department: domain.AllowedDepartment}
}

func startParams(room domain.Room, partySize, minutes int) models.StartParams {
	others := make([]domain.StudyMember, 0, partySize-1)
	for i := 1; i < partySize; i++ {
		others = append(others, member("팀원", "2023000"+string(rune('0'+i))))
	}
	return models.StartParams{
		Room: room,
		Leader: domain.StudyLeader{
			StudyMember: member(" 김리더 ", "20231234"),
			Phone:       "010-1234-5678",
		},
		Others:          others,
		DurationMinutes: minutes,
	}
}

func TestService_StartAndActiveByRoom(t *testing.T) {
	svc, _ := newTestService(&stubRepository{}, &staticRules{})

	session, err := svc.Start(context.Background(), startParams(domain.RoomA, 4, 60))
	require.NoError(t, err)

	assert.Equal(t, "s-1", session.ID)
	assert.Equal(t, "김리더", session.Leader.Name)
	assert.Equal(t, "01012345678", session.Leader.Phone)
	assert.Equal(t, start.Add(time.Hour), session.EndAt)
	assert.Equal(t, 4, session.PartySize())

	active := svc.ActiveByRoom()
	require.Contains(t, active, domain.RoomA)
	assert.NotContains(t, active, domain.RoomB)
	assert.Equal(t, session.ID, active[domain.RoomA].ID)
}

func TestService_RoomExclusiveUntilExpiry(t *testing.T) {
	svc, clock := newTestService(&stubRepository{}, &staticRules{})
	ctx := context.Background()

	_, err := svc.Start(ctx, startParams(domain.RoomA, 4, 30))
	require.NoError(t, err)

	_, err = svc.Start(ctx, startParams(domain.RoomA, 3, 15))
	assert.ErrorIs(t, err, ErrRoomBusy)

	_, err = svc.Start(ctx, startParams(domain.RoomB, 3, 15))
	assert.NoError(t, err)

	clock.Advance(30 * time.Minute)
	assert.NotContains(t, svc.ActiveByRoom(), domain.RoomA)

	_, err = svc.Start(ctx, startParams(domain.RoomA, 3, 15))
	assert.NoError(t, err)
}

func TestService_EndFreesRoom(t *testing.T) {
	repo := &stubRepository{}
	svc, _ := newTestService(repo, &staticRules{})
	ctx := context.Background()

	session, err := svc.Start(ctx, startParams(domain.RoomC, 3, 120))
	require.NoError(t, err)

	require.NoError(t, svc.End(ctx, session.ID))
	assert.Equal(t, [][]string{{session.ID}}, repo.deleteCalls)
	assert.Empty(t, svc.ActiveByRoom())

	_, err = svc.Start(ctx, startParams(domain.RoomC, 3, 15))
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.End(ctx, "missing"), ErrSessionNotFound)
}

func TestService_SweepExpired(t *testing.T) {
	repo := &stubRepository{}
	svc, clock := newTestService(repo, &staticRules{})
	ctx := context.Background()

	short, err := svc.Start(ctx, startParams(domain.RoomA, 3, 15))
	require.NoError(t, err)
	long, err := svc.Start(ctx, startParams(domain.RoomB, 3, 90))
	require.NoError(t, err)

	removed, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Empty(t, repo.deleteCalls)

	clock.Advance(15 * time.Minute)
	removed, err = svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, [][]string{{short.ID}}, repo.deleteCalls)

	list := svc.List()
	require.Len(t, list, 1)
	assert.Equal(t, long.ID, list[0].ID)
}

func TestService_StartValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		rules  domain.StudyBlockingRules
		mutate func(p *models.StartParams)
		want   error
	}{
		{
			name:  "blocked weekday wins over everything",
			rules: domain.StudyBlockingRules{Weekdays: []int{int(time.Wednesday)}},
			mutate: func(p *models.StartParams) {
				p.Leader.Name = ""
				p.Others = nil
			},
			want: ErrStudyBlocked,
		},
		{
			name:  "blocked hour",
			rules: domain.StudyBlockingRules{Hours: []int{14}},
			want:  ErrStudyBlocked,
		},
		{
			name: "leader name before student id",
			mutate: func(p *models.StartParams) {
				p.Leader.Name = "  "
				p.Leader.StudentID = "1"
			},
			want: ErrMissingName,
		},
		{
			name:   "leader student id",
			mutate: func(p *models.StartParams) { p.Leader.StudentID = "2023-1234" },
			want:   ErrInvalidStudentID,
		},
		{
			name:   "leader department",
			mutate: func(p *models.StartParams) { p.Leader.Department = "경영학과" },
			want:   ErrDisallowedDepartment,
		},
		{
			name:   "leader phone",
			mutate: func(p *models.StartParams) { p.Leader.Phone = "010-12" },
			want:   ErrInvalidPhone,
		},
		{
			name: "member checked before party size",
			mutate: func(p *models.StartParams) {
				p.Others = []domain.StudyMember{{StudentID: "20230001", Department: domain.AllowedDepartment}}
			},
			want: ErrMissingName,
		},
		{
			name:   "party too small",
			mutate: func(p *models.StartParams) { p.Others = p.Others[:1] },
			want:   ErrPartyTooSmall,
		},
		{
			name: "party too large",
			mutate: func(p *models.StartParams) {
				for len(p.Others) < 6 {
					p.Others = append(p.Others, member("추가", "20239999"))
				}
			},
			want: ErrPartyTooLarge,
		},
		{
			name:   "duration too short",
			mutate: func(p *models.StartParams) { p.DurationMinutes = 10 },
			want:   ErrInvalidDuration,
		},
		{
			name:   "duration too long",
			mutate: func(p *models.StartParams) { p.DurationMinutes = 135 },
			want:   ErrInvalidDuration,
		},
		{
			name:   "unknown room",
			mutate: func(p *models.StartParams) { p.Room = "E" },
			want:   ErrInvalidRoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{}
			svc, _ := newTestService(repo, &staticRules{rules: tt.rules})

			p := startParams(domain.RoomD, 3, 30)
			if tt.mutate != nil {
				tt.mutate(&p)
			}

			_, err := svc.Start(context.Background(), p)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.stored)
		})
	}
}

func TestService_StartAcceptsAnyDurationInRange(t *testing.T) {
	for _, minutes := range []int{15, 20, 37, 119, 120} {
		svc, _ := newTestService(&stubRepository{}, &staticRules{})

		session, err := svc.Start(context.Background(), startParams(domain.RoomA, 3, minutes))
		require.NoError(t, err, "minutes=%d", minutes)
		assert.Equal(t, start.Add(time.Duration(minutes)*time.Minute), session.EndAt)
	}
}

func TestService_MemberErrorIndex(t *testing.T) {
	svc, _ := newTestService(&stubRepository{}, &staticRules{})

	p := startParams(domain.RoomA, 4, 30)
	p.Others[1].StudentID = "abc"

	_, err := svc.Start(context.Background(), p)

	var memberErr *MemberError
	require.ErrorAs(t, err, &memberErr)
	assert.Equal(t, 2, memberErr.Index)
	assert.ErrorIs(t, err, ErrInvalidStudentID)
}

func TestService_StartRepositoryErrors(t *testing.T) {
	t.Run("room claimed concurrently", func(t *testing.T) {
		repo := &stubRepository{insertErr: sessionRepo.ErrRoomBusy}
		svc, _ := newTestService(repo, &staticRules{})

		_, err := svc.Start(context.Background(), startParams(domain.RoomA, 3, 30))
		assert.ErrorIs(t, err, ErrRoomBusy)
		assert.Empty(t, svc.List())
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &stubRepository{insertErr: errors.New("connection reset")}
		svc, _ := newTestService(repo, &staticRules{})

		_, err := svc.Start(context.Background(), startParams(domain.RoomA, 3, 30))
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, svc.List())
	})
}

func TestService_SweepFailureKeepsSessions(t *testing.T) {
	repo := &stubRepository{}
	svc, clock := newTestService(repo, &staticRules{})
	ctx := context.Background()

	_, err := svc.Start(ctx, startParams(domain.RoomA, 3, 15))
	require.NoError(t, err)

	clock.Advance(time.Hour)
	repo.deleteErr = errors.New("timeout")

	_, err = svc.SweepExpired(ctx)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Len(t, svc.List(), 1)
}

func TestService_Load(t *testing.T) {
	repo := &stubRepository{stored: []*domain.StudySession{{
		ID:      "old",
		Room:    domain.RoomB,
		StartAt: start.Add(-time.Hour),
		EndAt:   start.Add(time.Hour),
	}}}
	svc, _ := newTestService(repo, &staticRules{})

	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.Start(context.Background(), startParams(domain.RoomB, 3, 15))
	assert.ErrorIs(t, err, ErrRoomBusy)
}
