package studyroom

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/EconLab-ReservationService/internal/availability"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	sessionRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/session"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom/models"
	"github.com/m04kA/EconLab-ReservationService/pkg/metrics"
	"github.com/m04kA/EconLab-ReservationService/pkg/phone"
)

// Service движок сессий студий: держит сессии в памяти,
// изменяет их только после успешной записи в репозиторий
type Service struct {
	repo         SessionRepository
	rules        RulesProvider
	location     *time.Location
	timeProvider TimeProvider
	newID        func() string
	metrics      Metrics
	logger       Logger

	writeMu  sync.Mutex
	mu       sync.RWMutex
	sessions []*domain.StudySession // новые первыми
}

// Option настройка сервиса
type Option func(*Service)

// WithTimeProvider подменяет источник времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Service) { s.timeProvider = tp }
}

// WithIDGenerator подменяет генератор идентификаторов
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService создает новый экземпляр сервиса студий.
// loc задает часовой пояс, в котором проверяются правила блокировки
func NewService(repo SessionRepository, rules RulesProvider, loc *time.Location, m Metrics, logger Logger, opts ...Option) *Service {
	if loc == nil {
		loc = time.Local
	}
	s := &Service{
		repo:         repo,
		rules:        rules,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		metrics:      m,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load загружает сессии из репозитория, заменяя текущие
func (s *Service) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	loaded, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("Load: repository error: %v", err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.sessions = loaded
	s.mu.Unlock()

	s.logger.Info("Load: loaded %d study sessions", len(loaded))
	return nil
}

// Start проверяет заявку и открывает сессию с текущего момента
func (s *Service) Start(ctx context.Context, p models.StartParams) (*domain.StudySession, error) {
	now := s.timeProvider.Now()

	if !p.Room.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoom, p.Room)
	}

	// 1. Проверяем блокировку текущего дня недели и часа
	if availability.IsStudyBlocked(now, s.location, s.rules.StudyRules()) {
		s.logger.Warn("Start: study rooms blocked at %s", now.In(s.location).Format(time.RFC3339))
		return nil, ErrStudyBlocked
	}

	// 2. Проверяем лидера
	if err := validateMember(p.Leader.StudyMember); err != nil {
		return nil, err
	}
	if !domain.LoosePhonePattern.MatchString(phone.Digits(p.Leader.Phone)) {
		return nil, ErrInvalidPhone
	}

	// 3. Проверяем остальных участников
	for i, member := range p.Others {
		if err := validateMember(member); err != nil {
			return nil, &MemberError{Index: i + 1, Err: err}
		}
	}

	// 4. Проверяем размер группы и длительность
	partySize := 1 + len(p.Others)
	if partySize < domain.MinPartySize {
		return nil, ErrPartyTooSmall
	}
	if partySize > domain.MaxPartySize {
		return nil, ErrPartyTooLarge
	}
	if p.DurationMinutes < domain.MinSessionMinutes || p.DurationMinutes > domain.MaxSessionMinutes {
		return nil, ErrInvalidDuration
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// 5. Проверяем, что комната свободна
	if _, busy := s.ActiveByRoom()[p.Room]; busy {
		s.logger.Warn("Start: room %s is busy", p.Room)
		return nil, ErrRoomBusy
	}

	session := s.newSession(p, now)

	// 6. Сохраняем сессию
	if err := s.repo.Insert(ctx, session); err != nil {
		if errors.Is(err, sessionRepo.ErrRoomBusy) {
			s.logger.Warn("Start: room %s claimed concurrently", p.Room)
			return nil, ErrRoomBusy
		}
		s.logger.Error("Start: repository error for room %s: %v", p.Room, err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.sessions = append([]*domain.StudySession{session}, s.sessions...)
	s.mu.Unlock()

	s.metrics.StudySessionEvent(metrics.SessionStarted, 1)
	s.logger.Info("Start: session id=%s room=%s party=%d until %s", session.ID, session.Room, partySize, session.EndAt.Format(time.RFC3339))

	return copySession(session), nil
}

// End завершает сессию досрочно. Используется и лидером, и администратором
func (s *Service) End(ctx context.Context, id string) error {
	if _, err := s.GetByID(id); err != nil {
		s.logger.Warn("End: session id=%s not found", id)
		return err
	}

	removed, err := s.remove(ctx, []string{id})
	if err != nil {
		return err
	}

	s.metrics.StudySessionEvent(metrics.SessionEnded, removed)
	return nil
}

// SweepExpired удаляет все сессии, время которых истекло
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()

	s.mu.RLock()
	var expired []string
	for _, session := range s.sessions {
		if !session.IsActive(now) {
			expired = append(expired, session.ID)
		}
	}
	s.mu.RUnlock()

	if len(expired) == 0 {
		return 0, nil
	}

	removed, err := s.remove(ctx, expired)
	if err != nil {
		return 0, err
	}

	s.metrics.StudySessionEvent(metrics.SessionExpired, removed)
	return removed, nil
}

// ActiveByRoom активные сессии по комнатам. Комнаты без сессии отсутствуют в результате
func (s *Service) ActiveByRoom() map[domain.Room]*domain.StudySession {
	now := s.timeProvider.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[domain.Room]*domain.StudySession)
	for _, session := range s.sessions {
		if !session.IsActive(now) {
			continue
		}
		if _, ok := result[session.Room]; !ok {
			result[session.Room] = copySession(session)
		}
	}
	return result
}

// List возвращает все сессии, новые первыми
func (s *Service) List() []*domain.StudySession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.StudySession, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, copySession(session))
	}
	return result
}

// GetByID получает сессию по ID
func (s *Service) GetByID(id string) (*domain.StudySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, session := range s.sessions {
		if session.ID == id {
			return copySession(session), nil
		}
	}
	return nil, ErrSessionNotFound
}

// Now текущее время сервиса
func (s *Service) Now() time.Time {
	return s.timeProvider.Now()
}

func (s *Service) newSession(p models.StartParams, now time.Time) *domain.StudySession {
	leaderPhone, err := phone.Normalize(p.Leader.Phone)
	if err != nil {
		leaderPhone = phone.Digits(p.Leader.Phone)
	}

	others := make([]domain.StudyMember, 0, len(p.Others))
	for _, m := range p.Others {
		others = append(others, trimMember(m))
	}

	return &domain.StudySession{
		ID:   s.newID(),
		Room: p.Room,
		Leader: domain.StudyLeader{
			StudyMember: trimMember(p.Leader.StudyMember),
			Phone:       leaderPhone,
		},
		Others:  others,
		StartAt: now,
		EndAt:   now.Add(time.Duration(p.DurationMinutes) * time.Minute),
	}
}

func (s *Service) remove(ctx context.Context, ids []string) (int, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.repo.DeleteByIDs(ctx, ids); err != nil {
		s.logger.Error("Remove: repository error for %d sessions: %v", len(ids), err)
		return 0, fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	kept := make([]*domain.StudySession, 0, len(s.sessions))
	for _, session := range s.sessions {
		if _, ok := drop[session.ID]; !ok {
			kept = append(kept, session)
		}
	}
	removed := len(s.sessions) - len(kept)
	s.sessions = kept
	s.mu.Unlock()

	s.logger.Info("Remove: removed %d study sessions", removed)
	return removed, nil
}

func validateMember(m domain.StudyMember) error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrMissingName
	}
	if !domain.StudentIDPattern.MatchString(strings.TrimSpace(m.StudentID)) {
		return ErrInvalidStudentID
	}
	if !domain.IsAllowedDepartment(strings.TrimSpace(m.Department)) {
		return ErrDisallowedDepartment
	}
	return nil
}

func trimMember(m domain.StudyMember) domain.StudyMember {
	return domain.StudyMember{
		Name:       strings.TrimSpace(m.Name),
		StudentID:  strings.TrimSpace(m.StudentID),
		Department: strings.TrimSpace(m.Department),
	}
}

func copySession(s *domain.StudySession) *domain.StudySession {
	c := *s
	c.Others = append([]domain.StudyMember(nil), s.Others...)
	return &c
}
