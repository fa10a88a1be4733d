package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/EconLab-ReservationService/internal/availability"
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/EconLab-ReservationService/internal/service/bookings/models"
	"github.com/m04kA/EconLab-ReservationService/pkg/metrics"
	"github.com/m04kA/EconLab-ReservationService/pkg/phone"
)

// Service хранилище бронирований: держит актуальную коллекцию в памяти
// и меняет ее только после успешной записи в репозиторий
type Service struct {
	repo         BookingRepository
	timeProvider TimeProvider
	newID        func() string
	metrics      Metrics
	logger       Logger

	// writeMu сериализует изменения, mu защищает bookings
	writeMu  sync.Mutex
	mu       sync.RWMutex
	bookings []*domain.Booking // новые первыми
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

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo BookingRepository, m Metrics, logger Logger, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
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

// Load загружает коллекцию из репозитория, заменяя текущую
func (s *Service) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	loaded, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("Load: repository error: %v", err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.bookings = loaded
	s.mu.Unlock()

	s.logger.Info("Load: loaded %d bookings", len(loaded))
	return nil
}

// List возвращает все бронирования, новые первыми
func (s *Service) List() []*domain.Booking {
	return s.filter(func(*domain.Booking) bool { return true })
}

// ListByDate возвращает бронирования на дату, новые первыми
func (s *Service) ListByDate(date string) []*domain.Booking {
	return s.filter(func(b *domain.Booking) bool { return b.Date == date })
}

// FindByStudent возвращает бронирования студента
func (s *Service) FindByStudent(studentID string) []*domain.Booking {
	studentID = strings.TrimSpace(studentID)
	return s.filter(func(b *domain.Booking) bool { return b.StudentID == studentID })
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(id string) (*domain.Booking, error) {
	found := s.filter(func(b *domain.Booking) bool { return b.ID == id })
	if len(found) == 0 {
		return nil, ErrBookingNotFound
	}
	return found[0], nil
}

// OccupiedSeats занятые места на (date, slot)
func (s *Service) OccupiedSeats(date string, slot domain.SlotHour) map[int]*domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return availability.OccupiedSeats(s.bookings, date, slot)
}

// Create собирает каноническое бронирование: новый id, время создания, нормализованный телефон.
// Вызывающий обязан провалидировать поля до вызова, Create их не перепроверяет
func (s *Service) Create(p models.CreateParams) *domain.Booking {
	normalized, err := phone.Normalize(p.Phone)
	if err != nil {
		normalized = phone.Digits(p.Phone)
	}

	return &domain.Booking{
		ID:         s.newID(),
		SeatNumber: p.SeatNumber,
		Date:       p.Date,
		SlotHour:   p.SlotHour,
		Name:       strings.TrimSpace(p.Name),
		StudentID:  strings.TrimSpace(p.StudentID),
		Phone:      normalized,
		Department: strings.TrimSpace(p.Department),
		CreatedAt:  s.timeProvider.Now(),
	}
}

// Add сохраняет бронирование и добавляет его в начало коллекции
func (s *Service) Add(ctx context.Context, booking *domain.Booking) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.Insert(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSeatTaken) {
			s.logger.Warn("Add: seat %d already taken on %s %s", booking.SeatNumber, booking.Date, booking.SlotHour.Label())
			return ErrSeatTaken
		}
		s.logger.Error("Add: repository error for booking id=%s: %v", booking.ID, err)
		return fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.bookings = append([]*domain.Booking{booking}, s.bookings...)
	s.mu.Unlock()

	s.metrics.BookingCreated()
	s.logger.Info("Add: booking id=%s seat=%d date=%s slot=%d saved", booking.ID, booking.SeatNumber, booking.Date, booking.SlotHour)
	return nil
}

// Cancel удаляет бронирование по ID
func (s *Service) Cancel(ctx context.Context, id string) error {
	return s.removeOne(ctx, id, metrics.ReasonUser)
}

// ForceCancel удаляет бронирование по решению администратора. Эффект тот же, что у Cancel
func (s *Service) ForceCancel(ctx context.Context, id string) error {
	return s.removeOne(ctx, id, metrics.ReasonAdmin)
}

// CancelOwn отменяет бронирование, только если оно принадлежит студенту
func (s *Service) CancelOwn(ctx context.Context, id, studentID string) error {
	booking, err := s.GetByID(id)
	if err != nil {
		s.logger.Warn("CancelOwn: booking id=%s not found", id)
		return err
	}

	if booking.StudentID != strings.TrimSpace(studentID) {
		s.logger.Warn("CancelOwn: student id mismatch for booking id=%s", id)
		return ErrAccessDenied
	}

	return s.Cancel(ctx, id)
}

// BulkCancel удаляет набор бронирований одной операцией хранилища.
// При ошибке хранилища коллекция в памяти не меняется
func (s *Service) BulkCancel(ctx context.Context, ids []string) (int, error) {
	return s.remove(ctx, dedupe(ids), metrics.ReasonBulk)
}

// PurgeBlocked удаляет бронирования, попавшие под правила блокировки, одной операцией
func (s *Service) PurgeBlocked(ctx context.Context, rules domain.BlockingRules) (int, error) {
	s.mu.RLock()
	blocked := availability.BlockedBookings(s.bookings, rules)
	s.mu.RUnlock()

	if len(blocked) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(blocked))
	for _, b := range blocked {
		ids = append(ids, b.ID)
	}

	s.logger.Info("PurgeBlocked: removing %d bookings (weekdays=%v, slots=%v)", len(ids), rules.Weekdays, rules.Slots)
	return s.remove(ctx, ids, metrics.ReasonPurge)
}

func (s *Service) removeOne(ctx context.Context, id, reason string) error {
	if _, err := s.GetByID(id); err != nil {
		s.logger.Warn("Cancel: booking id=%s not found", id)
		return err
	}

	_, err := s.remove(ctx, []string{id}, reason)
	return err
}

func (s *Service) remove(ctx context.Context, ids []string, reason string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if _, err := s.repo.DeleteByIDs(ctx, ids); err != nil {
		s.logger.Error("Remove: repository error for %d bookings (%s): %v", len(ids), reason, err)
		return 0, fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	kept := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if _, ok := drop[b.ID]; !ok {
			kept = append(kept, b)
		}
	}
	removed := len(s.bookings) - len(kept)
	s.bookings = kept
	s.mu.Unlock()

	s.metrics.BookingsRemoved(reason, removed)
	s.logger.Info("Remove: removed %d bookings (%s)", removed, reason)
	return removed, nil
}

// filter возвращает копии подходящих бронирований в порядке коллекции
func (s *Service) filter(match func(*domain.Booking) bool) []*domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if match(b) {
			c := *b
			result = append(result, &c)
		}
	}
	return result
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
