package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	settingsRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/settings"
)

// Service хранилище настроек администратора.
// Изменение блокировок сохраняется и сразу запускает очистку бронирований
type Service struct {
	repo         SettingsRepository
	purger       Purger
	timeProvider TimeProvider
	logger       Logger
	validate     *validator.Validate
	defaultPin   string
	hashCost     int

	writeMu sync.Mutex
	mu      sync.RWMutex
	current *domain.AdminSettings
}

// Option настройка сервиса
type Option func(*Service)

// WithTimeProvider подменяет источник времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(s *Service) { s.timeProvider = tp }
}

// WithHashCost задает стоимость bcrypt
func WithHashCost(cost int) Option {
	return func(s *Service) { s.hashCost = cost }
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, purger Purger, defaultPin string, logger Logger, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
		purger:       purger,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		validate:     validator.New(),
		defaultPin:   defaultPin,
		hashCost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load загружает настройки. При первом запуске сохраняет значения по умолчанию
func (s *Service) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	loaded, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, settingsRepo.ErrSettingsNotFound):
		s.logger.Info("Load: settings not found, creating defaults")
		loaded = &domain.AdminSettings{
			BlockedWeekdays:      []int{},
			BlockedSlots:         []int{},
			StudyBlockedWeekdays: []int{0, 6},
			StudyBlockedHours:    []int{},
		}
	case err != nil:
		s.logger.Error("Load: repository error: %v", err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	case loaded.PinHash != "":
		s.setCurrent(loaded)
		s.logger.Info("Load: settings loaded (blocked weekdays=%v, slots=%v)", loaded.BlockedWeekdays, loaded.BlockedSlots)
		return nil
	}

	hash, err := s.hashPin(s.defaultPin)
	if err != nil {
		return err
	}
	loaded.PinHash = hash
	loaded.UpdatedAt = s.timeProvider.Now()

	if err := s.repo.Upsert(ctx, loaded); err != nil {
		s.logger.Error("Load: failed to persist defaults: %v", err)
		return fmt.Errorf("%w: Load - persist defaults: %v", ErrInternal, err)
	}

	s.setCurrent(loaded)
	return nil
}

// Snapshot возвращает копию текущих настроек
func (s *Service) Snapshot() *domain.AdminSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return &domain.AdminSettings{}
	}
	return s.current.Clone()
}

// BookingRules правила блокировки лаборатории
func (s *Service) BookingRules() domain.BlockingRules {
	return s.Snapshot().BookingRules()
}

// StudyRules правила блокировки студий
func (s *Service) StudyRules() domain.StudyBlockingRules {
	return s.Snapshot().StudyRules()
}

// Authenticate сравнивает PIN без пробелов по краям с сохраненным хешем
func (s *Service) Authenticate(pin string) error {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return ErrNotLoaded
	}

	if err := bcrypt.CompareHashAndPassword([]byte(current.PinHash), []byte(strings.TrimSpace(pin))); err != nil {
		return ErrInvalidPin
	}
	return nil
}

// ChangePin меняет PIN: текущий должен совпасть, новый не короче 4 символов, подтверждение равно новому.
// Пробелы по краям отбрасываются так же, как в заголовке X-Admin-PIN
func (s *Service) ChangePin(ctx context.Context, currentPin, newPin, confirmPin string) error {
	currentPin = strings.TrimSpace(currentPin)
	newPin = strings.TrimSpace(newPin)
	confirmPin = strings.TrimSpace(confirmPin)

	if err := s.Authenticate(currentPin); err != nil {
		s.logger.Warn("ChangePin: current pin rejected")
		return err
	}
	if len(newPin) < domain.MinPinLength {
		return ErrPinTooShort
	}
	if newPin != confirmPin {
		return ErrPinMismatch
	}

	hash, err := s.hashPin(newPin)
	if err != nil {
		return err
	}

	_, err = s.update(ctx, "ChangePin", func(a *domain.AdminSettings) { a.PinHash = hash })
	return err
}

// UpdateNotice меняет текст объявления
func (s *Service) UpdateNotice(ctx context.Context, notice string) error {
	notice = strings.TrimSpace(notice)
	if err := s.validate.Var(notice, fmt.Sprintf("max=%d", domain.MaxNoticeLength)); err != nil {
		return fmt.Errorf("%w: notice is longer than %d characters", ErrInvalidInput, domain.MaxNoticeLength)
	}

	_, err := s.update(ctx, "UpdateNotice", func(a *domain.AdminSettings) { a.Notice = notice })
	return err
}

// UpdateWebhookURL меняет адрес webhook. Пустая строка отключает уведомления
func (s *Service) UpdateWebhookURL(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if err := s.validate.Var(url, "omitempty,http_url"); err != nil {
		return fmt.Errorf("%w: webhook url must be an http(s) URL", ErrInvalidInput)
	}

	_, err := s.update(ctx, "UpdateWebhookURL", func(a *domain.AdminSettings) { a.WebhookURL = url })
	return err
}

// ToggleWeekdayBlock переключает блокировку дня недели и очищает попавшие под нее бронирования
func (s *Service) ToggleWeekdayBlock(ctx context.Context, weekday int) (*domain.AdminSettings, int, error) {
	if err := s.validate.Var(weekday, "min=0,max=6"); err != nil {
		return nil, 0, fmt.Errorf("%w: weekday must be 0..6", ErrInvalidInput)
	}

	updated, err := s.update(ctx, "ToggleWeekdayBlock", func(a *domain.AdminSettings) {
		a.BlockedWeekdays = domain.ToggleInt(a.BlockedWeekdays, weekday)
	})
	if err != nil {
		return nil, 0, err
	}

	purged, err := s.purge(ctx, updated)
	return updated, purged, err
}

// ToggleSlotBlock переключает блокировку слота и очищает попавшие под нее бронирования
func (s *Service) ToggleSlotBlock(ctx context.Context, hour int) (*domain.AdminSettings, int, error) {
	if err := s.validate.Var(hour, "oneof=18 19 20"); err != nil {
		return nil, 0, fmt.Errorf("%w: slot must be one of 18, 19, 20", ErrInvalidInput)
	}

	updated, err := s.update(ctx, "ToggleSlotBlock", func(a *domain.AdminSettings) {
		a.BlockedSlots = domain.ToggleInt(a.BlockedSlots, hour)
	})
	if err != nil {
		return nil, 0, err
	}

	purged, err := s.purge(ctx, updated)
	return updated, purged, err
}

// SetStudyBlocking задает дни недели и часы, когда студии недоступны
func (s *Service) SetStudyBlocking(ctx context.Context, weekdays, hours []int) (*domain.AdminSettings, error) {
	if weekdays == nil {
		weekdays = []int{}
	}
	if hours == nil {
		hours = []int{}
	}
	if err := s.validate.Var(weekdays, "dive,min=0,max=6"); err != nil {
		return nil, fmt.Errorf("%w: weekdays must be 0..6", ErrInvalidInput)
	}
	if err := s.validate.Var(hours, "dive,min=0,max=23"); err != nil {
		return nil, fmt.Errorf("%w: hours must be 0..23", ErrInvalidInput)
	}

	return s.update(ctx, "SetStudyBlocking", func(a *domain.AdminSettings) {
		a.StudyBlockedWeekdays = domain.NormalizeIntSet(weekdays)
		a.StudyBlockedHours = domain.NormalizeIntSet(hours)
	})
}

// update применяет изменение к копии, сохраняет ее и только потом делает текущей
func (s *Service) update(ctx context.Context, op string, mutate func(*domain.AdminSettings)) (*domain.AdminSettings, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return nil, ErrNotLoaded
	}

	next := current.Clone()
	mutate(next)
	next.UpdatedAt = s.timeProvider.Now()

	if err := s.repo.Upsert(ctx, next); err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.setCurrent(next)
	s.logger.Info("%s: settings updated", op)
	return next.Clone(), nil
}

func (s *Service) purge(ctx context.Context, updated *domain.AdminSettings) (int, error) {
	purged, err := s.purger.PurgeBlocked(ctx, updated.BookingRules())
	if err != nil {
		s.logger.Error("Purge: failed after blocking change: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrPurgeFailed, err)
	}
	if purged > 0 {
		s.logger.Info("Purge: removed %d bookings after blocking change", purged)
	}
	return purged, nil
}

func (s *Service) setCurrent(a *domain.AdminSettings) {
	s.mu.Lock()
	s.current = a.Clone()
	s.mu.Unlock()
}

func (s *Service) hashPin(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("%w: hash pin: %v", ErrInternal, err)
	}
	return string(hash), nil
}
