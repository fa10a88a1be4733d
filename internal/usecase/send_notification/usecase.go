package send_notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/EconLab-ReservationService/internal/integrations/webhook"
	"github.com/m04kA/EconLab-ReservationService/pkg/contact"
)

// UseCase use case ручной отправки уведомления студентам
type UseCase struct {
	store        BookingStore
	settings     SettingsProvider
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store BookingStore, settings SettingsProvider, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		settings:     settings,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute собирает телефоны и отправляет одно уведомление на webhook
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if len(req.BookingIDs) == 0 && len(req.Phones) == 0 {
		return nil, fmt.Errorf("%w: booking ids or phones are required", ErrInvalidInput)
	}

	url := strings.TrimSpace(uc.settings.Snapshot().WebhookURL)
	if url == "" {
		uc.logger.Warn("SendNotification: webhook url is not configured")
		return nil, ErrWebhookNotConfigured
	}

	// 2. Собираем телефоны: сначала из бронирований, затем переданные явно
	resp := &Response{MissingIDs: []string{}}
	raw := make([]string, 0, len(req.BookingIDs)+len(req.Phones))
	for _, id := range req.BookingIDs {
		b, err := uc.store.GetByID(strings.TrimSpace(id))
		if err != nil {
			resp.MissingIDs = append(resp.MissingIDs, id)
			continue
		}
		raw = append(raw, b.Phone)
	}
	raw = append(raw, req.Phones...)

	resp.Numbers = contact.PhoneList(raw)
	if len(resp.Numbers) == 0 {
		return nil, ErrNoContacts
	}

	// 3. Отправляем
	err := uc.notifier.Send(ctx, url, webhook.Payload{
		Numbers:   resp.Numbers,
		Message:   req.Message,
		Timestamp: uc.timeProvider.Now(),
	})
	if err != nil {
		if errors.Is(err, webhook.ErrNotConfigured) {
			return nil, ErrWebhookNotConfigured
		}
		uc.logger.Error("SendNotification: delivery failed for %d numbers: %v", len(resp.Numbers), err)
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	uc.logger.Info("SendNotification: delivered to %d numbers (missing ids: %d)", len(resp.Numbers), len(resp.MissingIDs))
	return resp, nil
}
