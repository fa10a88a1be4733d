package bulk_cancel

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/EconLab-ReservationService/internal/integrations/webhook"
	"github.com/m04kA/EconLab-ReservationService/pkg/contact"
)

// UseCase use case массовой отмены бронирований с уведомлением
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

// Execute отменяет бронирования одной операцией хранилища и при необходимости уведомляет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || len(req.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}

	uc.logger.Info("BulkCancel: %d ids requested, notify=%t", len(req.IDs), req.Notify)

	// 2. Находим бронирования и телефоны до удаления
	resp := &Response{}
	seen := make(map[string]struct{}, len(req.IDs))
	var phones []string
	for _, id := range req.IDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		booking, err := uc.store.GetByID(id)
		if err != nil {
			resp.MissingIDs = append(resp.MissingIDs, id)
			continue
		}
		resp.CancelledIDs = append(resp.CancelledIDs, booking.ID)
		phones = append(phones, booking.Phone)
	}

	if len(resp.CancelledIDs) == 0 {
		uc.logger.Warn("BulkCancel: none of %d ids found", len(req.IDs))
		return nil, ErrNothingToCancel
	}

	// 3. Удаляем одной операцией
	removed, err := uc.store.BulkCancel(ctx, resp.CancelledIDs)
	if err != nil {
		uc.logger.Error("BulkCancel: failed to cancel %d bookings: %v", len(resp.CancelledIDs), err)
		return nil, fmt.Errorf("%w: failed to cancel bookings: %v", ErrInternal, err)
	}
	resp.Cancelled = removed
	resp.Phones = contact.PhoneList(phones)

	// 4. Уведомление. Ошибка возвращается в ответе, отмена остается в силе
	if req.Notify {
		err := uc.notifier.Send(ctx, uc.settings.Snapshot().WebhookURL, webhook.Payload{
			Numbers:      resp.Phones,
			Message:      req.Message,
			CancelledIDs: resp.CancelledIDs,
			Timestamp:    uc.timeProvider.Now(),
		})
		if err != nil {
			uc.logger.Warn("BulkCancel: notification failed: %v", err)
			resp.NotificationError = err.Error()
		} else {
			resp.Notified = true
		}
	}

	uc.logger.Info("BulkCancel: cancelled %d bookings", removed)
	return resp, nil
}
