package models

import (
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// PublicSettingsResponse настройки, видимые всем. PIN и webhook не раскрываются
type PublicSettingsResponse struct {
	Notice               string `json:"notice"`
	BlockedWeekdays      []int  `json:"blockedWeekdays"`
	BlockedSlots         []int  `json:"blockedSlots"`
	StudyBlockedWeekdays []int  `json:"studyBlockedWeekdays"`
	StudyBlockedHours    []int  `json:"studyBlockedHours"`
	SlotHours            []int  `json:"slotHours"`
	UpdatedAt            string `json:"updatedAt"`
}

// AdminSettingsResponse настройки для администратора
type AdminSettingsResponse struct {
	PublicSettingsResponse
	WebhookURL string `json:"webhookUrl"`
}

// BlockingChangeResponse результат изменения правил блокировки
type BlockingChangeResponse struct {
	BlockedWeekdays []int `json:"blockedWeekdays"`
	BlockedSlots    []int `json:"blockedSlots"`
	Purged          int   `json:"purged"`
	PurgeFailed     bool  `json:"purgeFailed,omitempty"`
}

// FromDomainPublic конвертирует настройки в публичный ответ
func FromDomainPublic(s *domain.AdminSettings) *PublicSettingsResponse {
	slots := make([]int, 0, len(domain.SlotHours))
	for _, h := range domain.SlotHours {
		slots = append(slots, int(h))
	}

	return &PublicSettingsResponse{
		Notice:               s.Notice,
		BlockedWeekdays:      nonNil(s.BlockedWeekdays),
		BlockedSlots:         nonNil(s.BlockedSlots),
		StudyBlockedWeekdays: nonNil(s.StudyBlockedWeekdays),
		StudyBlockedHours:    nonNil(s.StudyBlockedHours),
		SlotHours:            slots,
		UpdatedAt:            s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAdmin конвертирует настройки в ответ администратору
func FromDomainAdmin(s *domain.AdminSettings) *AdminSettingsResponse {
	return &AdminSettingsResponse{
		PublicSettingsResponse: *FromDomainPublic(s),
		WebhookURL:             s.WebhookURL,
	}
}

// FromDomainBlocking конвертирует правила лаборатории после переключения блокировки
func FromDomainBlocking(s *domain.AdminSettings, purged int) *BlockingChangeResponse {
	return &BlockingChangeResponse{
		BlockedWeekdays: nonNil(s.BlockedWeekdays),
		BlockedSlots:    nonNil(s.BlockedSlots),
		Purged:          purged,
	}
}

func nonNil(set []int) []int {
	if set == nil {
		return []int{}
	}
	return set
}
