package settings

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/infra/storage/schema"
)

// record формат хранения настроек. Множества хранятся JSON массивами
type record struct {
	PinHash              string `json:"pinHash"`
	Notice               string `json:"notice"`
	WebhookURL           string `json:"webhookUrl"`
	BlockedWeekdays      []int  `json:"blockedWeekdays"`
	BlockedSlots         []int  `json:"blockedSlots"`
	StudyBlockedWeekdays []int  `json:"studyBlockedWeekdays"`
	StudyBlockedHours    []int  `json:"studyBlockedHours"`
	UpdatedAt            int64  `json:"updatedAt"`
}

func fromDomain(s *domain.AdminSettings) record {
	return record{
		PinHash:              s.PinHash,
		Notice:               s.Notice,
		WebhookURL:           s.WebhookURL,
		BlockedWeekdays:      nonNil(s.BlockedWeekdays),
		BlockedSlots:         nonNil(s.BlockedSlots),
		StudyBlockedWeekdays: nonNil(s.StudyBlockedWeekdays),
		StudyBlockedHours:    nonNil(s.StudyBlockedHours),
		UpdatedAt:            schema.ToMillis(s.UpdatedAt),
	}
}

func (r record) toDomain() *domain.AdminSettings {
	return &domain.AdminSettings{
		PinHash:              r.PinHash,
		Notice:               r.Notice,
		WebhookURL:           r.WebhookURL,
		BlockedWeekdays:      nonNil(r.BlockedWeekdays),
		BlockedSlots:         nonNil(r.BlockedSlots),
		StudyBlockedWeekdays: nonNil(r.StudyBlockedWeekdays),
		StudyBlockedHours:    nonNil(r.StudyBlockedHours),
		UpdatedAt:            schema.FromMillis(r.UpdatedAt),
	}
}

func nonNil(set []int) []int {
	if set == nil {
		return []int{}
	}
	return set
}

func encodeSet(set []int) (string, error) {
	raw, err := json.Marshal(nonNil(set))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return string(raw), nil
}

func decodeSet(raw string) ([]int, error) {
	set := []int{}
	if raw == "" {
		return set, nil
	}
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return set, nil
}
