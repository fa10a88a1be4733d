package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/infra/storage/schema"
	"github.com/m04kA/EconLab-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/EconLab-ReservationService/pkg/sqlbuilder"
)

// Repository табличное хранилище настроек администратора (одна строка)
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor, dialect string) *Repository {
	return &Repository{
		db:      db,
		builder: sqlbuilder.New(dialect),
	}
}

// Load получает настройки
func (r *Repository) Load(ctx context.Context) (*domain.AdminSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(
		"pin_hash",
		"notice",
		"webhook_url",
		"blocked_weekdays",
		"blocked_slots",
		"study_blocked_weekdays",
		"study_blocked_hours",
		"updated_at",
	).
		From(schema.TableAdminSettings).
		Where(squirrel.Eq{"id": domain.SettingsID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s                                       domain.AdminSettings
		weekdays, slots, studyWeekdays, studyHr string
		updatedAt                               int64
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.PinHash,
		&s.Notice,
		&s.WebhookURL,
		&weekdays,
		&slots,
		&studyWeekdays,
		&studyHr,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan settings: %v", ErrScanRow, err)
	}

	if s.BlockedWeekdays, err = decodeSet(weekdays); err != nil {
		return nil, err
	}
	if s.BlockedSlots, err = decodeSet(slots); err != nil {
		return nil, err
	}
	if s.StudyBlockedWeekdays, err = decodeSet(studyWeekdays); err != nil {
		return nil, err
	}
	if s.StudyBlockedHours, err = decodeSet(studyHr); err != nil {
		return nil, err
	}
	s.UpdatedAt = schema.FromMillis(updatedAt)

	return &s, nil
}

// Upsert сохраняет настройки целиком
func (r *Repository) Upsert(ctx context.Context, s *domain.AdminSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sets := make([]string, 0, 4)
	for _, set := range [][]int{s.BlockedWeekdays, s.BlockedSlots, s.StudyBlockedWeekdays, s.StudyBlockedHours} {
		encoded, err := encodeSet(set)
		if err != nil {
			return fmt.Errorf("Upsert - %w", err)
		}
		sets = append(sets, encoded)
	}

	query, args, err := r.builder.Insert(schema.TableAdminSettings).
		Columns(
			"id",
			"pin_hash",
			"notice",
			"webhook_url",
			"blocked_weekdays",
			"blocked_slots",
			"study_blocked_weekdays",
			"study_blocked_hours",
			"updated_at",
		).
		Values(
			domain.SettingsID,
			s.PinHash,
			s.Notice,
			s.WebhookURL,
			sets[0],
			sets[1],
			sets[2],
			sets[3],
			schema.ToMillis(s.UpdatedAt),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			pin_hash = excluded.pin_hash,
			notice = excluded.notice,
			webhook_url = excluded.webhook_url,
			blocked_weekdays = excluded.blocked_weekdays,
			blocked_slots = excluded.blocked_slots,
			study_blocked_weekdays = excluded.study_blocked_weekdays,
			study_blocked_hours = excluded.study_blocked_hours,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
