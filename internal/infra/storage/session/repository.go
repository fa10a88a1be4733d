package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/infra/storage/schema"
	"github.com/m04kA/EconLab-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/EconLab-ReservationService/pkg/sqlbuilder"
)

var columns = []string{
	"id",
	"room",
	"leader_name",
	"leader_student_id",
	"leader_department",
	"leader_phone",
	"others",
	"start_at",
	"end_at",
}

// Repository табличное хранилище сессий студий
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
	txOpts  *sql.TxOptions
}

// NewRepository создает новый экземпляр репозитория сессий.
// Для postgres проверка занятости комнаты и вставка идут в сериализуемой транзакции
func NewRepository(db DBExecutor, dialect string) *Repository {
	repo := &Repository{
		db:      db,
		builder: sqlbuilder.New(dialect),
	}
	if dialect == sqlbuilder.DialectPostgres {
		repo.txOpts = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return repo
}

// LoadAll загружает все сессии, новые первыми
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.StudySession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(schema.TableStudySessions).
		OrderBy("start_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var sessions []*domain.StudySession
	for rows.Next() {
		var (
			rec    record
			others string
		)
		err := rows.Scan(
			&rec.ID,
			&rec.Room,
			&rec.Leader.Name,
			&rec.Leader.StudentID,
			&rec.Leader.Department,
			&rec.Phone,
			&others,
			&rec.StartAt,
			&rec.EndAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: LoadAll - scan row: %v", ErrScanRow, err)
		}
		if err := json.Unmarshal([]byte(others), &rec.Others); err != nil {
			return nil, fmt.Errorf("%w: LoadAll - decode members of %s: %v", ErrEncode, rec.ID, err)
		}
		sessions = append(sessions, rec.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadAll - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

// Insert сохраняет сессию, если в комнате нет активной на момент StartAt
func (r *Repository) Insert(ctx context.Context, s *domain.StudySession) error {
	rec := fromDomain(s)
	others, err := json.Marshal(rec.Others)
	if err != nil {
		return fmt.Errorf("%w: Insert - encode members: %v", ErrEncode, err)
	}

	err = dbmetrics.InTx(ctx, r.db, r.txOpts, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, r.db)

		// 1. Проверяем, что комната свободна
		query, args, err := r.builder.Select("COUNT(*)").
			From(schema.TableStudySessions).
			Where(squirrel.Eq{"room": rec.Room}).
			Where(squirrel.Gt{"end_at": rec.StartAt}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Insert - build count query: %v", ErrBuildQuery, err)
		}

		var active int
		if err := executor.QueryRowContext(txCtx, query, args...).Scan(&active); err != nil {
			return fmt.Errorf("%w: Insert - count active: %v", ErrScanRow, err)
		}
		if active > 0 {
			return fmt.Errorf("%w: room=%s", ErrRoomBusy, rec.Room)
		}

		// 2. Вставляем сессию
		query, args, err = r.builder.Insert(schema.TableStudySessions).
			Columns(columns...).
			Values(
				rec.ID,
				rec.Room,
				rec.Leader.Name,
				rec.Leader.StudentID,
				rec.Leader.Department,
				rec.Phone,
				string(others),
				rec.StartAt,
				rec.EndAt,
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
			return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomBusy) || errors.Is(err, ErrBuildQuery) ||
			errors.Is(err, ErrExecQuery) || errors.Is(err, ErrScanRow) {
			return err
		}
		return fmt.Errorf("%w: Insert: %v", ErrTransaction, err)
	}

	return nil
}

// DeleteByIDs удаляет сессии одним запросом
func (r *Repository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(schema.TableStudySessions).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - get rows affected: %v", ErrExecQuery, err)
	}

	return int(rowsAffected), nil
}
