package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/infra/storage/schema"
	"github.com/m04kA/EconLab-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/EconLab-ReservationService/pkg/sqlbuilder"
)

var columns = []string{
	"id",
	"pc_number",
	"booking_date",
	"slot_hour",
	"name",
	"student_id",
	"phone",
	"department",
	"created_at",
}

// Repository табличное хранилище бронирований (postgres или sqlite)
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect string) *Repository {
	return &Repository{
		db:      db,
		builder: sqlbuilder.New(dialect),
	}
}

// LoadAll загружает все бронирования, новые первыми
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(schema.TableReservations).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Insert сохраняет бронирование.
// Уникальный индекс (booking_date, slot_hour, pc_number) не дает занять место дважды
func (r *Repository) Insert(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Insert(schema.TableReservations).
		Columns(columns...).
		Values(
			booking.ID,
			booking.SeatNumber,
			booking.Date,
			int(booking.SlotHour),
			booking.Name,
			booking.StudentID,
			booking.Phone,
			booking.Department,
			schema.ToMillis(booking.CreatedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if schema.IsUniqueViolation(err) {
			return fmt.Errorf("%w: date=%s slot=%d seat=%d", ErrSeatTaken, booking.Date, booking.SlotHour, booking.SeatNumber)
		}
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByIDs удаляет бронирования одним запросом и возвращает число удаленных строк
func (r *Repository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(schema.TableReservations).
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

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking

	for rows.Next() {
		var (
			b         domain.Booking
			slotHour  int
			createdAt int64
		)

		err := rows.Scan(
			&b.ID,
			&b.SeatNumber,
			&b.Date,
			&slotHour,
			&b.Name,
			&b.StudentID,
			&b.Phone,
			&b.Department,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.SlotHour = domain.SlotHour(slotHour)
		b.CreatedAt = schema.FromMillis(createdAt)
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
