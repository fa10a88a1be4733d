package schema

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db))

	insert := `INSERT INTO reservations (id, pc_number, booking_date, slot_hour, name, student_id, phone, department, created_at)
		VALUES (?, 1, '2025-03-03', 18, 'n', '20231234', '01012345678', 'd', 0)`
	_, err = db.ExecContext(ctx, insert, "a")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "b")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(sql.ErrNoRows))
}

func TestMillisRoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 3, 18, 30, 15, 123000000, time.UTC)
	assert.True(t, ts.Equal(FromMillis(ToMillis(ts))))
}
