package schema

import (
	"context"
	"fmt"

	"github.com/m04kA/EconLab-ReservationService/pkg/dbmetrics"
)

// Таблицы
const (
	TableReservations  = "reservations"
	TableAdminSettings = "admin_settings"
	TableStudySessions = "study_sessions"
)

// statements DDL, общий для postgres и sqlite. Время хранится в unix миллисекундах
var statements = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id          TEXT PRIMARY KEY,
		pc_number   INTEGER NOT NULL,
		booking_date TEXT NOT NULL,
		slot_hour   INTEGER NOT NULL,
		name        TEXT NOT NULL,
		student_id  TEXT NOT NULL,
		phone       TEXT NOT NULL,
		department  TEXT NOT NULL,
		created_at  BIGINT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS reservations_seat_slot_uq
		ON reservations (booking_date, slot_hour, pc_number)`,
	`CREATE TABLE IF NOT EXISTS admin_settings (
		id                     TEXT PRIMARY KEY,
		pin_hash               TEXT NOT NULL,
		notice                 TEXT NOT NULL DEFAULT '',
		webhook_url            TEXT NOT NULL DEFAULT '',
		blocked_weekdays       TEXT NOT NULL DEFAULT '[]',
		blocked_slots          TEXT NOT NULL DEFAULT '[]',
		study_blocked_weekdays TEXT NOT NULL DEFAULT '[]',
		study_blocked_hours    TEXT NOT NULL DEFAULT '[]',
		updated_at             BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS study_sessions (
		id                TEXT PRIMARY KEY,
		room              TEXT NOT NULL,
		leader_name       TEXT NOT NULL,
		leader_student_id TEXT NOT NULL,
		leader_department TEXT NOT NULL,
		leader_phone      TEXT NOT NULL,
		others            TEXT NOT NULL DEFAULT '[]',
		start_at          BIGINT NOT NULL,
		end_at            BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS study_sessions_room_end_idx
		ON study_sessions (room, end_at)`,
}

// Migrate создает таблицы, если их нет
func Migrate(ctx context.Context, db dbmetrics.DBExecutor) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i+1, err)
		}
	}
	return nil
}
