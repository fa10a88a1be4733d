package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/m04kA/EconLab-ReservationService/internal/config"
	bookingRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/EconLab-ReservationService/internal/infra/storage/schema"
	sessionRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/session"
	settingsRepo "github.com/m04kA/EconLab-ReservationService/internal/infra/storage/settings"
	bookingsService "github.com/m04kA/EconLab-ReservationService/internal/service/bookings"
	settingsService "github.com/m04kA/EconLab-ReservationService/internal/service/settings"
	studyroomService "github.com/m04kA/EconLab-ReservationService/internal/service/studyroom"
	"github.com/m04kA/EconLab-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/EconLab-ReservationService/pkg/logger"
	"github.com/m04kA/EconLab-ReservationService/pkg/metrics"
	"github.com/m04kA/EconLab-ReservationService/pkg/sqlbuilder"
)

// store репозитории выбранного бэкенда и функция закрытия соединения
type store struct {
	bookings bookingsService.BookingRepository
	settings settingsService.SettingsRepository
	sessions studyroomService.SessionRepository
	close    func() error
}

func openStore(ctx context.Context, cfg *config.Config, m *metrics.Metrics, stop <-chan struct{}, log *logger.Logger) (*store, error) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		return openRedis(ctx, cfg.Redis, log)
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		log.Info("Connecting to postgres (host=%s, port=%d, db=%s)", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return openSQL(ctx, db, sqlbuilder.DialectPostgres, m, stop, log)
	default:
		db, err := sql.Open("sqlite", cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// sqlite допускает одного писателя
		db.SetMaxOpenConns(1)

		log.Info("Opening sqlite database %s", cfg.SQLite.Path)
		return openSQL(ctx, db, sqlbuilder.DialectSQLite, m, stop, log)
	}
}

func openSQL(ctx context.Context, db *sql.DB, dialect string, m *metrics.Metrics, stop <-chan struct{}, log *logger.Logger) (*store, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	var executor dbmetrics.Executor = db
	if m != nil {
		executor = dbmetrics.WrapWithDefault(db, m, dialect, stop)
		log.Info("Database metrics collection started")
	}

	if err := schema.Migrate(ctx, executor); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dialect, err)
	}

	return &store{
		bookings: bookingRepo.NewRepository(executor, dialect),
		settings: settingsRepo.NewRepository(executor, dialect),
		sessions: sessionRepo.NewRepository(executor, dialect),
		close:    db.Close,
	}, nil
}

func openRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	log.Info("Connected to redis (addr=%s, db=%d, prefix=%s)", cfg.Addr, cfg.DB, cfg.KeyPrefix)
	return &store{
		bookings: bookingRepo.NewRedisRepository(client, cfg.KeyPrefix),
		settings: settingsRepo.NewRedisRepository(client, cfg.KeyPrefix),
		sessions: sessionRepo.NewRedisRepository(client, cfg.KeyPrefix),
		close:    client.Close,
	}, nil
}
