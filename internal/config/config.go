package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// Бэкенды хранилища
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	SQLite    SQLiteConfig    `toml:"sqlite"`
	Redis     RedisConfig     `toml:"redis"`
	Webhook   WebhookConfig   `toml:"webhook"`
	Lab       LabConfig       `toml:"lab"`
	StudyRoom StudyRoomConfig `toml:"study_room"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Backend string `toml:"backend"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type WebhookConfig struct {
	Timeout int `toml:"timeout"`
}

type LabConfig struct {
	Timezone   string `toml:"timezone"`
	DefaultPin string `toml:"default_pin"`
}

// Location часовой пояс лаборатории
func (c LabConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type StudyRoomConfig struct {
	SweepIntervalSeconds int `toml:"sweep_interval_seconds"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics", ServiceName: "econlab_reservation"},
		Storage: StorageConfig{Backend: BackendSQLite},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "econlab",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		SQLite:    SQLiteConfig{Path: "econlab.db"},
		Redis:     RedisConfig{Addr: "localhost:6379", KeyPrefix: "econ_pclab"},
		Webhook:   WebhookConfig{Timeout: 10},
		Lab:       LabConfig{Timezone: "Asia/Seoul", DefaultPin: "0423"},
		StudyRoom: StudyRoomConfig{SweepIntervalSeconds: 30},
		RateLimit: RateLimitConfig{Enabled: true, RPS: 2, Burst: 10},
		CORS:      CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// Load читает TOML файл поверх значений по умолчанию и применяет переменные окружения.
// Отсутствующий файл не ошибка: сервис стартует на значениях по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LAB_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("LAB_DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("LAB_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("LAB_DEFAULT_PIN"); v != "" {
		c.Lab.DefaultPin = v
	}
	if v := os.Getenv("LAB_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LAB_HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var invalid []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		invalid = append(invalid, "server.http_port")
	}
	switch c.Storage.Backend {
	case BackendPostgres, BackendSQLite, BackendRedis:
	default:
		invalid = append(invalid, "storage.backend")
	}
	if c.Storage.Backend == BackendSQLite && c.SQLite.Path == "" {
		invalid = append(invalid, "sqlite.path")
	}
	if c.Storage.Backend == BackendRedis && c.Redis.Addr == "" {
		invalid = append(invalid, "redis.addr")
	}
	if _, err := c.Lab.Location(); err != nil {
		invalid = append(invalid, "lab.timezone")
	}
	if len(c.Lab.DefaultPin) < 4 {
		invalid = append(invalid, "lab.default_pin")
	}
	if c.StudyRoom.SweepIntervalSeconds <= 0 {
		invalid = append(invalid, "study_room.sweep_interval_seconds")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		invalid = append(invalid, "rate_limit")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		invalid = append(invalid, "metrics.path")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(invalid, ", "))
	}
	return nil
}
