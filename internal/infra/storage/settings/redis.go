package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// RedisRepository хранит настройки одной JSON строкой
type RedisRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRepository создает репозиторий настроек поверх redis
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	return &RedisRepository{client: client, key: prefix + ":admin_settings"}
}

// Load получает настройки
func (r *RedisRepository) Load(ctx context.Context) (*domain.AdminSettings, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get: %v", ErrExecQuery, err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: Load - decode: %v", ErrEncode, err)
	}

	return rec.toDomain(), nil
}

// Upsert сохраняет настройки целиком
func (r *RedisRepository) Upsert(ctx context.Context, s *domain.AdminSettings) error {
	raw, err := json.Marshal(fromDomain(s))
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode: %v", ErrEncode, err)
	}

	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("%w: Upsert - set: %v", ErrExecQuery, err)
	}

	return nil
}
