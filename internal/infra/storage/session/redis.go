package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

// Lua скрипт старта сессии: комната занимается ключом с TTL до конца сессии
const luaInsertSession = `
-- KEYS[1] = sessions hash
-- KEYS[2] = session -> room key index
-- KEYS[3] = room claim key
-- ARGV[1] = session id
-- ARGV[2] = session json
-- ARGV[3] = ttl milliseconds
local ttl = tonumber(ARGV[3])
if ttl <= 0 then
    return -1
end
if not redis.call("SET", KEYS[3], ARGV[1], "NX", "PX", ttl) then
    return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
redis.call("HSET", KEYS[2], ARGV[1], KEYS[3])
return 1
`

// Lua скрипт удаления сессий. Ключи комнат передаются в KEYS,
// ключ комнаты снимается, только если принадлежит одной из удаляемых сессий
const luaDeleteSessions = `
-- KEYS[1]   = sessions hash
-- KEYS[2]   = session -> room key index
-- KEYS[3..] = room claim keys
-- ARGV      = session ids
local owned = {}
for i = 1, #ARGV do
    owned[ARGV[i]] = true
end
for i = 3, #KEYS do
    local holder = redis.call("GET", KEYS[i])
    if holder and owned[holder] then
        redis.call("DEL", KEYS[i])
    end
end
local removed = 0
for i = 1, #ARGV do
    redis.call("HDEL", KEYS[2], ARGV[i])
    removed = removed + redis.call("HDEL", KEYS[1], ARGV[i])
end
return removed
`

var (
	insertScript = redis.NewScript(luaInsertSession)
	deleteScript = redis.NewScript(luaDeleteSessions)
)

// RedisRepository key-value хранилище сессий студий
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository создает репозиторий сессий поверх redis
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix}
}

// key добавляет hash tag с префиксом, чтобы все ключи сервиса жили в одном слоте кластера
func (r *RedisRepository) key(name string) string {
	return "{" + r.prefix + "}:" + name
}

func (r *RedisRepository) sessionsKey() string {
	return r.key("study_sessions")
}

func (r *RedisRepository) roomIndexKey() string {
	return r.key("session_rooms")
}

func (r *RedisRepository) roomKey(room domain.Room) string {
	return r.key("room:" + string(room))
}

// LoadAll загружает все сессии, новые первыми
func (r *RedisRepository) LoadAll(ctx context.Context) ([]*domain.StudySession, error) {
	values, err := r.client.HGetAll(ctx, r.sessionsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - hgetall: %v", ErrExecQuery, err)
	}

	sessions := make([]*domain.StudySession, 0, len(values))
	for id, raw := range values {
		var rec record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("%w: LoadAll - decode session %s: %v", ErrEncode, id, err)
		}
		sessions = append(sessions, rec.toDomain())
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartAt.After(sessions[j].StartAt)
	})

	return sessions, nil
}

// Insert атомарно занимает комнату и сохраняет сессию
func (r *RedisRepository) Insert(ctx context.Context, s *domain.StudySession) error {
	raw, err := json.Marshal(fromDomain(s))
	if err != nil {
		return fmt.Errorf("%w: Insert - encode session: %v", ErrEncode, err)
	}

	ttl := s.EndAt.Sub(s.StartAt).Milliseconds()
	keys := []string{r.sessionsKey(), r.roomIndexKey(), r.roomKey(s.Room)}

	claimed, err := insertScript.Run(ctx, r.client, keys, s.ID, string(raw), ttl).Int()
	if err != nil {
		return fmt.Errorf("%w: Insert - run script: %v", ErrExecQuery, err)
	}

	switch claimed {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("%w: room=%s", ErrRoomBusy, s.Room)
	default:
		return fmt.Errorf("%w: Insert - non-positive duration for session %s", ErrEncode, s.ID)
	}
}

// DeleteByIDs удаляет сессии одним скриптом
func (r *RedisRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	rooms, err := r.client.HMGet(ctx, r.roomIndexKey(), ids...).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - hmget: %v", ErrExecQuery, err)
	}

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	keys := scriptKeys([]string{r.sessionsKey(), r.roomIndexKey()}, rooms)
	removed, err := deleteScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - run script: %v", ErrExecQuery, err)
	}

	return removed, nil
}

// scriptKeys дополняет фиксированные ключи найденными ключами комнат без повторов
func scriptKeys(fixed []string, claims []interface{}) []string {
	keys := append([]string(nil), fixed...)
	seen := make(map[string]struct{}, len(claims))
	for _, c := range claims {
		k, ok := c.(string)
		if !ok || k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
