package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/infra/storage/schema"
)

// Lua скрипт атомарной записи бронирования: место занимается SET NX вместе с записью
const luaInsertBooking = `
-- KEYS[1] = bookings hash
-- KEYS[2] = booking -> seat key index
-- KEYS[3] = seat claim key
-- ARGV[1] = booking id
-- ARGV[2] = booking json
if not redis.call("SET", KEYS[3], ARGV[1], "NX") then
    return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
redis.call("HSET", KEYS[2], ARGV[1], KEYS[3])
return 1
`

// Lua скрипт пакетного удаления: запись и занятое место снимаются вместе.
// Ключи мест передаются в KEYS, место снимается, только если занято одним из удаляемых бронирований
const luaDeleteBookings = `
-- KEYS[1]   = bookings hash
-- KEYS[2]   = booking -> seat key index
-- KEYS[3..] = seat claim keys
-- ARGV      = booking ids
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
	insertScript = redis.NewScript(luaInsertBooking)
	deleteScript = redis.NewScript(luaDeleteBookings)
)

// record формат хранения бронирования в redis
type record struct {
	ID         string `json:"id"`
	PCNumber   int    `json:"pcNumber"`
	Date       string `json:"date"`
	SlotHour   int    `json:"slotHour"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	CreatedAt  int64  `json:"createdAt"`
}

// RedisRepository key-value хранилище бронирований
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository создает репозиторий поверх redis. prefix отделяет ключи сервиса
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix}
}

// key добавляет hash tag с префиксом, чтобы все ключи сервиса жили в одном слоте кластера
func (r *RedisRepository) key(name string) string {
	return "{" + r.prefix + "}:" + name
}

func (r *RedisRepository) bookingsKey() string {
	return r.key("bookings")
}

func (r *RedisRepository) seatIndexKey() string {
	return r.key("booking_seats")
}

func (r *RedisRepository) seatKey(b *domain.Booking) string {
	return r.key("seat:" + b.Date + ":" + strconv.Itoa(int(b.SlotHour)) + ":" + strconv.Itoa(b.SeatNumber))
}

// LoadAll загружает все бронирования, новые первыми
func (r *RedisRepository) LoadAll(ctx context.Context) ([]*domain.Booking, error) {
	values, err := r.client.HGetAll(ctx, r.bookingsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - hgetall: %v", ErrExecQuery, err)
	}

	bookings := make([]*domain.Booking, 0, len(values))
	for id, raw := range values {
		var rec record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("%w: LoadAll - decode booking %s: %v", ErrEncode, id, err)
		}
		bookings = append(bookings, rec.toDomain())
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

// Insert атомарно занимает место и сохраняет бронирование
func (r *RedisRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	raw, err := json.Marshal(fromDomain(booking))
	if err != nil {
		return fmt.Errorf("%w: Insert - encode booking: %v", ErrEncode, err)
	}

	keys := []string{r.bookingsKey(), r.seatIndexKey(), r.seatKey(booking)}
	claimed, err := insertScript.Run(ctx, r.client, keys, booking.ID, string(raw)).Int()
	if err != nil {
		return fmt.Errorf("%w: Insert - run script: %v", ErrExecQuery, err)
	}
	if claimed == 0 {
		return fmt.Errorf("%w: date=%s slot=%d seat=%d", ErrSeatTaken, booking.Date, booking.SlotHour, booking.SeatNumber)
	}

	return nil
}

// DeleteByIDs удаляет бронирования одним скриптом
func (r *RedisRepository) DeleteByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	seats, err := r.client.HMGet(ctx, r.seatIndexKey(), ids...).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - hmget: %v", ErrExecQuery, err)
	}

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	keys := scriptKeys([]string{r.bookingsKey(), r.seatIndexKey()}, seats)
	removed, err := deleteScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - run script: %v", ErrExecQuery, err)
	}

	return removed, nil
}

// scriptKeys дополняет фиксированные ключи найденными ключами мест без повторов
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

func fromDomain(b *domain.Booking) record {
	return record{
		ID:         b.ID,
		PCNumber:   b.SeatNumber,
		Date:       b.Date,
		SlotHour:   int(b.SlotHour),
		Name:       b.Name,
		StudentID:  b.StudentID,
		Phone:      b.Phone,
		Department: b.Department,
		CreatedAt:  schema.ToMillis(b.CreatedAt),
	}
}

func (rec record) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:         rec.ID,
		SeatNumber: rec.PCNumber,
		Date:       rec.Date,
		SlotHour:   domain.SlotHour(rec.SlotHour),
		Name:       rec.Name,
		StudentID:  rec.StudentID,
		Phone:      rec.Phone,
		Department: rec.Department,
		CreatedAt:  schema.FromMillis(rec.CreatedAt),
	}
}
