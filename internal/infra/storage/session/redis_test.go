package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

func TestScriptKeys(t *testing.T) {
	keys := scriptKeys([]string{"{p}:study_sessions", "{p}:session_rooms"},
		[]interface{}{nil, "{p}:room:A", "{p}:room:A", "{p}:room:B"})

	assert.Equal(t, []string{"{p}:study_sessions", "{p}:session_rooms", "{p}:room:A", "{p}:room:B"}, keys)
}

func TestRedisRepository_KeysShareHashTag(t *testing.T) {
	repo := NewRedisRepository(nil, "econlab")
	s := testSession("s1", domain.RoomA, time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), 60)

	for _, key := range []string{repo.sessionsKey(), repo.roomIndexKey(), repo.roomKey(s.Room)} {
		assert.Contains(t, key, "{econlab}:")
	}
}
