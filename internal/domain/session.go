package domain

import "time"

// Room is a study room identifier
type Room string

const (
	RoomA Room = "A"
	RoomB Room = "B"
	RoomC Room = "C"
	RoomD Room = "D"
)

// Rooms lists study rooms in display order
var Rooms = []Room{RoomA, RoomB, RoomC, RoomD}

// IsValid returns true for a known room
func (r Room) IsValid() bool {
	for _, room := range Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// StudyMember is a non-leader participant of a study session
type StudyMember struct {
	Name       string
	StudentID  string
	Department string
}

// StudyLeader is the participant responsible for the session
type StudyLeader struct {
	StudyMember
	Phone string
}

// StudySession represents an ad-hoc study room occupancy
type StudySession struct {
	ID      string
	Room    Room
	Leader  StudyLeader
	Others  []StudyMember
	StartAt time.Time
	EndAt   time.Time
}

// IsActive returns true while the session has not expired
func (s *StudySession) IsActive(now time.Time) bool {
	return s.EndAt.After(now)
}

// PartySize returns the number of people including the leader
func (s *StudySession) PartySize() int {
	return 1 + len(s.Others)
}

// DurationMinutes returns the booked duration
func (s *StudySession) DurationMinutes() int {
	return int(s.EndAt.Sub(s.StartAt) / time.Minute)
}
