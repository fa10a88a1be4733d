package models

import (
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/pkg/masking"
)

// StartParams параметры запуска сессии
type StartParams struct {
	Room            domain.Room
	Leader          domain.StudyLeader
	Others          []domain.StudyMember
	DurationMinutes int
}

// MemberResponse участник сессии
type MemberResponse struct {
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
}

// SessionResponse полная информация о сессии (для администратора)
type SessionResponse struct {
	ID               string           `json:"id"`
	Room             string           `json:"room"`
	Leader           MemberResponse   `json:"leader"`
	LeaderPhone      string           `json:"leaderPhone"`
	Others           []MemberResponse `json:"others"`
	PartySize        int              `json:"partySize"`
	StartAt          time.Time        `json:"startAt"`
	EndAt            time.Time        `json:"endAt"`
	RemainingMinutes int              `json:"remainingMinutes"`
}

// RoomStatusResponse состояние комнаты для публичного экрана
type RoomStatusResponse struct {
	Room             string     `json:"room"`
	Busy             bool       `json:"busy"`
	SessionID        string     `json:"sessionId,omitempty"`
	LeaderName       string     `json:"leaderName,omitempty"`
	PartySize        int        `json:"partySize,omitempty"`
	EndAt            *time.Time `json:"endAt,omitempty"`
	RemainingMinutes int        `json:"remainingMinutes,omitempty"`
}

// FromDomainSession конвертирует сессию в ответ
func FromDomainSession(s *domain.StudySession, now time.Time) SessionResponse {
	others := make([]MemberResponse, 0, len(s.Others))
	for _, m := range s.Others {
		others = append(others, fromMember(m))
	}

	return SessionResponse{
		ID:               s.ID,
		Room:             string(s.Room),
		Leader:           fromMember(s.Leader.StudyMember),
		LeaderPhone:      masking.FormatPhone(s.Leader.Phone),
		Others:           others,
		PartySize:        s.PartySize(),
		StartAt:          s.StartAt,
		EndAt:            s.EndAt,
		RemainingMinutes: RemainingMinutes(s, now),
	}
}

// FromDomainSessionList конвертирует список сессий
func FromDomainSessionList(sessions []*domain.StudySession, now time.Time) []SessionResponse {
	result := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, FromDomainSession(s, now))
	}
	return result
}

// ToRoomStatuses строит состояние всех комнат в порядке отображения, личные данные маскируются
func ToRoomStatuses(active map[domain.Room]*domain.StudySession, now time.Time) []RoomStatusResponse {
	result := make([]RoomStatusResponse, 0, len(domain.Rooms))
	for _, room := range domain.Rooms {
		status := RoomStatusResponse{Room: string(room)}
		if s, ok := active[room]; ok {
			endAt := s.EndAt
			status.Busy = true
			status.SessionID = s.ID
			status.LeaderName = masking.Name(s.Leader.Name)
			status.PartySize = s.PartySize()
			status.EndAt = &endAt
			status.RemainingMinutes = RemainingMinutes(s, now)
		}
		result = append(result, status)
	}
	return result
}

// RemainingMinutes оставшиеся целые минуты, не меньше нуля
func RemainingMinutes(s *domain.StudySession, now time.Time) int {
	left := s.EndAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(left / time.Minute)
}

func fromMember(m domain.StudyMember) MemberResponse {
	return MemberResponse{
		Name:       m.Name,
		StudentID:  m.StudentID,
		Department: m.Department,
	}
}
