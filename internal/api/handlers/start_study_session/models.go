package start_study_session

import (
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom/models"
)

// MemberRequest участник сессии
type MemberRequest struct {
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
}

// LeaderRequest представитель группы
type LeaderRequest struct {
	MemberRequest
	Phone string `json:"phone"`
}

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	Room            string          `json:"room"`
	Leader          LeaderRequest   `json:"leader"`
	Others          []MemberRequest `json:"others"`
	DurationMinutes int             `json:"durationMinutes"`
}

// ToServiceParams конвертирует HTTP запрос в параметры сервиса
func (r *StartSessionRequest) ToServiceParams() models.StartParams {
	others := make([]domain.StudyMember, 0, len(r.Others))
	for _, m := range r.Others {
		others = append(others, m.toDomain())
	}

	return models.StartParams{
		Room: domain.Room(r.Room),
		Leader: domain.StudyLeader{
			StudyMember: r.Leader.toDomain(),
			Phone:       r.Leader.Phone,
		},
		Others:          others,
		DurationMinutes: r.DurationMinutes,
	}
}

func (m MemberRequest) toDomain() domain.StudyMember {
	return domain.StudyMember{
		Name:       m.Name,
		StudentID:  m.StudentID,
		Department: m.Department,
	}
}
