package session

import (
	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/infra/storage/schema"
)

type memberRecord struct {
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
}

type record struct {
	ID      string         `json:"id"`
	Room    string         `json:"room"`
	Leader  memberRecord   `json:"leader"`
	Phone   string         `json:"phone"`
	Others  []memberRecord `json:"others"`
	StartAt int64          `json:"startAt"`
	EndAt   int64          `json:"endAt"`
}

func fromDomainMembers(members []domain.StudyMember) []memberRecord {
	result := make([]memberRecord, 0, len(members))
	for _, m := range members {
		result = append(result, memberRecord{Name: m.Name, StudentID: m.StudentID, Department: m.Department})
	}
	return result
}

func toDomainMembers(members []memberRecord) []domain.StudyMember {
	result := make([]domain.StudyMember, 0, len(members))
	for _, m := range members {
		result = append(result, domain.StudyMember{Name: m.Name, StudentID: m.StudentID, Department: m.Department})
	}
	return result
}

func fromDomain(s *domain.StudySession) record {
	return record{
		ID:   s.ID,
		Room: string(s.Room),
		Leader: memberRecord{
			Name:       s.Leader.Name,
			StudentID:  s.Leader.StudentID,
			Department: s.Leader.Department,
		},
		Phone:   s.Leader.Phone,
		Others:  fromDomainMembers(s.Others),
		StartAt: schema.ToMillis(s.StartAt),
		EndAt:   schema.ToMillis(s.EndAt),
	}
}

func (r record) toDomain() *domain.StudySession {
	return &domain.StudySession{
		ID:   r.ID,
		Room: domain.Room(r.Room),
		Leader: domain.StudyLeader{
			StudyMember: domain.StudyMember{
				Name:       r.Leader.Name,
				StudentID:  r.Leader.StudentID,
				Department: r.Leader.Department,
			},
			Phone: r.Phone,
		},
		Others:  toDomainMembers(r.Others),
		StartAt: schema.FromMillis(r.StartAt),
		EndAt:   schema.FromMillis(r.EndAt),
	}
}
