package get_study_rooms

import (
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
)

type SessionService interface {
	ActiveByRoom() map[domain.Room]*domain.StudySession
	List() []*domain.StudySession
	Now() time.Time
}
