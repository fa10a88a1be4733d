package start_study_session

import (
	"context"
	"time"

	"github.com/m04kA/EconLab-ReservationService/internal/domain"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom/models"
)

type SessionService interface {
	Start(ctx context.Context, p models.StartParams) (*domain.StudySession, error)
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
