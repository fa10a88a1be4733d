package start_study_session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom"
	"github.com/m04kA/EconLab-ReservationService/internal/service/studyroom/models"
)

const (
	msgInvalidRequestBody = "요청 형식이 올바르지 않습니다."
	msgInvalidRoom        = "스터디룸을 선택하세요."
	msgStudyBlocked       = "해당 요일/시간에는 사용이 차단되었습니다 (관리자 설정)."
	msgLeaderName         = "대표자 이름을 입력하세요."
	msgLeaderStudentID    = "대표자 학번은 8~9자리 숫자입니다."
	msgDisallowedDept     = "경제학과만 이용 가능합니다."
	msgLeaderPhone        = "연락처를 정확히 입력하세요."
	msgMemberName         = "%d번 인원의 이름을 입력하세요."
	msgMemberStudentID    = "%d번 인원의 학번은 8~9자리 숫자입니다."
	msgMemberDept         = "%d번 인원은 경제학과만 이용 가능합니다."
	msgPartyTooSmall      = "스터디룸은 3명 이상부터 이용 가능합니다."
	msgPartyTooLarge      = "최대 6명까지 이용 가능합니다."
	msgInvalidDuration    = "이용 시간은 15~120분입니다."
	msgRoomBusy           = "%s은 사용 중입니다."
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/study-rooms/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /study-rooms/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Start(r.Context(), req.ToServiceParams())
	if err != nil {
		var memberErr *studyroom.MemberError
		switch {
		case errors.Is(err, studyroom.ErrRoomBusy):
			h.logger.Warn("POST /study-rooms/sessions - Room busy: room=%s", req.Room)
			handlers.RespondConflict(w, fmt.Sprintf(msgRoomBusy, req.Room))

		case errors.As(err, &memberErr):
			h.logger.Warn("POST /study-rooms/sessions - Member validation failed: %v", err)
			handlers.RespondBadRequest(w, memberMessage(memberErr))

		case errors.Is(err, studyroom.ErrInternal):
			h.logger.Error("POST /study-rooms/sessions - Failed to start session: room=%s, error=%v", req.Room, err)
			handlers.RespondInternalError(w)

		default:
			msg, ok := validationMessage(err)
			if !ok {
				h.logger.Error("POST /study-rooms/sessions - Unexpected error: %v", err)
				handlers.RespondInternalError(w)
				return
			}
			h.logger.Warn("POST /study-rooms/sessions - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msg)
		}
		return
	}

	h.logger.Info("POST /study-rooms/sessions - Session started: session_id=%s, room=%s", session.ID, session.Room)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainSession(session, h.service.Now()))
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, studyroom.ErrInvalidRoom):
		return msgInvalidRoom, true
	case errors.Is(err, studyroom.ErrStudyBlocked):
		return msgStudyBlocked, true
	case errors.Is(err, studyroom.ErrMissingName):
		return msgLeaderName, true
	case errors.Is(err, studyroom.ErrInvalidStudentID):
		return msgLeaderStudentID, true
	case errors.Is(err, studyroom.ErrDisallowedDepartment):
		return msgDisallowedDept, true
	case errors.Is(err, studyroom.ErrInvalidPhone):
		return msgLeaderPhone, true
	case errors.Is(err, studyroom.ErrPartyTooSmall):
		return msgPartyTooSmall, true
	case errors.Is(err, studyroom.ErrPartyTooLarge):
		return msgPartyTooLarge, true
	case errors.Is(err, studyroom.ErrInvalidDuration):
		return msgInvalidDuration, true
	}
	return "", false
}

// memberMessage нумерует участников с 2: первый в форме всегда представитель
func memberMessage(err *studyroom.MemberError) string {
	n := err.Index + 1
	switch {
	case errors.Is(err.Err, studyroom.ErrMissingName):
		return fmt.Sprintf(msgMemberName, n)
	case errors.Is(err.Err, studyroom.ErrInvalidStudentID):
		return fmt.Sprintf(msgMemberStudentID, n)
	default:
		return fmt.Sprintf(msgMemberDept, n)
	}
}
