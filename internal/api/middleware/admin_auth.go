package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/EconLab-ReservationService/internal/api/handlers"
)

// AdminPinHeader заголовок с PIN администратора
const AdminPinHeader = "X-Admin-PIN"

const (
	msgPinRequired = "관리자 PIN을 입력하세요."
	msgPinInvalid  = "PIN이 올바르지 않습니다."
)

// AdminAuth пропускает запрос, только если заголовок X-Admin-PIN совпадает с текущим PIN
func AdminAuth(auth PinAuthenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pin := strings.TrimSpace(r.Header.Get(AdminPinHeader))
			if pin == "" {
				logger.Warn("%s %s - missing admin PIN", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgPinRequired)
				return
			}

			if err := auth.Authenticate(pin); err != nil {
				logger.Warn("%s %s - admin PIN rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgPinInvalid)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
