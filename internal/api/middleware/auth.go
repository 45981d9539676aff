package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rentora/RIA-SchedulingService/internal/api/handlers"
)

// HeaderManagerID заголовок с идентификатором менеджера
// Аутентификацию выполняет вышестоящий gateway, сервис доверяет заголовку
const HeaderManagerID = "X-Manager-ID"

type contextKey string

const managerIDKey contextKey = "managerID"

const msgManagerIDRequired = "требуется заголовок X-Manager-ID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ManagerAuth извлекает идентификатор менеджера из заголовка и кладет его
// в контекст запроса. Запросы без валидного заголовка отклоняются
func ManagerAuth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderManagerID)
			if raw == "" {
				logger.Warn("%s %s - missing %s header", r.Method, r.URL.Path, HeaderManagerID)
				handlers.RespondUnauthorized(w, msgManagerIDRequired)
				return
			}

			managerID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || managerID <= 0 {
				logger.Warn("%s %s - invalid %s header: %q", r.Method, r.URL.Path, HeaderManagerID, raw)
				handlers.RespondUnauthorized(w, msgManagerIDRequired)
				return
			}

			ctx := context.WithValue(r.Context(), managerIDKey, managerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetManagerID возвращает идентификатор менеджера из контекста запроса
func GetManagerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(managerIDKey).(int64)
	return id, ok
}
