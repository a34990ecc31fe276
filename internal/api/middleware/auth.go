package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/BMS-ScheduleService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const msgMissingUserID = "se requiere el encabezado X-User-ID"

// Auth проверяет наличие корректного заголовка X-User-ID и кладет ID
// пользователя в контекст запроса.
// Само управление сессиями пользователя живет во внешнем auth-сервисе -
// здесь заголовок принимается как непрозрачный идентификатор.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext извлекает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
