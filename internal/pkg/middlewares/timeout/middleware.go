package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware дедлайн на весь запрос. Долгоживущие потоки (SSE) вешаются мимо него.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if timeout <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			// r.Context() наследует ongoingCtx из BaseContext сервера
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
