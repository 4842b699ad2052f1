package auth

import (
	"errors"
	"net/http"

	"courierdesk/internal/service/session"
	"courierdesk/pkg/logger"
)

// AccessTokenParam EventSource не умеет слать заголовки, для SSE токен приходит в query.
const AccessTokenParam = "access_token"

func Middleware(log handlerLogger, sessions SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawToken, ok := session.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				rawToken = r.URL.Query().Get(AccessTokenParam)
			}

			principal, err := sessions.Bootstrap(r.Context(), rawToken)
			if err != nil {
				switch {
				case errors.Is(err, session.ErrMissingToken),
					errors.Is(err, session.ErrInvalidToken):
					w.Header().Set("WWW-Authenticate", `Bearer realm="courierdesk"`)
					w.WriteHeader(http.StatusUnauthorized)
				default:
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Warn("session bootstrap failed")
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireAdmin пропускает только админа с загруженным профилем. Degraded сессия роли не знает.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFrom(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !principal.IsAdmin() {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
