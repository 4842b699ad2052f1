package me_get

import (
	"net/http"

	"courierdesk/internal/generated/dto"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/pkg/middlewares/auth"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

// ServeHTTP состояние сессии: ready с профилем или degraded только с id и email.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	me := dto.Me{
		Email:  principal.Email,
		State:  principal.State.String(),
		UserId: principal.UserID,
	}
	if principal.Profile != nil {
		profile := restutil.CourierToDTO(*principal.Profile)
		role := principal.Role().String()
		me.Profile = &profile
		me.Role = &role
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, me)
}
