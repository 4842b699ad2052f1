package order_get

import (
	"errors"
	"net/http"

	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/pkg/middlewares/auth"
	"courierdesk/internal/service/order"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id, err := restutil.PathID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	view, err := h.service.GetOrder(r.Context(), principal, id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		// чужой заказ неотличим от несуществующего
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, restutil.OrderToDTO(*view))
}
