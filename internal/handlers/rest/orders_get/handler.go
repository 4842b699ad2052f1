package orders_get

import (
	"errors"
	"net/http"
	"time"

	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/pkg/middlewares/auth"
	"courierdesk/internal/service/order"
)

type Handler struct {
	log     handlerLogger
	service Service
	loc     *time.Location
}

// New loc пояс, в котором читаются даты без времени в query.
func New(log handlerLogger, service Service, loc *time.Location) *Handler {
	handlerLog := log.With()
	if loc == nil {
		loc = time.UTC
	}

	return &Handler{
		log:     handlerLog,
		service: service,
		loc:     loc,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	filter, err := restutil.OrderFilter(r.URL.Query(), h.loc)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	views, err := h.service.ListOrders(r.Context(), principal, filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidFilter),
			errors.Is(err, order.ErrUndefinedStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, restutil.OrdersToDTO(views))
}
