package reports_rollup_get

import (
	"errors"
	"net/http"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/service/order"
	"courierdesk/internal/service/report"
)

type Handler struct {
	log     handlerLogger
	service Service
	loc     *time.Location
}

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

// ServeHTTP ?period=day|week|month, по умолчанию day.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := restutil.OrderFilter(query, h.loc)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	period := entities.RollupDay
	if raw := query.Get("period"); raw != "" {
		period = entities.RollupPeriod(raw)
	}

	buckets, err := h.service.Rollup(r.Context(), filter, period)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidPeriod),
			errors.Is(err, report.ErrInvalidDateRange),
			errors.Is(err, order.ErrInvalidFilter),
			errors.Is(err, order.ErrUndefinedStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, restutil.RollupToDTO(period, buckets))
}
