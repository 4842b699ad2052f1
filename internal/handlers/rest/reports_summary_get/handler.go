package reports_summary_get

import (
	"errors"
	"net/http"
	"time"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := restutil.OrderFilter(r.URL.Query(), h.loc)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summary(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidDateRange),
			errors.Is(err, order.ErrInvalidFilter),
			errors.Is(err, order.ErrUndefinedStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	restutil.WriteJSON(w, h.log, http.StatusOK, restutil.SummaryToDTO(summary))
}
