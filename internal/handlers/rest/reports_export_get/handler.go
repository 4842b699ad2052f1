package reports_export_get

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"courierdesk/internal/entities"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/service/order"
	"courierdesk/internal/service/report"
	"courierdesk/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	loc     *time.Location
	now     func() time.Time
}

func New(log handlerLogger, service Service, loc *time.Location) *Handler {
	handlerLog := log.With(logger.NewField("handler", "reports_export_get"))
	if loc == nil {
		loc = time.UTC
	}

	return &Handler{
		log:     handlerLog,
		service: service,
		loc:     loc,
		now:     time.Now,
	}
}

// ServeHTTP ?format=csv|json, по умолчанию csv. Выгрузка пишется в ответ потоком.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := restutil.OrderFilter(query, h.loc)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	format := entities.ExportCSV
	if raw := query.Get("format"); raw != "" {
		format = entities.ExportFormat(raw)
	}

	filename := fmt.Sprintf("orders-%s.%s", h.now().In(h.loc).Format("20060102-150405"), format)
	out := &lazyWriter{ResponseWriter: w, contentType: contentType(format), filename: filename}

	err = h.service.Export(r.Context(), filter, format, out)
	if err == nil {
		if !out.started {
			out.start()
		}
		return
	}

	if out.started {
		// заголовки уже ушли, остается только оборвать выгрузку
		h.log.With(
			logger.NewField("format", format.String()),
			logger.NewField("error", err),
		).Error("export interrupted")
		return
	}

	switch {
	case errors.Is(err, report.ErrInvalidFormat),
		errors.Is(err, report.ErrInvalidDateRange),
		errors.Is(err, order.ErrInvalidFilter),
		errors.Is(err, order.ErrUndefinedStatus):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func contentType(format entities.ExportFormat) string {
	if format == entities.ExportJSON {
		return "application/json"
	}
	return "text/csv; charset=utf-8"
}

// lazyWriter откладывает заголовки до первой записи, чтобы ошибку до выгрузки можно было вернуть статусом.
type lazyWriter struct {
	http.ResponseWriter
	contentType string
	filename    string
	started     bool
}

func (lw *lazyWriter) start() {
	lw.started = true
	lw.Header().Set("Content-Type", lw.contentType)
	lw.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", lw.filename))
	lw.WriteHeader(http.StatusOK)
}

func (lw *lazyWriter) Write(p []byte) (int, error) {
	if !lw.started {
		lw.start()
	}
	return lw.ResponseWriter.Write(p)
}
