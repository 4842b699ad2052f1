package orders_events_get

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"courierdesk/internal/generated/dto"
	"courierdesk/internal/handlers/rest/restutil"
	"courierdesk/internal/pkg/middlewares/auth"
	"courierdesk/internal/service/feed"
	"courierdesk/pkg/logger"

	"github.com/AlekSi/pointer"
)

const (
	EventRefetch = "refetch"
	// клиенту EventSource подсказка, через сколько переподключаться
	retryMillis = 3000
)

type Handler struct {
	log       handlerLogger
	hub       Hub
	heartbeat time.Duration
}

func New(log handlerLogger, hub Hub, heartbeat time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_events_get"))
	if heartbeat <= 0 {
		heartbeat = 25 * time.Second
	}

	return &Handler{
		log:       handlerLog,
		hub:       hub,
		heartbeat: heartbeat,
	}
}

// ServeHTTP держит поток до отключения клиента. Курьер всегда подписан
// только на свои активные заказы, параметры запроса для него игнорируются.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	filter, err := h.filter(r, principal.IsAdmin(), principal.UserID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	watcher := feed.NewWatcher(h.hub)
	defer watcher.Close()
	sub := watcher.SetFilter(filter)

	streamLog := h.log.With(logger.NewField("user_id", principal.UserID))
	streamLog.Info("feed stream opened")
	defer streamLog.Info("feed stream closed")

	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprintf(w, "retry: %d\n\n", retryMillis); err != nil {
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case cmd, ok := <-sub.C():
			if !ok {
				return
			}
			if err := writeRefetch(w, cmd); err != nil {
				streamLog.With(logger.NewField("error", err)).Warn("write refetch frame")
				return
			}
			flusher.Flush()
		}
	}
}

func (h *Handler) filter(r *http.Request, isAdmin bool, userID int64) (feed.Filter, error) {
	if !isAdmin {
		return feed.Filter{
			CourierIDs: []int64{userID},
			Archived:   pointer.ToBool(false),
		}, nil
	}

	orders, err := restutil.OrderFilter(r.URL.Query(), time.UTC)
	if err != nil {
		return feed.Filter{}, err
	}
	return feed.Filter{
		CourierIDs: orders.CourierIDs,
		Archived:   orders.Archived,
	}, nil
}

func writeRefetch(w http.ResponseWriter, cmd feed.Refetch) error {
	data, err := json.Marshal(dto.RefetchEvent{
		At:      cmd.Event.At,
		OrderId: cmd.Event.OrderID,
		Seq:     int64(cmd.Seq),
		Type:    cmd.Event.Type.String(),
	})
	if err != nil {
		return fmt.Errorf("marshal refetch: %w", err)
	}

	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", cmd.Seq, EventRefetch, data)
	return err
}
