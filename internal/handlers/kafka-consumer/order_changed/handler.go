package order_changed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courierdesk/internal/gateway/kafka/order_events"
	"courierdesk/pkg/logger"

	"github.com/IBM/sarama"
)

var (
	ErrBadMessage   = errors.New("bad order event message")
	ErrUnknownEvent = errors.New("unknown order event type")
)

type Handler struct {
	cache                    ReportCache
	feed                     Feed
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log logger.Logger, cache ReportCache, feed Feed, timeout time.Duration) *Handler {
	return &Handler{
		cache:                    cache,
		feed:                     feed,
		log:                      log.With(logger.NewField("handler", "order.changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.changed: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true означает, что ConsumeClaim нужно прервать без коммита сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	err := h.Process(ctx, message.Value)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		msgLog.Warn("order.changed handler context cancelled, message will be reprocessed",
			logger.NewField("error", err),
		)
		return true
	case errors.Is(err, ErrBadMessage) || errors.Is(err, ErrUnknownEvent):
		msgLog.Error("order.changed handler received bad message",
			logger.NewField("error", err),
		)
	default:
		msgLog.Warn("order.changed handler failed to process message",
			logger.NewField("error", err),
		)
	}

	sess.MarkMessage(message, "")
	return false
}

// Process сначала сбрасывает кэш отчетов, потом будит подписчиков,
// чтобы их refetch не попал на устаревшую сводку.
func (h *Handler) Process(ctx context.Context, value []byte) error {
	var msg order_events.Message
	if err := json.Unmarshal(value, &msg); err != nil {
		return fmt.Errorf("%w: %w", ErrBadMessage, err)
	}

	event := msg.ToEntity()
	if !event.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, msg.Type)
	}
	if event.OrderID <= 0 {
		return fmt.Errorf("%w: order id %d", ErrBadMessage, event.OrderID)
	}

	cacheErr := h.cache.Invalidate(ctx)
	if cacheErr != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	h.feed.Publish(ctx, event)

	if cacheErr != nil {
		return fmt.Errorf("invalidate report cache: %w", cacheErr)
	}
	return nil
}
