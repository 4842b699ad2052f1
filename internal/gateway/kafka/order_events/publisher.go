package order_events

import (
	"context"
	"encoding/json"
	"strconv"

	"courierdesk/internal/entities"
	"courierdesk/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher отправляет события изменения заказов. Мутация уже закоммичена,
// поэтому ошибка отправки только логируется: клиенты догонят на следующем refetch.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      publisherLogger
}

func New(producer sarama.SyncProducer, topic string, log logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log: log.With(
			logger.NewField("component", "order-events-publisher"),
			logger.NewField("topic", topic),
		),
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) {
	if ctx.Err() != nil {
		// запрос уже отменен, но мутация прошла: событие все равно нужно
		p.log.Warn("publishing order event after request cancellation",
			logger.NewField("order", event.OrderID),
		)
	}

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		OrderEventsPublishedTotal.WithLabelValues(event.Type.String(), "encode_error").Inc()
		p.log.Error("failed to encode order event",
			logger.NewField("order", event.OrderID),
			logger.NewField("error", err),
		)
		return
	}

	// ключ по заказу: события одного заказа попадают в одну партицию по порядку
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	_, _, err = p.producer.SendMessage(msg)
	if err != nil {
		OrderEventsPublishedTotal.WithLabelValues(event.Type.String(), "error").Inc()
		p.log.Error("failed to publish order event",
			logger.NewField("order", event.OrderID),
			logger.NewField("type", event.Type.String()),
			logger.NewField("error", err),
		)
		return
	}

	OrderEventsPublishedTotal.WithLabelValues(event.Type.String(), "sent").Inc()
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
