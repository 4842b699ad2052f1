package kafka

import (
	"context"
	"fmt"
	"time"

	"courierdesk/pkg/logger"
	"courierdesk/pkg/retrier"
	"courierdesk/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

var connectRetry = retrier.Config{
	InitialInterval: time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
}

// waitForTopic ждет, пока брокеры ответят и у топика появятся партиции.
// Пока топик создается автоматически, брокер отвечает UnknownTopicOrPartition, это тоже повод подождать.
func waitForTopic(ctx context.Context, log logger.Logger, brokers []string, topic string, cfg *sarama.Config) error {
	retryCfg := connectRetry
	retryCfg.Notify = func(err error, wait time.Duration) {
		log.Warn("kafka is not ready yet",
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		)
	}

	var partitions int
	err := backoff_adapter.New(retryCfg).ExecuteWithContext(ctx, func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close kafka probe client", logger.NewField("error", err))
			}
		}()

		if err := client.RefreshMetadata(topic); err != nil {
			return err
		}
		ids, err := client.Partitions(topic)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return fmt.Errorf("topic %s has no partitions", topic)
		}
		partitions = len(ids)
		return nil
	})
	if err != nil {
		log.Error("kafka unreachable", logger.NewField("error", err))
		return fmt.Errorf("wait for topic %s: %w", topic, err)
	}

	log.Info("kafka connection established", logger.NewField("partitions", partitions))
	return nil
}
