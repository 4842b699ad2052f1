package kafka

import (
	"fmt"
	"os"
	"strings"

	"github.com/IBM/sarama"
)

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version
	cfg.ClientID = clientID

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}

	// SyncProducer требует оба канала результатов.
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerRetryMax
	cfg.Producer.Idempotent = false

	return cfg, nil
}

// Brokers разбирает KAFKA_BROKERS вида "host1:9092, host2:9092".
func Brokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

// InstanceGroupID группа на экземпляр сервиса: каждая реплика должна получить
// все события, иначе SSE подписчики на других репликах пропустят refetch.
func InstanceGroupID(group string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return group
	}
	return group + "-" + host
}
