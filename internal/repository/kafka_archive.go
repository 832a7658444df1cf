package repository

import (
	"context"
	"fmt"

	"DartWatch/internal/domain/models"
	drepo "DartWatch/internal/domain/repository"
	pkgkafka "DartWatch/pkg/kafka"
)

// KafkaArchive publishes each event to a topic, keyed by receipt number so
// re-published filings land on the same partition.
type KafkaArchive struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaArchive creates a Kafka-backed EventArchive.
func NewKafkaArchive(producer *pkgkafka.Producer, topic string) drepo.EventArchive {
	return &KafkaArchive{producer: producer, topic: topic}
}

func (a *KafkaArchive) Save(ctx context.Context, events []models.MonitoringEvent) error {
	for i := range events {
		ev := &events[i]
		if err := a.producer.Publish(ctx, a.topic, []byte(ev.Disclosure.ReceiptNo), ev); err != nil {
			return fmt.Errorf("publish event %s: %w", ev.Disclosure.ReceiptNo, err)
		}
	}
	return nil
}

func (a *KafkaArchive) Close() error {
	return a.producer.Close()
}
