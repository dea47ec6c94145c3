package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"

	"github.com/go-ddd-example/order-service/internal/config"
	"github.com/go-ddd-example/order-service/internal/domain"
)

var (
	eventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kafka_publisher",
		Name:      "events_published_total",
		Help:      "Total number of domain events published to Kafka.",
	})

	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kafka_publisher",
		Name:      "publish_failures_total",
		Help:      "Total number of failed publish attempts.",
	})
)

// KafkaPublisher writes domain events to a topic as JSON envelopes,
// keyed by order id so events of one order stay in one partition.
type KafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		env := newEnvelope(event)
		value, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", event.EventName(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(env.OrderID),
			Value: value,
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		publishFailures.Inc()
		return fmt.Errorf("failed to publish events: %w", err)
	}

	eventsPublished.Add(float64(len(messages)))
	p.logger.Debug("events published", slog.Int("count", len(messages)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
