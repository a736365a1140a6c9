package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Collection names the trigger collection an event refers to.
type Collection string

const (
	CollectionDefault  Collection = "default"
	CollectionDate     Collection = "date"
	CollectionSnapshot Collection = "snapshot"
)

// Action is what happened to the trigger.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionWritten Action = "written"
)

// TriggerEvent is the change notification sent to downstream consumers.
type TriggerEvent struct {
	EventID    string     `json:"event_id"`
	Collection Collection `json:"collection"`
	Action     Action     `json:"action"`
	TriggerID  string     `json:"trigger_id,omitempty"`
	Field      string     `json:"field,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Publisher emits trigger change events.
type Publisher interface {
	Publish(ctx context.Context, event TriggerEvent) error
}

// KafkaPublisher writes trigger change events to a Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewPublisher builds a Kafka-backed publisher. Messages are keyed by trigger id so changes
// to one trigger stay ordered within a partition.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  3,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Publish serialises the event and writes it synchronously.
func (p *KafkaPublisher) Publish(ctx context.Context, event TriggerEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal trigger event: %w", err)
	}

	key := event.TriggerID
	if key == "" {
		key = string(event.Collection)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		p.logger.Error("failed to publish trigger event",
			zap.String("event_id", event.EventID),
			zap.String("trigger_id", event.TriggerID),
			zap.String("action", string(event.Action)),
			zap.Error(err))
		return fmt.Errorf("write trigger event: %w", err)
	}

	p.logger.Debug("trigger event published",
		zap.String("event_id", event.EventID),
		zap.String("collection", string(event.Collection)),
		zap.String("action", string(event.Action)))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, TriggerEvent) error { return nil }
