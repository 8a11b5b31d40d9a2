package storage

import (
	"context"
	"encoding/json"
	"time"

	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/service"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const LineageExtendedEvent = "lineage_extended"

type LineageEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Lineage   string    `json:"lineage"`
	Hashes    []string  `json:"hashes"`
	Added     []string  `json:"added"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaLineagePublisher announces lineage growth so that downstream
// consumers, such as dish notifications, learn about new sightings.
type KafkaLineagePublisher struct {
	Writer MessageWriter
}

func NewKafkaLineagePublisher(writer MessageWriter) *KafkaLineagePublisher {
	return &KafkaLineagePublisher{Writer: writer}
}

func (p *KafkaLineagePublisher) PublishGrowth(ctx context.Context, growth domain.LineageGrowth) error {
	payload, err := json.Marshal(LineageEvent{
		ID:        uuid.NewString(),
		Type:      LineageExtendedEvent,
		Lineage:   growth.Name,
		Hashes:    growth.Hashes(),
		Added:     growth.Added,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(growth.Name),
		Value: payload,
	})
}

var _ service.LineagePublisher = (*KafkaLineagePublisher)(nil)
