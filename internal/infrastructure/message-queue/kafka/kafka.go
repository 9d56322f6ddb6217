package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MedAmineFouzai/BuilderServiceRest/config"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	circuitbreaker "github.com/MedAmineFouzai/BuilderServiceRest/internal/infrastructure/circuit-breaker"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           publishTimeout,
		MaxAttempts:            1,
	}
}

const publishTimeout = 2 * time.Second

// EventPublisher writes entity change events keyed by entity id. Writes go
// through a circuit breaker so an unreachable broker fails fast, and each
// write is bounded by timeout.
type EventPublisher struct {
	writer  MessageWriter
	cb      *gobreaker.CircuitBreaker[struct{}]
	timeout time.Duration
}

func CreateEventPublisher(writer MessageWriter) *EventPublisher {
	return &EventPublisher{
		writer:  writer,
		cb:      circuitbreaker.CreateCircuitBreaker[struct{}]("kafka-event-publisher"),
		timeout: publishTimeout,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err = p.cb.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(writeCtx, kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", eventType).Msg("")
		return err
	}

	return nil
}
