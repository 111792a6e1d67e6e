package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const sendEventType = "token_send"

// SendEvent is published when a send record reaches done or fail.
type SendEvent struct {
	UserID               string `json:"user_id"`
	SortKey              int64  `json:"sort_key"`
	SendStatus           string `json:"send_status"`
	SendValue            string `json:"send_value"`
	RelayTransactionHash string `json:"relay_transaction_hash,omitempty"`
}

type message struct {
	Type string    `json:"type"`
	Data SendEvent `json:"data"`
	Time time.Time `json:"time"`
}

type KafkaPublisher struct {
	logs   *zap.SugaredLogger
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaWriter returns a synchronous writer that waits for every in-sync replica.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
}

func NewKafkaPublisher(logger *zap.SugaredLogger, writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		logs:   logger,
		writer: writer,
		now:    time.Now,
	}
}

// PublishSendEvent writes event keyed by user id so a user's events stay ordered.
func (k *KafkaPublisher) PublishSendEvent(ctx context.Context, event SendEvent) error {
	msg := message{
		Type: sendEventType,
		Data: event,
		Time: k.now().UTC(),
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal send event: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish send event: %w", err)
	}

	k.logs.Infow("send event published",
		"user_id", event.UserID,
		"sort_key", event.SortKey,
		"send_status", event.SendStatus)

	return nil
}

func (k *KafkaPublisher) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishSendEvent(context.Context, SendEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
