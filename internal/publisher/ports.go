package publisher

import (
	"context"

	"github.com/segmentio/kafka-go"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// MessageWriter is satisfied by *kafka.Writer.
//
//counterfeiter:generate -o fake -fake-name MessageWriter . MessageWriter
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
