package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Consumer tails the trade topic. Used by the tape reader; the engine
// itself never consumes from Kafka.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, group string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  group,
			MinBytes: 1,
			MaxBytes: 10 << 20,
		}),
	}
}

// Next blocks for the next message and commits it.
func (c *Consumer) Next(ctx context.Context) (key, value []byte, err error) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return m.Key, m.Value, nil
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
