package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// Producer streams listing events. Disabled producers drop messages
// silently; mock mode logs them without a broker.
type Producer struct {
	Writer   *kafka.Writer
	Enabled  bool
	MockMode bool
}

func NewProducer(brokers []string, enabled, mockMode bool) *Producer {
	p := &Producer{Enabled: enabled, MockMode: mockMode}
	if enabled && !mockMode {
		p.Writer = kafka.NewWriter(kafka.WriterConfig{
			Brokers: brokers,
		})
	}
	return p
}

func (p *Producer) Publish(topic, key string, value []byte) error {
	if !p.Enabled {
		return nil
	}
	if p.MockMode {
		fmt.Printf("Publishing to Kafka (mock) [%s]: %s\n", topic, string(value))
		return nil
	}
	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: value,
		},
	)
}

func (p *Producer) Close() error {
	if p.Writer != nil {
		return p.Writer.Close()
	}
	return nil
}
