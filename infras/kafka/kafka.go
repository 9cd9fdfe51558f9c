// Package kafka publishes and consumes JSON encoded events. The front desk uses it to fan
// notifications out to every running instance.
package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"frontdesk/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	dialTimeout  = 10 * time.Second
	batchTimeout = 10 * time.Millisecond
	retryBackoff = time.Second

	headerContentType = "content-type"
	contentTypeJSON   = "application/json"
)

// Message is an event before encoding. Value is marshaled to JSON.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

// Encode turns m into a kafka message for topic.
func (m Message) Encode(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	headers := []kafkaGo.Header{{Key: headerContentType, Value: []byte(contentTypeJSON)}}
	for key, val := range m.Headers {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(val)})
	}

	return kafkaGo.Message{
		Topic:   topic,
		Key:     []byte(m.Key),
		Value:   value,
		Headers: headers,
	}, nil
}

// Decode unmarshals the value of msg into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to decode message %q from %s: %w", msg.Key, msg.Topic, err)
	}

	return value, nil
}

// Handler processes one message. Returning an error leaves the offset uncommitted.
type Handler func(ctx context.Context, msg kafkaGo.Message) error

type Client interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	// Subscribe blocks until ctx is done, handing each message of topic to handle in order.
	Subscribe(ctx context.Context, group, topic string, handle Handler) error
	Close() error
}

type kafkaClientImpl struct {
	brokers []string
	group   string
	dialer  *kafkaGo.Dialer
	writer  *kafkaGo.Writer
}

// New returns nil when kafka is disabled.
func New(cfg *config.Config) Client {
	if !cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, notifications stay on this instance")

		return nil
	}

	dialer := &kafkaGo.Dialer{
		Timeout:   dialTimeout,
		DualStack: true,
	}

	transport := &kafkaGo.Transport{DialTimeout: dialTimeout}

	if cfg.Kafka.SASL.Username != "" {
		mechanism := plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}

		dialer.SASLMechanism = mechanism
		transport.SASL = mechanism
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafkaGo.RequireOne,
		AllowAutoTopicCreation: true,
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		brokers: cfg.Kafka.Brokers,
		group:   cfg.Kafka.ConsumerGroup,
		dialer:  dialer,
		writer:  writer,
	}
}

func (k *kafkaClientImpl) Publish(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	encoded := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.Encode(topic)
		if err != nil {
			return err
		}

		encoded = append(encoded, msg)
	}

	if err := k.writer.WriteMessages(ctx, encoded...); err != nil {
		return fmt.Errorf("failed to publish %d message(s) to %s: %w", len(encoded), topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(encoded)).Msg("Published messages")

	return nil
}

func (k *kafkaClientImpl) Subscribe(ctx context.Context, group, topic string, handle Handler) error {
	if topic == "" {
		return errors.New("kafka topic is required")
	}

	if group == "" {
		group = k.group
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.brokers,
		Topic:       topic,
		GroupID:     group,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to close kafka reader")
		}
	}()

	logger := log.With().Str("topic", topic).Str("group", group).Logger()
	logger.Info().Msg("Subscribed")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			logger.Error().Err(err).Msg("Failed to fetch message")

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryBackoff):
			}

			continue
		}

		if err := handle(ctx, msg); err != nil {
			logger.Warn().Err(err).Str("key", string(msg.Key)).Int64("offset", msg.Offset).Msg("Failed to handle message")

			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			logger.Error().Err(err).Int64("offset", msg.Offset).Msg("Failed to commit message")
		}
	}
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}
