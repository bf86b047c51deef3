// Package kafka publishes platform events to Kafka using segmentio/kafka-go.
// Publishing is best-effort from the caller's perspective: the application
// layer logs publish failures and continues, so a broker outage never blocks
// detection or valuation.
package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/turtacn/CrawlValue-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/errors"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// Event is the envelope wrapped around every published payload.
type Event struct {
	ID        common.ID        `json:"id"`
	Type      string           `json:"type"`
	Source    string           `json:"source"`
	Timestamp common.Timestamp `json:"timestamp"`
	Payload   json.RawMessage  `json:"payload"`
}

// NewEvent wraps payload in an envelope, marshalling it immediately so
// serialization failures surface at the call site rather than inside the
// writer goroutine.
func NewEvent(eventType, source string, payload interface{}) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal event payload").
			WithDetail(eventType)
	}
	return Event{
		ID:        common.NewID(),
		Type:      eventType,
		Source:    source,
		Timestamp: common.Timestamp(time.Now().UTC()),
		Payload:   raw,
	}, nil
}

// ProducerConfig holds writer construction parameters.
type ProducerConfig struct {
	Brokers      []string
	Acks         string // "none" | "one" | "all"
	MaxRetries   int
	BatchTimeout time.Duration
	WriteTimeout time.Duration
	Source       string
}

// Producer publishes envelopes to Kafka.  One writer serves all topics; the
// topic is set per message.  Safe for concurrent use.
type Producer struct {
	writer *kafkago.Writer
	source string
	logger logging.Logger

	mu     sync.Mutex
	closed bool
}

// NewProducer constructs a Producer.
func NewProducer(cfg ProducerConfig, logger logging.Logger) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "kafka producer requires at least one broker")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 100 * time.Millisecond
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	acks := kafkago.RequireAll
	switch cfg.Acks {
	case "none":
		acks = kafkago.RequireNone
	case "one":
		acks = kafkago.RequireOne
	}

	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Balancer:     &kafkago.Hash{},
		RequiredAcks: acks,
		MaxAttempts:  cfg.MaxRetries + 1,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Compression:  kafkago.Snappy,
	}

	return &Producer{
		writer: writer,
		source: cfg.Source,
		logger: logger.Named("kafka"),
	}, nil
}

// Publish wraps payload in an envelope and writes it to topic.  The key
// partitions related events together (typically the crawler company).
func (p *Producer) Publish(ctx context.Context, topic, eventType, key string, payload interface{}) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return errors.New(errors.ErrCodeProducerClosed, "kafka producer is closed")
	}
	p.mu.Unlock()

	event, err := NewEvent(eventType, p.source, payload)
	if err != nil {
		return err
	}
	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal event envelope")
	}

	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "source", Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, errors.ErrCodePublishFailed, "failed to publish event").
			WithDetail(topic)
	}

	p.logger.Debug("event published",
		logging.String("topic", topic),
		logging.String("event_type", eventType),
		logging.String("event_id", string(event.ID)),
	)
	return nil
}

// Close flushes pending messages and releases the writer.  Idempotent.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if err := p.writer.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodePublishFailed, "failed to close kafka writer")
	}
	return nil
}

//Personal.AI order the ending
