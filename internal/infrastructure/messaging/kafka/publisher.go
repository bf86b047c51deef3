package kafka

import "context"

// EventBus adapts a Producer to the application layer's event-type based
// publishing contract, resolving the topic per event type.
type EventBus struct {
	producer *Producer
}

// NewEventBus wraps producer.
func NewEventBus(producer *Producer) *EventBus {
	return &EventBus{producer: producer}
}

// Publish routes the payload to the topic registered for eventType.
func (b *EventBus) Publish(ctx context.Context, eventType, key string, payload interface{}) error {
	return b.producer.Publish(ctx, TopicFor(eventType), eventType, key, payload)
}

// Close releases the underlying producer.
func (b *EventBus) Close() error {
	return b.producer.Close()
}

//Personal.AI order the ending
