// Package analytics orchestrates the full pipeline: detect, classify, price,
// persist, publish, and aggregate.  Collaborators are declared as ports with
// no-op defaults so the core pipeline runs with zero infrastructure.
package analytics

import (
	"context"
	"time"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/content"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/portfolio"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// DetectionStore persists priced detections and lists them for aggregation.
type DetectionStore interface {
	Save(ctx context.Context, item portfolio.EnhancedDetection) error
	List(ctx context.Context, r common.DateRange) ([]portfolio.EnhancedDetection, error)
}

// ContentLookup resolves externally-sourced metadata for a URI.  A nil result
// with a nil error means "no external metadata known"; the analyzer then
// works from the URI alone.
type ContentLookup interface {
	Lookup(ctx context.Context, uri string) (*content.ExternalMetadata, error)
}

// Cache is the optional read-through cache for analyzed content metadata.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// EventPublisher emits platform events.  Implementations must tolerate
// best-effort semantics: the service logs failures and continues.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload interface{}) error
}

// MetricsCollector records operational metrics.
type MetricsCollector interface {
	IncCounter(name string, labels map[string]string)
	ObserveHistogram(name string, value float64, labels map[string]string)
	SetGauge(name string, value float64, labels map[string]string)
}

// ─────────────────────────────────────────────────────────────────────────────
// No-op defaults
// ─────────────────────────────────────────────────────────────────────────────

type noopStore struct{}

func (noopStore) Save(context.Context, portfolio.EnhancedDetection) error { return nil }
func (noopStore) List(context.Context, common.DateRange) ([]portfolio.EnhancedDetection, error) {
	return nil, nil
}

type noopLookup struct{}

func (noopLookup) Lookup(context.Context, string) (*content.ExternalMetadata, error) {
	return nil, nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, string, interface{}) error { return nil }

type noopMetrics struct{}

func (noopMetrics) IncCounter(string, map[string]string)                {}
func (noopMetrics) ObserveHistogram(string, float64, map[string]string) {}
func (noopMetrics) SetGauge(string, float64, map[string]string)         {}

//Personal.AI order the ending
