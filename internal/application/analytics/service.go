package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/content"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/portfolio"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/valuation"
	"github.com/turtacn/CrawlValue-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/errors"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// Event types emitted by the service.
const (
	EventCrawlerDetected   = "crawler.detected"
	EventContentValued     = "content.valued"
	EventPortfolioAnalyzed = "portfolio.analyzed"
)

// Metric names recorded by the service.
const (
	metricDetectionsTotal     = "detections_total"
	metricDetectionValueUSD   = "detection_value_usd"
	metricPortfolioTotalValue = "portfolio_total_value_usd"
	metricPortfolioDetections = "portfolio_detections"
	metricContentCacheTotal   = "content_cache_requests_total"
)

// Config tunes the service's execution behaviour.
type Config struct {
	// Concurrency bounds ProcessBatch's worker pool.
	Concurrency int

	// CacheTTL is how long analyzed content metadata stays cached.
	CacheTTL time.Duration
}

// DefaultConfig returns production execution tuning.
func DefaultConfig() Config {
	return Config{
		Concurrency: 8,
		CacheTTL:    15 * time.Minute,
	}
}

// Service runs the detection-to-portfolio pipeline.
type Service struct {
	detector   *detection.Detector
	analyzer   *content.Analyzer
	calculator *valuation.Calculator
	aggregator *portfolio.Aggregator

	store     DetectionStore
	lookup    ContentLookup
	cache     Cache
	publisher EventPublisher
	metrics   MetricsCollector
	logger    logging.Logger

	cfg Config

	// now is swapped in tests for reproducible stamping.
	now func() time.Time
}

// Option customises a Service at construction.
type Option func(*Service)

// WithStore installs the detection store.
func WithStore(s DetectionStore) Option { return func(svc *Service) { svc.store = s } }

// WithContentLookup installs the external metadata source.
func WithContentLookup(l ContentLookup) Option { return func(svc *Service) { svc.lookup = l } }

// WithCache installs the content-metadata cache.
func WithCache(c Cache) Option { return func(svc *Service) { svc.cache = c } }

// WithPublisher installs the event publisher.
func WithPublisher(p EventPublisher) Option { return func(svc *Service) { svc.publisher = p } }

// WithMetrics installs the metrics collector.
func WithMetrics(m MetricsCollector) Option { return func(svc *Service) { svc.metrics = m } }

// WithLogger installs the logger.
func WithLogger(l logging.Logger) Option { return func(svc *Service) { svc.logger = l } }

// withClock overrides the wall clock; test use only.
func withClock(now func() time.Time) Option { return func(svc *Service) { svc.now = now } }

// NewService wires the pipeline.  All collaborators default to no-ops, so a
// bare NewService(detector, analyzer, calculator, aggregator, cfg) yields a
// fully-functional in-process engine.
func NewService(
	detector *detection.Detector,
	analyzer *content.Analyzer,
	calculator *valuation.Calculator,
	aggregator *portfolio.Aggregator,
	cfg Config,
	opts ...Option,
) *Service {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultConfig().CacheTTL
	}
	svc := &Service{
		detector:   detector,
		analyzer:   analyzer,
		calculator: calculator,
		aggregator: aggregator,
		store:      noopStore{},
		lookup:     noopLookup{},
		cache:      noopCache{},
		publisher:  noopPublisher{},
		metrics:    noopMetrics{},
		logger:     logging.NewNopLogger(),
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.logger = svc.logger.Named("analytics")
	return svc
}

// ProcessAccess runs one access event through the full pipeline.  Non-bot
// traffic is classified and counted but never priced or persisted.  Store and
// publisher failures are logged and do not fail the call; the returned item
// is always the computed result.
func (s *Service) ProcessAccess(ctx context.Context, event detection.AccessEvent) (portfolio.EnhancedDetection, error) {
	det := s.detector.Analyze(event)
	s.stamp(&det, event)

	s.metrics.IncCounter(metricDetectionsTotal, map[string]string{
		"company": det.Company,
		"is_bot":  boolLabel(det.IsBot),
	})

	if !det.IsBot {
		return portfolio.EnhancedDetection{Detection: det}, nil
	}

	md := s.contentMetadata(ctx, event.URI)
	val := s.calculator.CalculateContentValue(det, md)
	item := portfolio.EnhancedDetection{Detection: det, Valuation: val}

	estimated, _ := val.EstimatedValue.Float64()
	s.metrics.ObserveHistogram(metricDetectionValueUSD, estimated, map[string]string{
		"company":      det.Company,
		"content_type": string(md.Type),
	})

	if err := s.store.Save(ctx, item); err != nil {
		s.logger.Error("failed to persist detection",
			logging.String("detection_id", string(det.ID)),
			logging.Err(err),
		)
	}
	s.publish(ctx, EventCrawlerDetected, det.Company, det)
	s.publish(ctx, EventContentValued, det.Company, item)

	s.logger.Info("crawler access priced",
		logging.String("company", det.Company),
		logging.String("uri", event.URI),
		logging.String("value", val.EstimatedValue.StringFixed(2)),
		logging.Int("confidence", det.Confidence),
	)
	return item, nil
}

// ProcessBatch processes events concurrently under the configured worker
// bound, preserving input order in the result.  The first context
// cancellation aborts remaining work.
func (s *Service) ProcessBatch(ctx context.Context, events []detection.AccessEvent) ([]portfolio.EnhancedDetection, error) {
	results := make([]portfolio.EnhancedDetection, len(events))
	sem := make(chan struct{}, s.cfg.Concurrency)
	var wg sync.WaitGroup

	for i, event := range events {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, errors.Wrap(err, errors.ErrCodeTimeout, "batch processing aborted")
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, event detection.AccessEvent) {
			defer wg.Done()
			defer func() { <-sem }()
			item, err := s.ProcessAccess(ctx, event)
			if err != nil {
				s.logger.Error("batch item failed",
					logging.Int("index", i),
					logging.Err(err),
				)
				return
			}
			results[i] = item
		}(i, event)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTimeout, "batch processing aborted")
	}
	return results, nil
}

// AnalyzePortfolio aggregates stored detections within r into a portfolio
// report, evaluated as of now.
func (s *Service) AnalyzePortfolio(ctx context.Context, r common.DateRange, now time.Time) (portfolio.Analysis, error) {
	items, err := s.store.List(ctx, r)
	if err != nil {
		return portfolio.Analysis{}, errors.Wrap(err, errors.ErrCodePortfolioStoreFailure, "failed to list detections")
	}

	analysis := s.aggregator.CalculatePortfolioValue(items, now)

	total, _ := analysis.TotalValue.Float64()
	s.metrics.SetGauge(metricPortfolioTotalValue, total, nil)
	s.metrics.SetGauge(metricPortfolioDetections, float64(analysis.DetectionCount), nil)

	s.publish(ctx, EventPortfolioAnalyzed, analysis.TopCompany, analysis)

	s.logger.Info("portfolio analyzed",
		logging.Int("detections", analysis.DetectionCount),
		logging.String("total_value", analysis.TotalValue.StringFixed(2)),
		logging.Float64("growth_rate", analysis.Projection.GrowthRate),
	)
	return analysis, nil
}

// stamp assigns identity and the detection time.  The event's own timestamp
// wins when present so replayed logs keep their original chronology.
func (s *Service) stamp(det *detection.Detection, event detection.AccessEvent) {
	det.ID = common.NewID()
	if !time.Time(event.Timestamp).IsZero() {
		det.DetectedAt = event.Timestamp
		return
	}
	det.DetectedAt = common.Timestamp(s.now())
}

// contentMetadata resolves analyzed metadata for uri, cache-aside.  Lookup
// and cache failures degrade to URI-only analysis.
func (s *Service) contentMetadata(ctx context.Context, uri string) content.Metadata {
	cacheKey := "content:" + uri

	var cached content.Metadata
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		s.logger.Warn("content cache read failed", logging.String("uri", uri), logging.Err(err))
	} else if hit {
		s.metrics.IncCounter(metricContentCacheTotal, map[string]string{"result": "hit"})
		return cached
	}
	s.metrics.IncCounter(metricContentCacheTotal, map[string]string{"result": "miss"})

	ext, err := s.lookup.Lookup(ctx, uri)
	if err != nil {
		s.logger.Warn("external metadata lookup failed", logging.String("uri", uri), logging.Err(err))
		ext = nil
	}

	md := s.analyzer.AnalyzeContent(uri, ext)

	if err := s.cache.Set(ctx, cacheKey, md, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("content cache write failed", logging.String("uri", uri), logging.Err(err))
	}
	return md
}

func (s *Service) publish(ctx context.Context, eventType, key string, payload interface{}) {
	if err := s.publisher.Publish(ctx, eventType, key, payload); err != nil {
		s.logger.Error("event publish failed",
			logging.String("event_type", eventType),
			logging.Err(err),
		)
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

//Personal.AI order the ending
