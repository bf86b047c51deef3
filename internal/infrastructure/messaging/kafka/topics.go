package kafka

// Topic names for the platform's event streams.  Downstream consumers
// (billing exports, alerting, warehouse sinks) subscribe by topic.
const (
	// TopicCrawlerDetected carries every bot-positive detection.
	TopicCrawlerDetected = "crawlvalue.crawler.detected"

	// TopicContentValued carries per-detection valuations.
	TopicContentValued = "crawlvalue.content.valued"

	// TopicPortfolioAnalyzed carries completed portfolio analyses.
	TopicPortfolioAnalyzed = "crawlvalue.portfolio.analyzed"
)

// Event types carried in the envelope's Type field.
const (
	EventTypeCrawlerDetected   = "crawler.detected"
	EventTypeContentValued     = "content.valued"
	EventTypePortfolioAnalyzed = "portfolio.analyzed"
)

// TopicFor maps an event type onto its stream.  Unknown types land on the
// detection topic so no event is silently dropped.
func TopicFor(eventType string) string {
	switch eventType {
	case EventTypeContentValued:
		return TopicContentValued
	case EventTypePortfolioAnalyzed:
		return TopicPortfolioAnalyzed
	default:
		return TopicCrawlerDetected
	}
}

//Personal.AI order the ending
