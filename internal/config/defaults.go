package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Built-in signature registry
// ─────────────────────────────────────────────────────────────────────────────

// DefaultSignatures returns the built-in AI-crawler registry.  Order matters:
// the detector walks the slice front to back and the first company whose
// pattern matches wins, so more specific operators are listed before the
// catch-all archive crawlers.
func DefaultSignatures() []SignatureConfig {
	return []SignatureConfig{
		{
			Company:    "OpenAI",
			BotType:    "AI Training Crawler",
			Patterns:   []string{"GPTBot", "ChatGPT-User", "OAI-SearchBot"},
			RiskLevel:  "high",
			Commercial: true,
		},
		{
			Company:    "Anthropic",
			BotType:    "AI Training Crawler",
			Patterns:   []string{"ClaudeBot", "anthropic-ai", "Claude-Web", "Claude-User"},
			RiskLevel:  "high",
			Commercial: true,
		},
		{
			Company:    "Google",
			BotType:    "AI Training Crawler",
			Patterns:   []string{"Google-Extended", "GoogleOther"},
			RiskLevel:  "high",
			Commercial: true,
		},
		{
			Company:    "Meta",
			BotType:    "AI Training Crawler",
			Patterns:   []string{"Meta-ExternalAgent", "FacebookBot"},
			RiskLevel:  "high",
			Commercial: true,
		},
		{
			Company:    "Perplexity",
			BotType:    "AI Search Crawler",
			Patterns:   []string{"PerplexityBot"},
			RiskLevel:  "high",
			Commercial: true,
		},
		{
			Company:    "ByteDance",
			BotType:    "AI Training Crawler",
			Patterns:   []string{"Bytespider"},
			RiskLevel:  "high",
			Commercial: true,
		},
		{
			Company:    "Apple",
			BotType:    "AI Training Crawler",
			Patterns:   []string{"Applebot-Extended"},
			RiskLevel:  "high",
			Commercial: true,
		},
		{
			Company:    "Cohere",
			BotType:    "AI Training Crawler",
			Patterns:   []string{"cohere-ai"},
			RiskLevel:  "high",
			Commercial: true,
		},
		{
			Company:    "Amazon",
			BotType:    "AI Training Crawler",
			Patterns:   []string{"Amazonbot"},
			RiskLevel:  "medium",
			Commercial: true,
		},
		{
			Company:    "Diffbot",
			BotType:    "AI Data Extraction Crawler",
			Patterns:   []string{"Diffbot"},
			RiskLevel:  "medium",
			Commercial: true,
		},
		{
			Company:    "Common Crawl",
			BotType:    "Archive Crawler",
			Patterns:   []string{"CCBot"},
			RiskLevel:  "medium",
			Commercial: false,
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Full default tree
// ─────────────────────────────────────────────────────────────────────────────

// DefaultConfig returns a fully-populated Config with production defaults.
// Rate tables are calibrated against published content-licensing benchmarks
// (stock imagery, music sync, academic publishing, news syndication) and are
// expected to be retuned per deployment.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:            "info",
			Format:           "json",
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		},
		Kafka: KafkaConfig{
			Enabled:      false,
			Brokers:      []string{"localhost:9092"},
			Acks:         "all",
			MaxRetries:   3,
			BatchTimeout: 100 * time.Millisecond,
			WriteTimeout: 10 * time.Second,
			Source:       "crawlvalue-intelligence",
		},
		Redis: RedisConfig{
			Enabled:    false,
			Addr:       "localhost:6379",
			DB:         0,
			KeyPrefix:  "crawlvalue",
			DefaultTTL: 15 * time.Minute,
		},
		Detection: DetectionConfig{
			Signatures:        DefaultSignatures(),
			BotIndicators:     []string{"bot", "crawler", "spider", "scraper", "fetch"},
			BrowserIndicators: []string{"Mozilla", "Chrome", "Safari", "Firefox", "Edge"},

			IndicatorScore:         30,
			NoBrowserScore:         25,
			BotThreshold:           50,
			MediumRiskThreshold:    70,
			SignatureConfidence:    95,
			MaxHeuristicConfidence: 85,
		},
		Valuation: ValuationConfig{
			BaseRates: map[string]RateBand{
				"article":  {Low: 0.05, Mid: 0.50, High: 2.50},
				"image":    {Low: 0.10, Mid: 1.25, High: 5.00},
				"video":    {Low: 0.50, Mid: 3.00, High: 15.00},
				"audio":    {Low: 0.25, Mid: 2.00, High: 10.00},
				"academic": {Low: 1.00, Mid: 5.00, High: 50.00},
			},
			RiskMultipliers: map[string]float64{
				"low":    1.0,
				"medium": 1.5,
				"high":   2.5,
			},
			CommercialUplift: 1.25,
			QualityBand:      MultiplierBand{Min: 0.5, Max: 2.0},
			AuthorityBand:    MultiplierBand{Min: 0.6, Max: 1.6},
			TemporalMultipliers: map[string]float64{
				"evergreen": 1.4,
				"current":   1.0,
				"stale":     0.7,
			},
			LicensingLowThreshold:  1.00,
			LicensingHighThreshold: 10.00,
			ReferenceMarkets: map[string]MarketRange{
				"stock_imagery":       {Low: 130, High: 500},
				"music_licensing":     {Low: 100, High: 2000},
				"academic_publishing": {Low: 200, High: 5450},
				"news_syndication":    {Low: 50, High: 750},
			},
		},
		Portfolio: PortfolioConfig{
			HighValueThreshold:     10.00,
			TrailingWindowDays:     7,
			ProjectionConservative: 0.7,
			ProjectionOptimistic:   1.5,
			GrowthRateCap:          5.0,
		},
		Worker: WorkerConfig{
			Concurrency: 8,
		},
	}
}

//Personal.AI order the ending
