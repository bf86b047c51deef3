// Package config defines all configuration structures for the
// CrawlValue-Intelligence platform.  No I/O or parsing logic lives here —
// only plain data types and validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string   `mapstructure:"format"` // "json" | "console"
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// KafkaConfig holds the detection-event publisher parameters.  Publishing is
// optional; when Enabled is false the application wires a no-op publisher.
type KafkaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Acks         string        `mapstructure:"acks"` // "none" | "one" | "all"
	MaxRetries   int           `mapstructure:"max_retries"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Source       string        `mapstructure:"source"` // event envelope source identifier
}

// RedisConfig holds the content-metadata cache parameters.  Caching is
// optional; when Enabled is false the application wires a no-op cache.
type RedisConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	KeyPrefix  string        `mapstructure:"key_prefix"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

// SignatureConfig declares one known AI-crawler company and its user-agent
// match tokens.  Declaration order is authoritative: the first matching
// company in the configured list wins.
type SignatureConfig struct {
	Company    string   `mapstructure:"company"`
	BotType    string   `mapstructure:"bot_type"` // e.g. "AI Training Crawler"
	Patterns   []string `mapstructure:"patterns"` // case-insensitive substrings, checked in order
	RiskLevel  string   `mapstructure:"risk_level"`
	Commercial bool     `mapstructure:"commercial"`
}

// DetectionConfig carries the signature registry and the heuristic scoring
// parameters for unknown agents.
type DetectionConfig struct {
	// Overrides are checked before Signatures, letting operators shadow a
	// built-in entry without replacing the whole registry.
	Overrides  []SignatureConfig `mapstructure:"overrides"`
	Signatures []SignatureConfig `mapstructure:"signatures"`

	BotIndicators     []string `mapstructure:"bot_indicators"`
	BrowserIndicators []string `mapstructure:"browser_indicators"`

	IndicatorScore         int `mapstructure:"indicator_score"`          // added per bot-indicator hit
	NoBrowserScore         int `mapstructure:"no_browser_score"`         // added when no browser identifier present
	BotThreshold           int `mapstructure:"bot_threshold"`            // suspicion score must exceed this
	MediumRiskThreshold    int `mapstructure:"medium_risk_threshold"`    // above this, heuristic bots are medium risk
	SignatureConfidence    int `mapstructure:"signature_confidence"`     // confidence for registry matches
	MaxHeuristicConfidence int `mapstructure:"max_heuristic_confidence"` // confidence cap for heuristic matches
}

// RateBand is a configured low/mid/high dollar band for one content type.
// The mid rate is the base rate applied by the calculator; low and high bound
// market-position labelling.
type RateBand struct {
	Low  float64 `mapstructure:"low"`
	Mid  float64 `mapstructure:"mid"`
	High float64 `mapstructure:"high"`
}

// MultiplierBand clamps a scaling factor to [Min, Max].
type MultiplierBand struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// MarketRange describes a named reference market's typical licensing range.
type MarketRange struct {
	Low  float64 `mapstructure:"low"`
	High float64 `mapstructure:"high"`
}

// ValuationConfig carries the market-rate table and multiplier tuning.
// All values are an operator surface calibrated against real licensing
// benchmarks, not policy the engine hard-codes.
type ValuationConfig struct {
	BaseRates map[string]RateBand `mapstructure:"base_rates"` // keyed by content type (+ "academic")

	RiskMultipliers  map[string]float64 `mapstructure:"risk_multipliers"` // keyed by risk level
	CommercialUplift float64            `mapstructure:"commercial_uplift"`

	QualityBand   MultiplierBand `mapstructure:"quality_band"`
	AuthorityBand MultiplierBand `mapstructure:"authority_band"`

	TemporalMultipliers map[string]float64 `mapstructure:"temporal_multipliers"`

	LicensingLowThreshold  float64 `mapstructure:"licensing_low_threshold"`
	LicensingHighThreshold float64 `mapstructure:"licensing_high_threshold"`

	ReferenceMarkets map[string]MarketRange `mapstructure:"reference_markets"`
}

// PortfolioConfig carries aggregation and revenue-projection tuning.
type PortfolioConfig struct {
	HighValueThreshold     float64 `mapstructure:"high_value_threshold"`
	TrailingWindowDays     int     `mapstructure:"trailing_window_days"`
	ProjectionConservative float64 `mapstructure:"projection_conservative"`
	ProjectionOptimistic   float64 `mapstructure:"projection_optimistic"`
	GrowthRateCap          float64 `mapstructure:"growth_rate_cap"`
}

// WorkerConfig holds batch-processing execution parameters.
type WorkerConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the entire platform.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Detection DetectionConfig `mapstructure:"detection"`
	Valuation ValuationConfig `mapstructure:"valuation"`
	Portfolio PortfolioConfig `mapstructure:"portfolio"`
	Worker    WorkerConfig    `mapstructure:"worker"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	// Kafka
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka.brokers must contain at least one broker when kafka is enabled")
	}

	// Redis
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis is enabled")
	}

	// Detection
	if len(c.Detection.Signatures) == 0 {
		return fmt.Errorf("config: detection.signatures must not be empty")
	}
	for i, sig := range c.Detection.Signatures {
		if sig.Company == "" {
			return fmt.Errorf("config: detection.signatures[%d].company is required", i)
		}
		if len(sig.Patterns) == 0 {
			return fmt.Errorf("config: detection.signatures[%d] (%s) has no patterns", i, sig.Company)
		}
	}
	if c.Detection.SignatureConfidence < 0 || c.Detection.SignatureConfidence > 100 {
		return fmt.Errorf("config: detection.signature_confidence %d is out of range [0, 100]", c.Detection.SignatureConfidence)
	}
	if c.Detection.MaxHeuristicConfidence < 0 || c.Detection.MaxHeuristicConfidence > 100 {
		return fmt.Errorf("config: detection.max_heuristic_confidence %d is out of range [0, 100]", c.Detection.MaxHeuristicConfidence)
	}
	if c.Detection.BotThreshold < 0 {
		return fmt.Errorf("config: detection.bot_threshold must be ≥ 0, got %d", c.Detection.BotThreshold)
	}

	// Valuation
	if _, ok := c.Valuation.BaseRates["article"]; !ok {
		return fmt.Errorf("config: valuation.base_rates must contain the \"article\" fallback entry")
	}
	for key, band := range c.Valuation.BaseRates {
		if band.Mid < 0 || band.Low < 0 || band.High < 0 {
			return fmt.Errorf("config: valuation.base_rates[%s] contains a negative rate", key)
		}
		if band.Low > band.High {
			return fmt.Errorf("config: valuation.base_rates[%s] low %.2f exceeds high %.2f", key, band.Low, band.High)
		}
	}
	for _, level := range []string{"low", "medium", "high"} {
		if _, ok := c.Valuation.RiskMultipliers[level]; !ok {
			return fmt.Errorf("config: valuation.risk_multipliers missing entry for %q", level)
		}
	}
	if c.Valuation.QualityBand.Min > c.Valuation.QualityBand.Max {
		return fmt.Errorf("config: valuation.quality_band min exceeds max")
	}
	if c.Valuation.AuthorityBand.Min > c.Valuation.AuthorityBand.Max {
		return fmt.Errorf("config: valuation.authority_band min exceeds max")
	}
	if c.Valuation.LicensingLowThreshold > c.Valuation.LicensingHighThreshold {
		return fmt.Errorf("config: valuation.licensing_low_threshold %.2f exceeds licensing_high_threshold %.2f",
			c.Valuation.LicensingLowThreshold, c.Valuation.LicensingHighThreshold)
	}

	// Portfolio
	if c.Portfolio.TrailingWindowDays < 1 {
		return fmt.Errorf("config: portfolio.trailing_window_days must be ≥ 1, got %d", c.Portfolio.TrailingWindowDays)
	}
	if c.Portfolio.HighValueThreshold < 0 {
		return fmt.Errorf("config: portfolio.high_value_threshold must be ≥ 0")
	}

	// Worker
	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("config: worker.concurrency must be ≥ 1, got %d", c.Worker.Concurrency)
	}

	return nil
}

//Personal.AI order the ending
