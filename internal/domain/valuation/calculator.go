package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/content"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// fallbackRateKey is used when a content type has no configured band.
const fallbackRateKey = "article"

// academicRateKey is the rate table entry applied to academic articles, which
// command a premium over general text in licensing markets.
const academicRateKey = "academic"

// Config carries the full pricing surface: rate bands, multiplier tuning,
// licensing thresholds, and reference-market ranges.
type Config struct {
	BaseRates map[string]RateBand

	RiskMultipliers  map[common.RiskLevel]float64
	CommercialUplift float64

	QualityBand   Band
	AuthorityBand Band

	TemporalMultipliers map[common.TemporalValue]float64

	LicensingLowThreshold  decimal.Decimal
	LicensingHighThreshold decimal.Decimal

	ReferenceMarkets map[string]MarketRange
}

// DefaultConfig returns the production pricing surface.  Figures are
// calibrated against published licensing benchmarks and retuned per
// deployment through the configuration layer.
func DefaultConfig() Config {
	band := func(low, mid, high string) RateBand {
		return RateBand{
			Low:  decimal.RequireFromString(low),
			Mid:  decimal.RequireFromString(mid),
			High: decimal.RequireFromString(high),
		}
	}
	return Config{
		BaseRates: map[string]RateBand{
			"article":  band("0.05", "0.50", "2.50"),
			"image":    band("0.10", "1.25", "5.00"),
			"video":    band("0.50", "3.00", "15.00"),
			"audio":    band("0.25", "2.00", "10.00"),
			"academic": band("1.00", "5.00", "50.00"),
		},
		RiskMultipliers: map[common.RiskLevel]float64{
			common.RiskLow:    1.0,
			common.RiskMedium: 1.5,
			common.RiskHigh:   2.5,
		},
		CommercialUplift: 1.25,
		QualityBand:      Band{Min: 0.5, Max: 2.0},
		AuthorityBand:    Band{Min: 0.6, Max: 1.6},
		TemporalMultipliers: map[common.TemporalValue]float64{
			common.TemporalEvergreen: 1.4,
			common.TemporalCurrent:   1.0,
			common.TemporalStale:     0.7,
		},
		LicensingLowThreshold:  decimal.RequireFromString("1.00"),
		LicensingHighThreshold: decimal.RequireFromString("10.00"),
		ReferenceMarkets: map[string]MarketRange{
			"stock_imagery":       {Low: decimal.NewFromInt(130), High: decimal.NewFromInt(500)},
			"music_licensing":     {Low: decimal.NewFromInt(100), High: decimal.NewFromInt(2000)},
			"academic_publishing": {Low: decimal.NewFromInt(200), High: decimal.NewFromInt(5450)},
			"news_syndication":    {Low: decimal.NewFromInt(50), High: decimal.NewFromInt(750)},
		},
	}
}

// Calculator prices detections.  CalculateContentValue is deterministic and
// total: identical inputs always produce identical valuations, and degenerate
// inputs fall back to neutral factors rather than erroring.
type Calculator struct {
	cfg Config
}

// NewCalculator constructs a Calculator.  A zero-valued cfg falls back to
// DefaultConfig so the calculator can never divide by an empty rate table.
func NewCalculator(cfg Config) *Calculator {
	if len(cfg.BaseRates) == 0 {
		cfg = DefaultConfig()
	}
	return &Calculator{cfg: cfg}
}

// CalculateContentValue prices one detected access to the given content.
// The base rate is the mid band for the content's rate key; risk, commercial,
// quality, authority, and temporal multipliers are applied on top; the result
// is rounded to the cent and floored at zero.
func (c *Calculator) CalculateContentValue(det detection.Detection, md content.Metadata) Valuation {
	rateKey := c.rateKey(md)
	band := c.band(rateKey)

	riskMult := c.riskMultiplier(det.RiskLevel)
	commercialMult := 1.0
	if det.Commercial {
		commercialMult = c.cfg.CommercialUplift
	}
	qualityMult := scoreMultiplier(md.QualityScore, c.cfg.QualityBand)
	authorityMult := scoreMultiplier(md.AuthorityScore, c.cfg.AuthorityBand)
	temporalMult := c.temporalMultiplier(md.Temporal)

	combined := riskMult * commercialMult * qualityMult * authorityMult * temporalMult
	value := band.Mid.Mul(decimal.NewFromFloat(combined)).Round(2)
	if value.IsNegative() {
		value = decimal.Zero
	}

	v := Valuation{
		EstimatedValue: value,
		Currency:       "USD",
		Breakdown: common.Metadata{
			"content_type":         string(md.Type),
			"rate_key":             rateKey,
			"base_rate":            band.Mid.String(),
			"risk_multiplier":      riskMult,
			"commercial_uplift":    commercialMult,
			"quality_multiplier":   qualityMult,
			"authority_multiplier": authorityMult,
			"temporal_multiplier":  temporalMult,
			"combined_multiplier":  combined,
		},
	}
	v.Licensing = c.licensing(value, det)
	v.MarketContext = c.marketContext(value, rateKey, md)
	return v
}

// rateKey selects the rate table entry for the content.  Academic articles
// are promoted to the academic band; every other content type prices by its
// media type.
func (c *Calculator) rateKey(md content.Metadata) string {
	if md.Type == common.ContentArticle && md.Category == common.CategoryAcademic {
		if _, ok := c.cfg.BaseRates[academicRateKey]; ok {
			return academicRateKey
		}
	}
	return string(md.Type)
}

func (c *Calculator) band(rateKey string) RateBand {
	if band, ok := c.cfg.BaseRates[rateKey]; ok {
		return band
	}
	return c.cfg.BaseRates[fallbackRateKey]
}

func (c *Calculator) riskMultiplier(level common.RiskLevel) float64 {
	if m, ok := c.cfg.RiskMultipliers[level]; ok {
		return m
	}
	return 1.0
}

func (c *Calculator) temporalMultiplier(t common.TemporalValue) float64 {
	if m, ok := c.cfg.TemporalMultipliers[t]; ok {
		return m
	}
	return 1.0
}

// scoreMultiplier maps a 0–100 score onto the band with 50 as the neutral
// pivot: 0 maps to Min, 50 to exactly 1.0, 100 to Max, linearly in between.
// Out-of-range scores clamp to the band edges.
func scoreMultiplier(score int, band Band) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if score <= 50 {
		return band.Min + (1.0-band.Min)*float64(score)/50.0
	}
	return 1.0 + (band.Max-1.0)*float64(score-50)/50.0
}

// licensing grades the negotiation opportunity by the per-access value.
func (c *Calculator) licensing(value decimal.Decimal, det detection.Detection) Licensing {
	switch {
	case value.GreaterThanOrEqual(c.cfg.LicensingHighThreshold):
		rec := "Prioritize direct licensing negotiation for this content segment"
		if det.Commercial {
			rec = "Prioritize direct licensing negotiation; operator monetizes crawled content commercially"
		}
		return Licensing{Potential: common.LicensingHigh, Recommendation: rec}
	case value.GreaterThanOrEqual(c.cfg.LicensingLowThreshold):
		return Licensing{
			Potential:      common.LicensingMedium,
			Recommendation: "Consider proactive licensing outreach as access volume grows",
		}
	default:
		return Licensing{
			Potential:      common.LicensingLow,
			Recommendation: "Monitor access patterns and aggregate value before outreach",
		}
	}
}

//Personal.AI order the ending
