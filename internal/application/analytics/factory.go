package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/turtacn/CrawlValue-Intelligence/internal/config"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/content"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/portfolio"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/valuation"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// NewDetectorFromConfig builds the detector from file configuration.
// Operator overrides precede the built-in registry so a deployment can shadow
// any signature without replacing the table.
func NewDetectorFromConfig(dc config.DetectionConfig) (*detection.Detector, error) {
	sigs := make([]detection.Signature, 0, len(dc.Overrides)+len(dc.Signatures))
	for _, sc := range append(append([]config.SignatureConfig{}, dc.Overrides...), dc.Signatures...) {
		sigs = append(sigs, detection.Signature{
			Company:    sc.Company,
			BotType:    sc.BotType,
			Patterns:   sc.Patterns,
			RiskLevel:  common.ParseRiskLevel(sc.RiskLevel),
			Commercial: sc.Commercial,
		})
	}
	registry, err := detection.NewRegistry(sigs)
	if err != nil {
		return nil, err
	}
	return detection.NewDetector(registry, detection.Config{
		BotIndicators:          dc.BotIndicators,
		BrowserIndicators:      dc.BrowserIndicators,
		IndicatorScore:         dc.IndicatorScore,
		NoBrowserScore:         dc.NoBrowserScore,
		BotThreshold:           dc.BotThreshold,
		MediumRiskThreshold:    dc.MediumRiskThreshold,
		SignatureConfidence:    dc.SignatureConfidence,
		MaxHeuristicConfidence: dc.MaxHeuristicConfidence,
	}), nil
}

// NewCalculatorFromConfig builds the valuation calculator, converting the
// file configuration's float rates to exact decimals once, up front.
func NewCalculatorFromConfig(vc config.ValuationConfig) *valuation.Calculator {
	rates := make(map[string]valuation.RateBand, len(vc.BaseRates))
	for key, band := range vc.BaseRates {
		rates[key] = valuation.RateBand{
			Low:  decimal.NewFromFloat(band.Low),
			Mid:  decimal.NewFromFloat(band.Mid),
			High: decimal.NewFromFloat(band.High),
		}
	}

	risk := make(map[common.RiskLevel]float64, len(vc.RiskMultipliers))
	for level, m := range vc.RiskMultipliers {
		risk[common.ParseRiskLevel(level)] = m
	}

	temporal := make(map[common.TemporalValue]float64, len(vc.TemporalMultipliers))
	for t, m := range vc.TemporalMultipliers {
		temporal[common.TemporalValue(t)] = m
	}

	markets := make(map[string]valuation.MarketRange, len(vc.ReferenceMarkets))
	for name, rng := range vc.ReferenceMarkets {
		markets[name] = valuation.MarketRange{
			Low:  decimal.NewFromFloat(rng.Low),
			High: decimal.NewFromFloat(rng.High),
		}
	}

	return valuation.NewCalculator(valuation.Config{
		BaseRates:              rates,
		RiskMultipliers:        risk,
		CommercialUplift:       vc.CommercialUplift,
		QualityBand:            valuation.Band{Min: vc.QualityBand.Min, Max: vc.QualityBand.Max},
		AuthorityBand:          valuation.Band{Min: vc.AuthorityBand.Min, Max: vc.AuthorityBand.Max},
		TemporalMultipliers:    temporal,
		LicensingLowThreshold:  decimal.NewFromFloat(vc.LicensingLowThreshold),
		LicensingHighThreshold: decimal.NewFromFloat(vc.LicensingHighThreshold),
		ReferenceMarkets:       markets,
	})
}

// NewAggregatorFromConfig builds the portfolio aggregator.
func NewAggregatorFromConfig(pc config.PortfolioConfig) *portfolio.Aggregator {
	return portfolio.NewAggregator(portfolio.Config{
		HighValueThreshold:     decimal.NewFromFloat(pc.HighValueThreshold),
		TrailingWindowDays:     pc.TrailingWindowDays,
		ProjectionConservative: pc.ProjectionConservative,
		ProjectionOptimistic:   pc.ProjectionOptimistic,
		GrowthRateCap:          pc.GrowthRateCap,
	})
}

// NewPipeline assembles the full service from file configuration.  Optional
// infrastructure (store, cache, publisher, metrics) is attached through opts.
func NewPipeline(cfg *config.Config, opts ...Option) (*Service, error) {
	detector, err := NewDetectorFromConfig(cfg.Detection)
	if err != nil {
		return nil, err
	}
	return NewService(
		detector,
		content.NewAnalyzer(),
		NewCalculatorFromConfig(cfg.Valuation),
		NewAggregatorFromConfig(cfg.Portfolio),
		Config{
			Concurrency: cfg.Worker.Concurrency,
			CacheTTL:    cfg.Redis.DefaultTTL,
		},
		opts...,
	), nil
}

//Personal.AI order the ending
