package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestDefaultSignatures_OrderAndCoverage(t *testing.T) {
	sigs := DefaultSignatures()
	require.NotEmpty(t, sigs)

	// The specific AI operators precede the catch-all archive crawler so
	// first-match-wins attribution lands on the right company.
	assert.Equal(t, "OpenAI", sigs[0].Company)
	assert.Equal(t, "Common Crawl", sigs[len(sigs)-1].Company)

	companies := make(map[string]SignatureConfig, len(sigs))
	for _, sig := range sigs {
		require.NotEmpty(t, sig.Patterns, "signature %s has no patterns", sig.Company)
		companies[sig.Company] = sig
	}
	for _, want := range []string{"OpenAI", "Anthropic", "Google", "Meta", "Perplexity", "ByteDance", "Common Crawl"} {
		assert.Contains(t, companies, want)
	}
	assert.False(t, companies["Common Crawl"].Commercial)
	assert.Equal(t, "high", companies["OpenAI"].RiskLevel)
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"bad log level", func(cfg *Config) { cfg.Log.Level = "verbose" }},
		{"bad log format", func(cfg *Config) { cfg.Log.Format = "xml" }},
		{"kafka enabled without brokers", func(cfg *Config) {
			cfg.Kafka.Enabled = true
			cfg.Kafka.Brokers = nil
		}},
		{"redis enabled without addr", func(cfg *Config) {
			cfg.Redis.Enabled = true
			cfg.Redis.Addr = ""
		}},
		{"no signatures", func(cfg *Config) { cfg.Detection.Signatures = nil }},
		{"signature without company", func(cfg *Config) {
			cfg.Detection.Signatures[0].Company = ""
		}},
		{"signature without patterns", func(cfg *Config) {
			cfg.Detection.Signatures[0].Patterns = nil
		}},
		{"confidence out of range", func(cfg *Config) { cfg.Detection.SignatureConfidence = 150 }},
		{"missing article rate", func(cfg *Config) { delete(cfg.Valuation.BaseRates, "article") }},
		{"negative rate", func(cfg *Config) {
			cfg.Valuation.BaseRates["image"] = RateBand{Low: -1, Mid: 1, High: 2}
		}},
		{"inverted rate band", func(cfg *Config) {
			cfg.Valuation.BaseRates["image"] = RateBand{Low: 5, Mid: 1, High: 2}
		}},
		{"missing risk multiplier", func(cfg *Config) { delete(cfg.Valuation.RiskMultipliers, "high") }},
		{"inverted quality band", func(cfg *Config) {
			cfg.Valuation.QualityBand = MultiplierBand{Min: 2, Max: 1}
		}},
		{"inverted licensing thresholds", func(cfg *Config) {
			cfg.Valuation.LicensingLowThreshold = 20
			cfg.Valuation.LicensingHighThreshold = 10
		}},
		{"zero trailing window", func(cfg *Config) { cfg.Portfolio.TrailingWindowDays = 0 }},
		{"zero concurrency", func(cfg *Config) { cfg.Worker.Concurrency = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

//Personal.AI order the ending
