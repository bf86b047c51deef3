package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/content"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

func TestMarketPosition(t *testing.T) {
	band := RateBand{
		Low:  decimal.RequireFromString("0.05"),
		Mid:  decimal.RequireFromString("0.50"),
		High: decimal.RequireFromString("2.50"),
	}

	tests := []struct {
		value string
		want  string
	}{
		{"0.01", PositionBelowMarket},
		{"0.05", PositionWithinBand},
		{"1.00", PositionWithinBand},
		{"2.50", PositionWithinBand},
		{"7.00", PositionPremium},
	}
	for _, tt := range tests {
		got := marketPosition(decimal.RequireFromString(tt.value), band)
		assert.Equal(t, tt.want, got, "value %s", tt.value)
	}
}

func TestReferenceMarketFor(t *testing.T) {
	tests := []struct {
		name string
		md   content.Metadata
		want string
	}{
		{"image", content.Metadata{Type: common.ContentImage}, "stock_imagery"},
		{"audio", content.Metadata{Type: common.ContentAudio}, "music_licensing"},
		{"academic article", content.Metadata{Type: common.ContentArticle, Category: common.CategoryAcademic}, "academic_publishing"},
		{"news article", content.Metadata{Type: common.ContentArticle, Category: common.CategoryNews}, "news_syndication"},
		{"general article", content.Metadata{Type: common.ContentArticle, Category: common.CategoryGeneral}, ""},
		{"general video", content.Metadata{Type: common.ContentVideo}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, referenceMarketFor(tt.md))
		})
	}
}

func TestMarketContext_AttachesReferenceRange(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	md := content.Metadata{
		Type:           common.ContentImage,
		Category:       common.CategoryGeneral,
		QualityScore:   50,
		AuthorityScore: 50,
	}
	det := detection.Detection{IsBot: true, RiskLevel: common.RiskMedium}

	v := c.CalculateContentValue(det, md)

	assert.Equal(t, "stock_imagery", v.MarketContext["reference_market"])
	assert.Equal(t, "$130.00-$500.00", v.MarketContext["reference_range"])
	assert.Equal(t, "$0.10", v.MarketContext["band_low"])
	assert.Equal(t, "$5.00", v.MarketContext["band_high"])
	assert.Equal(t, PositionWithinBand, v.MarketContext["position"])
}

func TestMarketContext_CoversEveryConfiguredMarket(t *testing.T) {
	cfg := DefaultConfig()
	c := NewCalculator(cfg)

	md := content.Metadata{
		Type:           common.ContentArticle,
		Category:       common.CategoryGeneral,
		QualityScore:   50,
		AuthorityScore: 50,
	}
	det := detection.Detection{IsBot: true, RiskLevel: common.RiskLow}

	v := c.CalculateContentValue(det, md)

	for name, rng := range cfg.ReferenceMarkets {
		assert.Equal(t, formatUSD(rng.Low)+"-"+formatUSD(rng.High), v.MarketContext[name], "range for %s", name)
		assert.Contains(t, v.MarketContext, name+"_position", "position for %s", name)
	}
	// A $0.50 article access sits under every published licensing floor.
	assert.Equal(t, "$130.00-$500.00", v.MarketContext["stock_imagery"])
	assert.Equal(t, PositionBelowMarket, v.MarketContext["stock_imagery_position"])
	assert.Equal(t, "$50.00-$750.00", v.MarketContext["news_syndication"])
	assert.Equal(t, PositionBelowMarket, v.MarketContext["news_syndication_position"])
}

func TestMarketContext_MaxMultipliersReachPremium(t *testing.T) {
	c := NewCalculator(DefaultConfig())

	md := content.Metadata{
		Type:           common.ContentArticle,
		Category:       common.CategoryGeneral,
		QualityScore:   100,
		AuthorityScore: 100,
		Temporal:       common.TemporalEvergreen,
	}
	det := detection.Detection{IsBot: true, RiskLevel: common.RiskHigh, Commercial: true}

	v := c.CalculateContentValue(det, md)

	// 0.50 × 2.5 × 1.25 × 2.0 × 1.6 × 1.4 = 7.00, above the article high band.
	assert.Equal(t, "7.00", v.EstimatedValue.StringFixed(2))
	assert.Equal(t, PositionPremium, v.MarketContext["position"])
}

//Personal.AI order the ending
