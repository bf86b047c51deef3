package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/content"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// Market position labels relative to the content type's configured rate band.
const (
	PositionBelowMarket = "below_market"
	PositionWithinBand  = "within_band"
	PositionPremium     = "premium"
)

// referenceMarketFor maps content onto the reference market whose published
// licensing range best contextualises its valuation.
func referenceMarketFor(md content.Metadata) string {
	switch md.Type {
	case common.ContentImage:
		return "stock_imagery"
	case common.ContentAudio:
		return "music_licensing"
	}
	switch md.Category {
	case common.CategoryAcademic:
		return "academic_publishing"
	case common.CategoryNews:
		return "news_syndication"
	}
	return ""
}

// marketContext labels the valuation against its own rate band and maps every
// configured reference market to its licensing range plus the value's position
// against that range.  The reference market most relevant to the content is
// called out under "reference_market".
func (c *Calculator) marketContext(value decimal.Decimal, rateKey string, md content.Metadata) map[string]string {
	band := c.band(rateKey)
	ctx := map[string]string{
		"position":  marketPosition(value, band),
		"band_low":  formatUSD(band.Low),
		"band_high": formatUSD(band.High),
	}
	for name, rng := range c.cfg.ReferenceMarkets {
		ctx[name] = fmt.Sprintf("%s-%s", formatUSD(rng.Low), formatUSD(rng.High))
		ctx[name+"_position"] = positionAgainst(value, rng.Low, rng.High)
	}
	if name := referenceMarketFor(md); name != "" {
		if rng, ok := c.cfg.ReferenceMarkets[name]; ok {
			ctx["reference_market"] = name
			ctx["reference_range"] = fmt.Sprintf("%s-%s", formatUSD(rng.Low), formatUSD(rng.High))
		}
	}
	return ctx
}

func marketPosition(value decimal.Decimal, band RateBand) string {
	return positionAgainst(value, band.Low, band.High)
}

func positionAgainst(value, low, high decimal.Decimal) string {
	switch {
	case value.LessThan(low):
		return PositionBelowMarket
	case value.GreaterThan(high):
		return PositionPremium
	default:
		return PositionWithinBand
	}
}

func formatUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

//Personal.AI order the ending
