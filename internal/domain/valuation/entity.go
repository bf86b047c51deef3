// Package valuation prices individual crawler accesses: a configured market
// rate table scaled by risk, quality, authority, and temporal multipliers,
// with exact decimal arithmetic throughout.
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// Licensing summarises the licensing opportunity one valuation represents.
type Licensing struct {
	Potential      common.LicensingPotential `json:"potential"`
	Recommendation string                    `json:"recommendation"`
}

// Valuation is the priced outcome of one detected crawler access.
// EstimatedValue is always ≥ 0 and rounded to the cent.
type Valuation struct {
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Currency       string          `json:"currency"`

	// Breakdown records every factor that produced the value.  The
	// "content_type" key is guaranteed present; portfolio aggregation keys
	// its per-type totals off it.
	Breakdown common.Metadata `json:"breakdown"`

	Licensing     Licensing         `json:"licensing"`
	MarketContext map[string]string `json:"market_context,omitempty"`
}

// RateBand is a low/mid/high dollar band for one content type.  Mid is the
// base rate; Low and High bound market-position labelling.
type RateBand struct {
	Low  decimal.Decimal
	Mid  decimal.Decimal
	High decimal.Decimal
}

// Band clamps a multiplier to [Min, Max].
type Band struct {
	Min float64
	Max float64
}

// MarketRange is a named reference market's typical licensing range.
type MarketRange struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

//Personal.AI order the ending
