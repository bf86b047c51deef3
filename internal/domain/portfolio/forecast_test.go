package portfolio

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// dailyItems emits one detection of the given value per day over [from, to].
func dailyItems(company, value string, from, to time.Time) []EnhancedDetection {
	var items []EnhancedDetection
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		items = append(items, pricedItem(company, value, d, "article", common.RiskHigh))
	}
	return items
}

func TestGrowthRate_TrailingVsPriorWindow(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// Prior week: 10/day; trailing week: 20/day → +100% growth.
	items := append(
		dailyItems("OpenAI", "10.00",
			time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)),
		dailyItems("OpenAI", "20.00",
			time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))...,
	)

	analysis := a.CalculatePortfolioValue(items, now)

	assert.InDelta(t, 1.0, analysis.Projection.GrowthRate, 1e-9)

	// 210 total over 14 active days: 15/day × 365 × (1 + 1.0) = 10950.
	assert.Equal(t, "15.00", analysis.Projection.DailyAverage.StringFixed(2))
	assert.Equal(t, "10950.00", analysis.Projection.AnnualBase.StringFixed(2))
	assert.Equal(t, "7665.00", analysis.Projection.Conservative.StringFixed(2))
	assert.Equal(t, "16425.00", analysis.Projection.Optimistic.StringFixed(2))
}

func TestGrowthRate_YoungPortfolioIsNotExtrapolated(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// Five days of data cannot span both comparison windows.
	items := dailyItems("OpenAI", "10.00",
		time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	analysis := a.CalculatePortfolioValue(items, now)

	assert.Zero(t, analysis.Projection.GrowthRate)
	// 50 over 5 active days: 10/day × 365 = 3650, ungrown.
	assert.Equal(t, "3650.00", analysis.Projection.AnnualBase.StringFixed(2))
}

func TestGrowthRate_ZeroPriorCapsGrowth(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	items := []EnhancedDetection{
		// A zero-value day anchors the observation span across both windows.
		pricedItem("OpenAI", "0.00", time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC), "article", common.RiskHigh),
		pricedItem("OpenAI", "50.00", time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC), "article", common.RiskHigh),
	}

	analysis := a.CalculatePortfolioValue(items, now)
	assert.InDelta(t, a.cfg.GrowthRateCap, analysis.Projection.GrowthRate, 1e-9)
}

func TestGrowthRate_DeclineIsBoundedAtTotalCollapse(t *testing.T) {
	cfg := DefaultConfig()
	a := NewAggregator(cfg)
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// All activity in the prior window, none trailing: -100%.
	items := dailyItems("OpenAI", "10.00",
		time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC))

	analysis := a.CalculatePortfolioValue(items, now)

	assert.InDelta(t, -1.0, analysis.Projection.GrowthRate, 1e-9)
	// Annual projection collapses to zero at -100% growth.
	assert.Equal(t, "0.00", analysis.Projection.AnnualBase.StringFixed(2))
}

func TestGrowthRate_ReproducibleForFixedNow(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	items := dailyItems("OpenAI", "10.00",
		time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	first := a.CalculatePortfolioValue(items, now)
	second := a.CalculatePortfolioValue(items, now)
	assert.Equal(t,
		fmt.Sprintf("%v", first.Projection),
		fmt.Sprintf("%v", second.Projection),
	)
	assert.True(t, first.TotalValue.Equal(second.TotalValue))
}

//Personal.AI order the ending
