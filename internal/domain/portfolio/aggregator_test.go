package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/valuation"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

func pricedItem(company, value string, at time.Time, contentType string, risk common.RiskLevel) EnhancedDetection {
	return EnhancedDetection{
		Detection: detection.Detection{
			Company:    company,
			IsBot:      true,
			RiskLevel:  risk,
			DetectedAt: common.Timestamp(at),
		},
		Valuation: valuation.Valuation{
			EstimatedValue: decimal.RequireFromString(value),
			Currency:       "USD",
			Breakdown:      common.Metadata{"content_type": contentType},
		},
	}
}

func TestCalculatePortfolioValue_ExactAdditivity(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	day := now.AddDate(0, 0, -1)

	items := []EnhancedDetection{
		pricedItem("OpenAI", "1.23", day, "article", common.RiskHigh),
		pricedItem("OpenAI", "4.56", day, "image", common.RiskHigh),
		pricedItem("Anthropic", "10.00", day, "article", common.RiskHigh),
		pricedItem("", "0.01", day, "video", common.RiskLow),
	}

	analysis := a.CalculatePortfolioValue(items, now)

	assert.Equal(t, "15.80", analysis.TotalValue.StringFixed(2))
	assert.Equal(t, 4, analysis.DetectionCount)
	assert.Equal(t, 1, analysis.HighValueCount)
	assert.Equal(t, "3.95", analysis.AverageValue.StringFixed(2))

	// Per-company totals sum back to the grand total, to the cent.
	var companySum decimal.Decimal
	for _, stat := range analysis.CompanyTotals {
		companySum = companySum.Add(stat.Value)
	}
	assert.True(t, companySum.Equal(analysis.TotalValue))

	assert.Equal(t, CompanyStat{Detections: 2, Value: decimal.RequireFromString("5.79")}, analysis.CompanyTotals["OpenAI"])
	assert.Equal(t, 1, analysis.CompanyTotals["Unknown"].Detections)
	assert.Equal(t, "Anthropic", analysis.TopCompany)

	// Per-content-type totals also reconcile exactly.
	var typeSum decimal.Decimal
	for _, v := range analysis.ContentTypeTotals {
		typeSum = typeSum.Add(v)
	}
	assert.True(t, typeSum.Equal(analysis.TotalValue))
	assert.Equal(t, "11.23", analysis.ContentTypeTotals["article"].StringFixed(2))

	assert.Equal(t, 3, analysis.RiskCounts[common.RiskHigh])
	assert.Equal(t, 1, analysis.RiskCounts[common.RiskLow])
}

func TestCalculatePortfolioValue_EmptyInput(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	analysis := a.CalculatePortfolioValue(nil, now)

	assert.True(t, analysis.TotalValue.IsZero())
	assert.True(t, analysis.AverageValue.IsZero())
	assert.Zero(t, analysis.DetectionCount)
	assert.NotNil(t, analysis.CompanyTotals)
	assert.NotNil(t, analysis.ContentTypeTotals)
	assert.NotNil(t, analysis.RiskCounts)
	assert.Empty(t, analysis.Daily)
	assert.Empty(t, analysis.TopCompany)
	assert.True(t, analysis.Projection.AnnualBase.IsZero())
	assert.Zero(t, analysis.Projection.GrowthRate)
}

func TestCalculatePortfolioValue_DailySeries(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	items := []EnhancedDetection{
		pricedItem("OpenAI", "2.00", time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC), "article", common.RiskHigh),
		pricedItem("OpenAI", "3.00", time.Date(2026, 8, 29, 21, 0, 0, 0, time.UTC), "article", common.RiskHigh),
		pricedItem("Anthropic", "1.00", time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), "article", common.RiskHigh),
	}

	analysis := a.CalculatePortfolioValue(items, now)

	require.Len(t, analysis.Daily, 2)
	assert.Equal(t, "2026-08-28", analysis.Daily[0].Date)
	assert.Equal(t, "1.00", analysis.Daily[0].Value.StringFixed(2))
	assert.Equal(t, 1, analysis.Daily[0].Detections)
	assert.Equal(t, "2026-08-29", analysis.Daily[1].Date)
	assert.Equal(t, "5.00", analysis.Daily[1].Value.StringFixed(2))
	assert.Equal(t, 2, analysis.Daily[1].Detections)
}

func TestCalculatePortfolioValue_WeekdayAverages(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// 2026-08-17 and 2026-08-24 are both Mondays.
	items := []EnhancedDetection{
		pricedItem("OpenAI", "10.00", time.Date(2026, 8, 17, 8, 0, 0, 0, time.UTC), "article", common.RiskHigh),
		pricedItem("OpenAI", "20.00", time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC), "article", common.RiskHigh),
	}

	analysis := a.CalculatePortfolioValue(items, now)

	require.Len(t, analysis.Weekdays, 1)
	wd := analysis.Weekdays[0]
	assert.Equal(t, time.Monday, wd.Weekday)
	assert.Equal(t, "15.00", wd.AverageValue.StringFixed(2))
	assert.Equal(t, 2, wd.Days)
}

func TestCalculatePortfolioValue_ContentTypeFallback(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	// Records written by earlier schema versions may lack the content type.
	item := pricedItem("OpenAI", "2.00", now.AddDate(0, 0, -1), "article", common.RiskHigh)
	item.Valuation.Breakdown = nil

	analysis := a.CalculatePortfolioValue([]EnhancedDetection{item}, now)
	assert.Equal(t, "2.00", analysis.ContentTypeTotals["article"].StringFixed(2))
}

func TestCalculatePortfolioValue_TopCompanyTieBreak(t *testing.T) {
	a := NewAggregator(DefaultConfig())
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	day := now.AddDate(0, 0, -1)

	items := []EnhancedDetection{
		pricedItem("Zeta", "5.00", day, "article", common.RiskHigh),
		pricedItem("Alpha", "5.00", day, "article", common.RiskHigh),
	}

	analysis := a.CalculatePortfolioValue(items, now)
	assert.Equal(t, "Alpha", analysis.TopCompany)
}

//Personal.AI order the ending
