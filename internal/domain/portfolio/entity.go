// Package portfolio aggregates priced detections into portfolio-level
// analytics: totals by company, content type, and risk, daily and weekday
// series, growth measurement, and annual revenue projection.
package portfolio

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/valuation"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// EnhancedDetection pairs a detection with its valuation.  The detection's
// DetectedAt stamp drives all time-series bucketing.
type EnhancedDetection struct {
	Detection detection.Detection `json:"detection"`
	Valuation valuation.Valuation `json:"valuation"`
}

// CompanyStat accumulates per-operator totals.
type CompanyStat struct {
	Detections int             `json:"detections"`
	Value      decimal.Decimal `json:"value"`
}

// DailyValue is the portfolio's priced activity for one calendar day (UTC).
type DailyValue struct {
	Date       string          `json:"date"` // "2006-01-02"
	Value      decimal.Decimal `json:"value"`
	Detections int             `json:"detections"`
}

// WeekdayValue is the average priced activity for one weekday across the
// observation window, exposing weekly seasonality.
type WeekdayValue struct {
	Weekday      time.Weekday    `json:"weekday"`
	AverageValue decimal.Decimal `json:"average_value"`
	Days         int             `json:"days"` // distinct calendar days observed
}

// RevenueProjection extrapolates the portfolio's run rate to an annual
// figure, growth-adjusted, bracketed by conservative and optimistic bounds.
type RevenueProjection struct {
	DailyAverage decimal.Decimal `json:"daily_average"`
	AnnualBase   decimal.Decimal `json:"annual_base"`
	Conservative decimal.Decimal `json:"conservative"`
	Optimistic   decimal.Decimal `json:"optimistic"`

	// GrowthRate is the trailing-window growth applied to AnnualBase,
	// as a fraction (-1.0 ≤ rate ≤ cap).
	GrowthRate float64 `json:"growth_rate"`
}

// Analysis is the full portfolio report.  All dollar totals are exact: the
// sum of per-detection values equals TotalValue to the cent.
type Analysis struct {
	TotalValue     decimal.Decimal `json:"total_value"`
	DetectionCount int             `json:"detection_count"`
	HighValueCount int             `json:"high_value_count"`

	// AverageValue is TotalValue over DetectionCount, zero for an empty
	// portfolio.
	AverageValue decimal.Decimal `json:"average_value_per_access"`

	CompanyTotals     map[string]CompanyStat     `json:"company_totals"`
	ContentTypeTotals map[string]decimal.Decimal `json:"content_type_totals"`
	RiskCounts        map[common.RiskLevel]int   `json:"risk_counts"`

	// TopCompany is the operator with the highest accumulated value; ties
	// break lexicographically so the report is deterministic.
	TopCompany string `json:"top_company,omitempty"`

	Daily    []DailyValue   `json:"daily"`
	Weekdays []WeekdayValue `json:"weekdays"`

	Projection RevenueProjection `json:"projection"`
}

//Personal.AI order the ending
