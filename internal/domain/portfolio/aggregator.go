package portfolio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

const dateLayout = "2006-01-02"

// fallbackContentType buckets valuations whose breakdown omits the content
// type, which only happens for records written by earlier schema versions.
const fallbackContentType = "article"

// Config carries aggregation and projection tuning.
type Config struct {
	// HighValueThreshold marks a single detection as high-value.
	HighValueThreshold decimal.Decimal

	// TrailingWindowDays sizes the growth comparison windows.
	TrailingWindowDays int

	ProjectionConservative float64
	ProjectionOptimistic   float64

	// GrowthRateCap bounds measured growth from above; growth is always
	// bounded below by -1.0 (total collapse).
	GrowthRateCap float64
}

// DefaultConfig returns the production aggregation tuning.
func DefaultConfig() Config {
	return Config{
		HighValueThreshold:     decimal.RequireFromString("10.00"),
		TrailingWindowDays:     7,
		ProjectionConservative: 0.7,
		ProjectionOptimistic:   1.5,
		GrowthRateCap:          5.0,
	}
}

// Aggregator computes portfolio analytics over priced detections.  The
// explicit now parameter keeps every computation reproducible; callers pass
// time.Now() in production and fixed instants in tests.
type Aggregator struct {
	cfg Config
}

// NewAggregator constructs an Aggregator.  Zero-valued tuning falls back to
// defaults.
func NewAggregator(cfg Config) *Aggregator {
	def := DefaultConfig()
	if cfg.HighValueThreshold.IsZero() {
		cfg.HighValueThreshold = def.HighValueThreshold
	}
	if cfg.TrailingWindowDays <= 0 {
		cfg.TrailingWindowDays = def.TrailingWindowDays
	}
	if cfg.ProjectionConservative == 0 {
		cfg.ProjectionConservative = def.ProjectionConservative
	}
	if cfg.ProjectionOptimistic == 0 {
		cfg.ProjectionOptimistic = def.ProjectionOptimistic
	}
	if cfg.GrowthRateCap == 0 {
		cfg.GrowthRateCap = def.GrowthRateCap
	}
	return &Aggregator{cfg: cfg}
}

// CalculatePortfolioValue aggregates the given detections in a single pass.
// Dollar arithmetic is exact: TotalValue equals the sum of every detection's
// estimated value to the cent, and the per-company, per-content-type, and
// per-day breakdowns each sum back to TotalValue.  An empty input yields a
// zero-valued, fully-initialised Analysis.
func (a *Aggregator) CalculatePortfolioValue(items []EnhancedDetection, now time.Time) Analysis {
	analysis := Analysis{
		CompanyTotals:     make(map[string]CompanyStat),
		ContentTypeTotals: make(map[string]decimal.Decimal),
		RiskCounts:        make(map[common.RiskLevel]int),
	}

	daily := make(map[string]*DailyValue)

	for _, item := range items {
		value := item.Valuation.EstimatedValue

		analysis.TotalValue = analysis.TotalValue.Add(value)
		analysis.DetectionCount++
		if value.GreaterThanOrEqual(a.cfg.HighValueThreshold) {
			analysis.HighValueCount++
		}

		company := item.Detection.Company
		if company == "" {
			company = "Unknown"
		}
		stat := analysis.CompanyTotals[company]
		stat.Detections++
		stat.Value = stat.Value.Add(value)
		analysis.CompanyTotals[company] = stat

		ct := contentTypeOf(item)
		analysis.ContentTypeTotals[ct] = analysis.ContentTypeTotals[ct].Add(value)

		analysis.RiskCounts[item.Detection.RiskLevel]++

		day := time.Time(item.Detection.DetectedAt).UTC().Format(dateLayout)
		dv, ok := daily[day]
		if !ok {
			dv = &DailyValue{Date: day}
			daily[day] = dv
		}
		dv.Value = dv.Value.Add(value)
		dv.Detections++
	}

	if analysis.DetectionCount > 0 {
		analysis.AverageValue = analysis.TotalValue.
			Div(decimal.NewFromInt(int64(analysis.DetectionCount))).Round(2)
	}

	analysis.Daily = sortedDaily(daily)
	analysis.Weekdays = weekdayAverages(analysis.Daily)
	analysis.TopCompany = topCompany(analysis.CompanyTotals)

	growth := a.growthRate(analysis.Daily, now)
	analysis.Projection = a.project(analysis.TotalValue, len(analysis.Daily), growth)

	return analysis
}

// contentTypeOf reads the valuation breakdown's content type.
func contentTypeOf(item EnhancedDetection) string {
	if raw, ok := item.Valuation.Breakdown["content_type"]; ok {
		if s, ok := raw.(string); ok && s != "" {
			return s
		}
	}
	return fallbackContentType
}

func sortedDaily(daily map[string]*DailyValue) []DailyValue {
	out := make([]DailyValue, 0, len(daily))
	for _, dv := range daily {
		out = append(out, *dv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// weekdayAverages averages per-day totals by weekday, surfacing weekly
// crawl-traffic seasonality.  Only weekdays with at least one observed day
// appear in the result, ordered Sunday through Saturday.
func weekdayAverages(daily []DailyValue) []WeekdayValue {
	type acc struct {
		total decimal.Decimal
		days  int
	}
	var buckets [7]acc
	for _, dv := range daily {
		t, err := time.Parse(dateLayout, dv.Date)
		if err != nil {
			continue
		}
		wd := t.Weekday()
		buckets[wd].total = buckets[wd].total.Add(dv.Value)
		buckets[wd].days++
	}

	out := make([]WeekdayValue, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		b := buckets[wd]
		if b.days == 0 {
			continue
		}
		out = append(out, WeekdayValue{
			Weekday:      wd,
			AverageValue: b.total.Div(decimal.NewFromInt(int64(b.days))).Round(2),
			Days:         b.days,
		})
	}
	return out
}

func topCompany(totals map[string]CompanyStat) string {
	var best string
	var bestValue decimal.Decimal
	for company, stat := range totals {
		switch {
		case best == "",
			stat.Value.GreaterThan(bestValue),
			stat.Value.Equal(bestValue) && company < best:
			best = company
			bestValue = stat.Value
		}
	}
	return best
}

//Personal.AI order the ending
