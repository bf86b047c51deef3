package portfolio

import (
	"time"

	"github.com/shopspring/decimal"
)

const daysPerYear = 365

// growthRate compares the trailing window [now-W, now) against the window
// before it [now-2W, now-W), where W is TrailingWindowDays.  It returns 0
// when the observed data does not span both windows, so young portfolios are
// never extrapolated from noise.  Results are bounded to [-1.0, GrowthRateCap].
func (a *Aggregator) growthRate(daily []DailyValue, now time.Time) float64 {
	if len(daily) == 0 {
		return 0
	}

	window := a.cfg.TrailingWindowDays
	windowStart := now.UTC().AddDate(0, 0, -window)
	priorStart := now.UTC().AddDate(0, 0, -2*window)

	earliest, err := time.Parse(dateLayout, daily[0].Date)
	if err != nil || earliest.After(priorStart) {
		return 0
	}

	var trailing, prior decimal.Decimal
	for _, dv := range daily {
		t, err := time.Parse(dateLayout, dv.Date)
		if err != nil {
			continue
		}
		switch {
		case !t.Before(windowStart) && t.Before(now.UTC()):
			trailing = trailing.Add(dv.Value)
		case !t.Before(priorStart) && t.Before(windowStart):
			prior = prior.Add(dv.Value)
		}
	}

	if prior.IsZero() {
		if trailing.IsPositive() {
			return a.cfg.GrowthRateCap
		}
		return 0
	}

	rate, _ := trailing.Sub(prior).Div(prior).Float64()
	return clampGrowth(rate, a.cfg.GrowthRateCap)
}

func clampGrowth(rate, cap float64) float64 {
	if rate < -1.0 {
		return -1.0
	}
	if rate > cap {
		return cap
	}
	return rate
}

// project extrapolates the observed run rate to an annual figure.  The daily
// average is taken over observed active days; the growth-adjusted base is
// bracketed by the configured conservative and optimistic factors.
func (a *Aggregator) project(total decimal.Decimal, activeDays int, growth float64) RevenueProjection {
	proj := RevenueProjection{
		DailyAverage: decimal.Zero,
		AnnualBase:   decimal.Zero,
		Conservative: decimal.Zero,
		Optimistic:   decimal.Zero,
		GrowthRate:   growth,
	}
	if activeDays == 0 || total.IsZero() {
		return proj
	}

	dailyAvg := total.Div(decimal.NewFromInt(int64(activeDays)))
	annual := dailyAvg.
		Mul(decimal.NewFromInt(daysPerYear)).
		Mul(decimal.NewFromFloat(1.0 + growth))

	proj.DailyAverage = dailyAvg.Round(2)
	proj.AnnualBase = annual.Round(2)
	proj.Conservative = annual.Mul(decimal.NewFromFloat(a.cfg.ProjectionConservative)).Round(2)
	proj.Optimistic = annual.Mul(decimal.NewFromFloat(a.cfg.ProjectionOptimistic)).Round(2)
	return proj
}

//Personal.AI order the ending
