package demand

import (
	"math"
	"sort"

	"compasscli/internal/config"
	"compasscli/pkg/contracts/domain"
)

// weekdayOrder is the Monday-first output order for the weekday table.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Summarizer computes the demand report tables.
type Summarizer struct {
	cfg config.DemandConfig
}

// NewSummarizer creates a summarizer with the given thresholds.
func NewSummarizer(cfg config.DemandConfig) *Summarizer {
	return &Summarizer{cfg: cfg}
}

// measureStats computes mean, sample std, coefficient of variation and the
// volatility label for one measure. A zero mean yields a NaN CV and the
// explicit "NA" label instead of crashing or reporting a misleading number.
func (s *Summarizer) measureStats(values []float64) domain.MeasureStats {
	if len(values) == 0 {
		return domain.MeasureStats{CV: math.NaN(), Volatility: "NA"}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - avg
		sq += d * d
	}
	std := 0.0
	if len(values) > 1 {
		std = math.Sqrt(sq / float64(len(values)-1))
	}

	cv := math.NaN()
	if avg != 0 {
		cv = std / avg
	}

	return domain.MeasureStats{
		Mean:       avg,
		Std:        std,
		CV:         cv,
		Volatility: s.ClassifyVolatility(cv),
	}
}

// ClassifyVolatility buckets a coefficient of variation into its label.
// NaN maps to the "NA" marker.
func (s *Summarizer) ClassifyVolatility(cv float64) string {
	switch {
	case math.IsNaN(cv):
		return "NA"
	case cv < s.cfg.VeryLowVolatilityMax:
		return "Very Low Volatility"
	case cv < s.cfg.LowVolatilityMax:
		return "Low Volatility"
	case cv < s.cfg.ModerateVolatilityMax:
		return "Moderate Volatility"
	case cv < s.cfg.HighVolatilityMax:
		return "High Volatility"
	}
	return "Very High Volatility"
}

// Daily produces the single-row whole-series summary, including the counts
// of unusually high and low distribution days (by z-score). Specific
// outlier dates are deliberately not reported.
func (s *Summarizer) Daily(series *Series) domain.DailySummary {
	visits := make([]float64, 0, len(series.Days))
	pounds := make([]float64, 0, len(series.Days))
	ppv := make([]float64, 0, len(series.Days))

	var high, low int
	for _, d := range series.Days {
		visits = append(visits, d.Visits)
		pounds = append(pounds, d.Pounds)
		ppv = append(ppv, d.LbsPerVisit)
		if d.ZScorePounds > s.cfg.ZScoreCutoff {
			high++
		}
		if d.ZScorePounds < -s.cfg.ZScoreCutoff {
			low++
		}
	}

	visitStats := s.measureStats(visits)
	ppvStats := s.measureStats(ppv)

	return domain.DailySummary{
		AvgDailyVisits:   visitStats.Mean,
		AvgLbsPerVisit:   ppvStats.Mean,
		Visits:           visitStats,
		Pounds:           s.measureStats(pounds),
		PoundsPerVisit:   ppvStats,
		UnusualHighCount: high,
		UnusualLowCount:  low,
	}
}

// Weekly produces each weekday's share of total demand and distribution,
// Monday through Sunday.
func (s *Summarizer) Weekly(series *Series) []domain.WeekdayShare {
	demand := make(map[string]float64)
	dist := make(map[string]float64)
	var demandTotal, distTotal float64

	for _, d := range series.Days {
		demand[d.DayName] += d.Visits
		dist[d.DayName] += d.Pounds
		demandTotal += d.Visits
		distTotal += d.Pounds
	}

	shares := make([]domain.WeekdayShare, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		share := domain.WeekdayShare{Day: day}
		if demandTotal > 0 {
			share.DemandShare = demand[day] / demandTotal
		}
		if distTotal > 0 {
			share.DistributionShare = dist[day] / distTotal
		}
		shares = append(shares, share)
	}
	return shares
}

// Monthly produces per-month statistics for all three measures, in calendar
// order January through December regardless of data order.
func (s *Summarizer) Monthly(series *Series) []domain.MonthlySummary {
	grouped := make(map[string][]domain.DemandDay)
	for _, d := range series.Days {
		grouped[d.MonthName] = append(grouped[d.MonthName], d)
	}

	summaries := make([]domain.MonthlySummary, 0, len(domain.MonthOrder))
	for _, month := range domain.MonthOrder {
		days := grouped[month]
		summaries = append(summaries, domain.MonthlySummary{
			Month:          month,
			Demand:         s.measureStats(pluck(days, func(d domain.DemandDay) float64 { return d.Visits })),
			Distribution:   s.measureStats(pluck(days, func(d domain.DemandDay) float64 { return d.Pounds })),
			PoundsPerVisit: s.measureStats(pluck(days, func(d domain.DemandDay) float64 { return d.LbsPerVisit })),
		})
	}
	return summaries
}

// Seasonal produces per-season statistics in Winter, Spring, Summer,
// Autumn order.
func (s *Summarizer) Seasonal(series *Series) []domain.SeasonalSummary {
	grouped := make(map[string][]domain.DemandDay)
	for _, d := range series.Days {
		grouped[d.Season] = append(grouped[d.Season], d)
	}

	summaries := make([]domain.SeasonalSummary, 0, len(domain.SeasonOrder))
	for _, season := range domain.SeasonOrder {
		days := grouped[season]
		summaries = append(summaries, domain.SeasonalSummary{
			Season:         season,
			Demand:         s.measureStats(pluck(days, func(d domain.DemandDay) float64 { return d.Visits })),
			Distribution:   s.measureStats(pluck(days, func(d domain.DemandDay) float64 { return d.Pounds })),
			PoundsPerVisit: s.measureStats(pluck(days, func(d domain.DemandDay) float64 { return d.LbsPerVisit })),
		})
	}
	return summaries
}

// Yearly produces per-year totals and year-over-year growth fractions.
// The first year has no prior year to grow from, so its growth fields are
// flagged absent rather than zero.
func (s *Summarizer) Yearly(series *Series) []domain.YearlySummary {
	visits := make(map[int]float64)
	pounds := make(map[int]float64)
	for _, d := range series.Days {
		visits[d.Year] += d.Visits
		pounds[d.Year] += d.Pounds
	}

	years := make([]int, 0, len(visits))
	for y := range visits {
		years = append(years, y)
	}
	sort.Ints(years)

	summaries := make([]domain.YearlySummary, 0, len(years))
	for i, year := range years {
		summary := domain.YearlySummary{
			Year:   year,
			Visits: visits[year],
			Pounds: pounds[year],
		}
		if visits[year] != 0 {
			summary.LbsPerVisit = pounds[year] / visits[year]
		}
		if i > 0 {
			prev := years[i-1]
			if visits[prev] != 0 {
				summary.DemandGrowth = visits[year]/visits[prev] - 1
			}
			if pounds[prev] != 0 {
				summary.DistributionGrowth = pounds[year]/pounds[prev] - 1
			}
			summary.HasGrowth = true
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// pluck extracts one measure from a day slice.
func pluck(days []domain.DemandDay, f func(domain.DemandDay) float64) []float64 {
	values := make([]float64, 0, len(days))
	for _, d := range days {
		values = append(values, f(d))
	}
	return values
}
