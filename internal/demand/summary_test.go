package demand

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compasscli/pkg/contracts/domain"
)

func demandDay(date time.Time, visits, pounds float64) domain.DemandDay {
	quarter := (int(date.Month())-1)/3 + 1
	var ppv float64
	if visits != 0 {
		ppv = pounds / visits
	}
	return domain.DemandDay{
		Date:        date,
		Visits:      visits,
		Pounds:      pounds,
		LbsPerVisit: ppv,
		DayName:     date.Weekday().String(),
		MonthName:   date.Month().String(),
		Year:        date.Year(),
		Quarter:     quarter,
		Season:      domain.SeasonForQuarter(quarter),
	}
}

func TestClassifyVolatility(t *testing.T) {
	s := NewSummarizer(testDemandConfig())

	tests := []struct {
		cv       float64
		expected string
	}{
		{0.05, "Very Low Volatility"},
		{0.10, "Low Volatility"}, // band edges are inclusive on the upper side
		{0.15, "Low Volatility"},
		{0.20, "Moderate Volatility"},
		{0.40, "High Volatility"},
		{0.60, "Very High Volatility"},
		{1.5, "Very High Volatility"},
		{math.NaN(), "NA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, s.ClassifyVolatility(tt.cv), "cv %v", tt.cv)
	}
}

func TestDailySummary(t *testing.T) {
	s := NewSummarizer(testDemandConfig())
	series := &Series{Days: []domain.DemandDay{
		demandDay(time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC), 100, 1000),
		demandDay(time.Date(2023, time.January, 11, 0, 0, 0, 0, time.UTC), 200, 3000),
	}}

	summary := s.Daily(series)
	assert.InDelta(t, 150, summary.AvgDailyVisits, 1e-9)
	assert.InDelta(t, 12.5, summary.AvgLbsPerVisit, 1e-9)
	assert.InDelta(t, 2000, summary.Pounds.Mean, 1e-9)
	// sample std of {1000, 3000}
	assert.InDelta(t, math.Sqrt2*1000, summary.Pounds.Std, 1e-6)
	assert.InDelta(t, math.Sqrt2/2, summary.Pounds.CV, 1e-9)
	assert.Equal(t, "Very High Volatility", summary.Pounds.Volatility)
}

func TestDailySummaryOutlierCounts(t *testing.T) {
	cfg := testDemandConfig()
	cfg.ZScoreCutoff = 0.9
	s := NewSummarizer(cfg)

	days := []domain.DemandDay{
		demandDay(time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC), 100, 1000),
		demandDay(time.Date(2023, time.January, 11, 0, 0, 0, 0, time.UTC), 100, 2000),
		demandDay(time.Date(2023, time.January, 12, 0, 0, 0, 0, time.UTC), 100, 3000),
	}
	applyZScores(days)

	summary := s.Daily(&Series{Days: days})
	assert.Equal(t, 1, summary.UnusualHighCount)
	assert.Equal(t, 1, summary.UnusualLowCount)
}

func TestDailySummaryEmptySeries(t *testing.T) {
	s := NewSummarizer(testDemandConfig())
	summary := s.Daily(&Series{})
	assert.True(t, math.IsNaN(summary.Pounds.CV))
	assert.Equal(t, "NA", summary.Pounds.Volatility)
}

func TestWeeklyShares(t *testing.T) {
	s := NewSummarizer(testDemandConfig())
	series := &Series{Days: []domain.DemandDay{
		demandDay(time.Date(2023, time.January, 9, 0, 0, 0, 0, time.UTC), 100, 1000),  // Monday
		demandDay(time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC), 300, 1000), // Tuesday
	}}

	shares := s.Weekly(series)
	require.Len(t, shares, 7)

	assert.Equal(t, "Monday", shares[0].Day)
	assert.InDelta(t, 0.25, shares[0].DemandShare, 1e-9)
	assert.InDelta(t, 0.5, shares[0].DistributionShare, 1e-9)
	assert.Equal(t, "Tuesday", shares[1].Day)
	assert.InDelta(t, 0.75, shares[1].DemandShare, 1e-9)
	assert.Equal(t, "Sunday", shares[6].Day)
	assert.Zero(t, shares[6].DemandShare)

	var demandTotal float64
	for _, sh := range shares {
		demandTotal += sh.DemandShare
	}
	assert.InDelta(t, 1, demandTotal, 1e-9)
}

func TestMonthlyAllTwelveMonths(t *testing.T) {
	s := NewSummarizer(testDemandConfig())
	series := &Series{Days: []domain.DemandDay{
		demandDay(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), 100, 1000),
	}}

	summaries := s.Monthly(series)
	require.Len(t, summaries, 12)
	assert.Equal(t, "January", summaries[0].Month)
	assert.Equal(t, "NA", summaries[0].Demand.Volatility)
	assert.Equal(t, "March", summaries[2].Month)
	assert.InDelta(t, 100, summaries[2].Demand.Mean, 1e-9)
	assert.Equal(t, "December", summaries[11].Month)
}

func TestSeasonalAllFourSeasons(t *testing.T) {
	s := NewSummarizer(testDemandConfig())
	series := &Series{Days: []domain.DemandDay{
		demandDay(time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC), 100, 1000),
	}}

	summaries := s.Seasonal(series)
	require.Len(t, summaries, 4)
	assert.Equal(t, "Winter", summaries[0].Season)
	assert.Equal(t, "NA", summaries[0].Distribution.Volatility)
	assert.Equal(t, "Summer", summaries[2].Season)
	assert.InDelta(t, 1000, summaries[2].Distribution.Mean, 1e-9)
}

func TestYearlyGrowth(t *testing.T) {
	s := NewSummarizer(testDemandConfig())
	series := &Series{Days: []domain.DemandDay{
		demandDay(time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC), 100, 2000),
		demandDay(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC), 110, 3000),
	}}

	summaries := s.Yearly(series)
	require.Len(t, summaries, 2)

	first := summaries[0]
	assert.Equal(t, 2022, first.Year)
	assert.False(t, first.HasGrowth)
	assert.InDelta(t, 20, first.LbsPerVisit, 1e-9)

	second := summaries[1]
	assert.Equal(t, 2023, second.Year)
	assert.True(t, second.HasGrowth)
	assert.InDelta(t, 0.10, second.DemandGrowth, 1e-9)
	assert.InDelta(t, 0.50, second.DistributionGrowth, 1e-9)
}
