package domain

import (
	"time"
)

// DemandDay is one cleaned day of the demand/distribution time series with
// its derived calendar and outlier fields.
type DemandDay struct {
	Date         time.Time `json:"date"`
	Visits       float64   `json:"visits"`
	Pounds       float64   `json:"pounds"`
	LbsPerVisit  float64   `json:"lbs_per_visit"`
	DayName      string    `json:"day_name"`
	MonthName    string    `json:"month"`
	Year         int       `json:"year"`
	Quarter      int       `json:"quarter"`
	Season       string    `json:"season"`
	IsHoliday    bool      `json:"is_holiday"`
	HolidayName  string    `json:"holiday_name,omitempty"`
	ZScorePounds float64   `json:"z_score_lbs"`
}

// MeasureStats holds mean/spread statistics for one demand measure.
// CV is NaN when the mean is zero; Volatility is then the "NA" marker.
type MeasureStats struct {
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	CV         float64 `json:"cv"`
	Volatility string  `json:"volatility"`
}

// DailySummary is the single-row whole-series demand summary.
type DailySummary struct {
	AvgDailyVisits   float64      `json:"avg_daily_visits"`
	AvgLbsPerVisit   float64      `json:"avg_lbs_per_visit"`
	Visits           MeasureStats `json:"visits"`
	Pounds           MeasureStats `json:"lbs"`
	PoundsPerVisit   MeasureStats `json:"ppv"`
	UnusualHighCount int          `json:"unusual_high_count"`
	UnusualLowCount  int          `json:"unusual_low_count"`
}

// WeekdayShare is one weekday's share of total demand and distribution.
type WeekdayShare struct {
	Day               string  `json:"day"`
	DemandShare       float64 `json:"demand_share"`
	DistributionShare float64 `json:"distribution_share"`
}

// MonthlySummary holds per-month demand statistics.
type MonthlySummary struct {
	Month          string       `json:"month"`
	Demand         MeasureStats `json:"demand"`
	Distribution   MeasureStats `json:"distribution"`
	PoundsPerVisit MeasureStats `json:"lbs_per_visit"`
}

// SeasonalSummary holds per-season demand statistics.
type SeasonalSummary struct {
	Season         string       `json:"season"`
	Demand         MeasureStats `json:"demand"`
	Distribution   MeasureStats `json:"distribution"`
	PoundsPerVisit MeasureStats `json:"lbs_per_visit"`
}

// YearlySummary holds one year's totals and year-over-year growth. Growth
// fields are only meaningful when HasGrowth is true (not the first year).
type YearlySummary struct {
	Year               int     `json:"year"`
	Visits             float64 `json:"visits"`
	Pounds             float64 `json:"lbs"`
	LbsPerVisit        float64 `json:"lbs_per_visit"`
	DemandGrowth       float64 `json:"yoy_demand_growth"`
	DistributionGrowth float64 `json:"yoy_distribution_growth"`
	HasGrowth          bool    `json:"has_growth"`
}
