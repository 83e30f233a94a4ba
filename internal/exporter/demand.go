package exporter

import (
	"compasscli/pkg/contracts/domain"
)

// Sheet names of the demand insight workbook.
const (
	SheetDemandDaily    = "Daily"
	SheetDemandWeekly   = "Weekly"
	SheetDemandMonthly  = "Monthly"
	SheetDemandSeasonal = "Seasonal"
	SheetDemandYearly   = "Yearly"
)

// DailySummarySheet renders the single-row whole-series demand summary.
func DailySummarySheet(s domain.DailySummary) Sheet {
	return Sheet{
		Name: SheetDemandDaily,
		Header: []string{
			"avg_daily_visits", "avg_lbs_per_visit",
			"visits_mean", "visits_std", "visits_cv", "visits_volatility",
			"lbs_mean", "lbs_std", "lbs_cv", "lbs_volatility",
			"ppv_mean", "ppv_std", "ppv_cv", "ppv_volatility",
			"unusual_high_count", "unusual_low_count",
		},
		Rows: [][]interface{}{{
			s.AvgDailyVisits, s.AvgLbsPerVisit,
			s.Visits.Mean, s.Visits.Std, s.Visits.CV, s.Visits.Volatility,
			s.Pounds.Mean, s.Pounds.Std, s.Pounds.CV, s.Pounds.Volatility,
			s.PoundsPerVisit.Mean, s.PoundsPerVisit.Std, s.PoundsPerVisit.CV, s.PoundsPerVisit.Volatility,
			s.UnusualHighCount, s.UnusualLowCount,
		}},
	}
}

// WeekdaySharesSheet renders weekday demand/distribution shares.
func WeekdaySharesSheet(shares []domain.WeekdayShare) Sheet {
	sheet := Sheet{
		Name:   SheetDemandWeekly,
		Header: []string{"Day", "demand_share", "distribution_share"},
	}
	for _, s := range shares {
		sheet.Rows = append(sheet.Rows, []interface{}{s.Day, s.DemandShare, s.DistributionShare})
	}
	return sheet
}

// MonthlySummariesSheet renders per-month demand statistics.
func MonthlySummariesSheet(summaries []domain.MonthlySummary) Sheet {
	sheet := Sheet{
		Name: SheetDemandMonthly,
		Header: []string{
			"Month",
			"avg_demand", "std_demand", "cv_demand",
			"avg_dist", "std_dist", "cv_dist",
			"avg_lbs_per_visit", "std_lbs_per_visit", "cv_lbs_per_visit",
		},
	}
	for _, s := range summaries {
		sheet.Rows = append(sheet.Rows, []interface{}{
			s.Month,
			s.Demand.Mean, s.Demand.Std, s.Demand.CV,
			s.Distribution.Mean, s.Distribution.Std, s.Distribution.CV,
			s.PoundsPerVisit.Mean, s.PoundsPerVisit.Std, s.PoundsPerVisit.CV,
		})
	}
	return sheet
}

// SeasonalSummariesSheet renders per-season demand statistics.
func SeasonalSummariesSheet(summaries []domain.SeasonalSummary) Sheet {
	sheet := Sheet{
		Name: SheetDemandSeasonal,
		Header: []string{
			"Season",
			"avg_demand", "std_demand", "cv_demand",
			"avg_dist", "std_dist", "cv_dist",
			"avg_lbs_per_visit", "std_lbs_per_visit", "cv_lbs_per_visit",
		},
	}
	for _, s := range summaries {
		sheet.Rows = append(sheet.Rows, []interface{}{
			s.Season,
			s.Demand.Mean, s.Demand.Std, s.Demand.CV,
			s.Distribution.Mean, s.Distribution.Std, s.Distribution.CV,
			s.PoundsPerVisit.Mean, s.PoundsPerVisit.Std, s.PoundsPerVisit.CV,
		})
	}
	return sheet
}

// YearlySummariesSheet renders per-year totals and growth. The first year's
// growth cells are blank, not zero.
func YearlySummariesSheet(summaries []domain.YearlySummary) Sheet {
	sheet := Sheet{
		Name: SheetDemandYearly,
		Header: []string{
			"Year", "Shopping Trips", "Quantity (lbs)", "lbs_per_visit",
			"yoy_demand_growth", "yoy_distribution_growth",
		},
	}
	for _, s := range summaries {
		var demandGrowth, distGrowth interface{} = "", ""
		if s.HasGrowth {
			demandGrowth = s.DemandGrowth
			distGrowth = s.DistributionGrowth
		}
		sheet.Rows = append(sheet.Rows, []interface{}{
			s.Year, s.Visits, s.Pounds, s.LbsPerVisit, demandGrowth, distGrowth,
		})
	}
	return sheet
}
