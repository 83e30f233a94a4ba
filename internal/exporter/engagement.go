package exporter

import (
	"compasscli/pkg/contracts/domain"
)

// Sheet names of the engagement workbook. These are the contract with
// report consumers.
const (
	SheetYearlyEngagement = "Yearly Engagement"
	SheetConcentration    = "Top 20% Concentration"
	SheetRetention        = "Inactivity (Rolling 6mo)"
	SheetCategorySummary  = "Category Summary"
	SheetCategoryTrend    = "Category Trend"
	SheetGrowth           = "New vs Returning"
	SheetSeasonAverages   = "Season Avg Hours"
	SheetMonthAverages    = "Month Avg Hours"
	SheetAreaStopped      = "FSA Stopped Summary"
)

// YearlyEngagementSheet renders the per-year engagement distribution.
func YearlyEngagementSheet(stats []domain.YearlyEngagementStat) Sheet {
	sheet := Sheet{
		Name:   SheetYearlyEngagement,
		Header: []string{"Year", "VolunteerCount", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"},
	}
	for _, s := range stats {
		sheet.Rows = append(sheet.Rows, []interface{}{
			s.Year, s.VolunteerCount, s.MeanHours, s.StdHours,
			s.MinHours, s.P25Hours, s.MedianHours, s.P75Hours, s.MaxHours,
		})
	}
	return sheet
}

// ConcentrationSheet renders the top-segment concentration table.
func ConcentrationSheet(stats []domain.ConcentrationStat) Sheet {
	sheet := Sheet{
		Name: SheetConcentration,
		Header: []string{
			"Year", "Total Volunteers", "Top 20% Volunteers", "Total Hours",
			"Top 20% Hours", "Top 20% Share (%)", "Mean Hours (Top 20%)", "Mean Hours (Other 80%)",
		},
	}
	for _, s := range stats {
		sheet.Rows = append(sheet.Rows, []interface{}{
			s.Year, s.TotalVolunteers, s.TopVolunteers, s.TotalHours,
			s.TopHours, s.TopSharePct, s.TopMeanHours, s.RemainderMeanHours,
		})
	}
	return sheet
}

// RetentionSheet renders the yearly inactivity classification.
func RetentionSheet(stats []domain.RetentionStat) Sheet {
	sheet := Sheet{
		Name: SheetRetention,
		Header: []string{
			"Year", "Total Volunteers", "Active Volunteers", "Inactive Volunteers",
			"Active (%)", "Inactive (%)",
		},
	}
	for _, s := range stats {
		sheet.Rows = append(sheet.Rows, []interface{}{
			s.Year, s.TotalVolunteers, s.ActiveVolunteers, s.InactiveVolunteers,
			s.ActivePct, s.InactivePct,
		})
	}
	return sheet
}

// CategorySummarySheet renders all-years totals per category.
func CategorySummarySheet(stats []domain.CategoryStat) Sheet {
	sheet := Sheet{
		Name:   SheetCategorySummary,
		Header: []string{"Category", "TotalHours"},
	}
	for _, s := range stats {
		sheet.Rows = append(sheet.Rows, []interface{}{s.Category, s.TotalHours})
	}
	return sheet
}

// CategoryTrendSheet renders per-year totals per category.
func CategoryTrendSheet(stats []domain.CategoryYearStat) Sheet {
	sheet := Sheet{
		Name:   SheetCategoryTrend,
		Header: []string{"Year", "Category", "TotalHours"},
	}
	for _, s := range stats {
		sheet.Rows = append(sheet.Rows, []interface{}{s.Year, s.Category, s.TotalHours})
	}
	return sheet
}

// GrowthSheet renders the new-versus-returning decomposition.
func GrowthSheet(stats []domain.GrowthStat) Sheet {
	sheet := Sheet{
		Name: SheetGrowth,
		Header: []string{
			"Year", "ActiveVolunteers", "NewVolunteers", "ReturningVolunteers",
			"% New", "% Returning",
		},
	}
	for _, s := range stats {
		sheet.Rows = append(sheet.Rows, []interface{}{
			s.Year, s.ActiveVolunteers, s.NewVolunteers, s.ReturningVolunteers,
			s.NewPct, s.ReturningPct,
		})
	}
	return sheet
}

// SeasonAveragesSheet renders average hours per volunteer by season.
func SeasonAveragesSheet(rows []domain.SeasonalAverageRow) Sheet {
	sheet := Sheet{
		Name:   SheetSeasonAverages,
		Header: append([]string{"Year"}, domain.SeasonOrder...),
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []interface{}{r.Year, r.Winter, r.Spring, r.Summer, r.Autumn})
	}
	return sheet
}

// MonthAveragesSheet renders average hours per volunteer by month, columns
// always January through December.
func MonthAveragesSheet(rows []domain.MonthlyAverageRow) Sheet {
	sheet := Sheet{
		Name:   SheetMonthAverages,
		Header: append([]string{"Year"}, domain.MonthOrder...),
	}
	for _, r := range rows {
		row := make([]interface{}, 0, len(r.Months)+1)
		row = append(row, r.Year)
		for _, avg := range r.Months {
			row = append(row, avg)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// AreaStoppedSheet renders the optional per-area stopped summary. Only the
// four aggregated columns appear; geometry never reaches the workbook.
func AreaStoppedSheet(stats []domain.AreaStoppedStat) Sheet {
	sheet := Sheet{
		Name:   SheetAreaStopped,
		Header: []string{"FSA", "TotalVolunteers", "StoppedVolunteers", "StoppedPct"},
	}
	for _, s := range stats {
		sheet.Rows = append(sheet.Rows, []interface{}{
			s.AreaCode, s.TotalVolunteers, s.StoppedVolunteers, s.StoppedPct,
		})
	}
	return sheet
}
