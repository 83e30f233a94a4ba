package analytics

import (
	"sort"

	"compasscli/pkg/contracts/domain"
)

// CategoryHours aggregates total hours per category across all years
// (sorted by hours descending) and per (year, category) (sorted by year
// ascending, then hours descending within each year).
func CategoryHours(records []domain.ShiftRecord) ([]domain.CategoryStat, []domain.CategoryYearStat) {
	overall := make(map[string]float64)
	yearly := make(map[int]map[string]float64)

	for _, r := range records {
		overall[r.Category] += r.Hours
		byCategory, ok := yearly[r.Year]
		if !ok {
			byCategory = make(map[string]float64)
			yearly[r.Year] = byCategory
		}
		byCategory[r.Category] += r.Hours
	}

	totals := make([]domain.CategoryStat, 0, len(overall))
	for category, hours := range overall {
		totals = append(totals, domain.CategoryStat{Category: category, TotalHours: hours})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalHours != totals[j].TotalHours {
			return totals[i].TotalHours > totals[j].TotalHours
		}
		return totals[i].Category < totals[j].Category
	})

	trend := make([]domain.CategoryYearStat, 0)
	for _, year := range sortedYears(yearly) {
		byCategory := yearly[year]
		yearRows := make([]domain.CategoryYearStat, 0, len(byCategory))
		for category, hours := range byCategory {
			yearRows = append(yearRows, domain.CategoryYearStat{Year: year, Category: category, TotalHours: hours})
		}
		sort.Slice(yearRows, func(i, j int) bool {
			if yearRows[i].TotalHours != yearRows[j].TotalHours {
				return yearRows[i].TotalHours > yearRows[j].TotalHours
			}
			return yearRows[i].Category < yearRows[j].Category
		})
		trend = append(trend, yearRows...)
	}

	return totals, trend
}
