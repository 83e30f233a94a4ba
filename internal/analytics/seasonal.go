package analytics

import (
	"compasscli/pkg/contracts/domain"
)

// periodKey identifies one (year, period-label) cell.
type periodKey struct {
	year   int
	period string
}

// averagesByPeriod computes total hours divided by distinct volunteer count
// for every (year, period) cell, where period is extracted per record.
func averagesByPeriod(records []domain.ShiftRecord, period func(domain.ShiftRecord) string) (map[periodKey]float64, map[int]bool) {
	hours := make(map[periodKey]float64)
	volunteers := make(map[periodKey]map[string]bool)
	years := make(map[int]bool)

	for _, r := range records {
		key := periodKey{year: r.Year, period: period(r)}
		hours[key] += r.Hours
		set, ok := volunteers[key]
		if !ok {
			set = make(map[string]bool)
			volunteers[key] = set
		}
		set[r.VolunteerID] = true
		years[r.Year] = true
	}

	averages := make(map[periodKey]float64, len(hours))
	for key, total := range hours {
		if n := len(volunteers[key]); n > 0 {
			averages[key] = total / float64(n)
		}
	}
	return averages, years
}

// SeasonalAverages computes average hours per distinct volunteer for each
// (year, season). Season cells with no volunteers are 0, not undefined.
func SeasonalAverages(records []domain.ShiftRecord) []domain.SeasonalAverageRow {
	averages, years := averagesByPeriod(records, func(r domain.ShiftRecord) string { return r.Season })

	rows := make([]domain.SeasonalAverageRow, 0, len(years))
	for _, year := range sortedYears(years) {
		rows = append(rows, domain.SeasonalAverageRow{
			Year:   year,
			Winter: averages[periodKey{year, domain.SeasonWinter}],
			Spring: averages[periodKey{year, domain.SeasonSpring}],
			Summer: averages[periodKey{year, domain.SeasonSummer}],
			Autumn: averages[periodKey{year, domain.SeasonAutumn}],
		})
	}
	return rows
}

// MonthlyAverages computes average hours per distinct volunteer for each
// (year, month). Columns are always the twelve months January through
// December regardless of the order months appear in the data; cells with no
// volunteers are 0.
func MonthlyAverages(records []domain.ShiftRecord) []domain.MonthlyAverageRow {
	averages, years := averagesByPeriod(records, func(r domain.ShiftRecord) string { return r.MonthName })

	rows := make([]domain.MonthlyAverageRow, 0, len(years))
	for _, year := range sortedYears(years) {
		row := domain.MonthlyAverageRow{Year: year}
		for i, month := range domain.MonthOrder {
			row.Months[i] = averages[periodKey{year, month}]
		}
		rows = append(rows, row)
	}
	return rows
}
