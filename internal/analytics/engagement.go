package analytics

import (
	"sort"

	"compasscli/pkg/contracts/domain"
)

// YearlyEngagement describes, per year, the distribution of per-volunteer
// yearly hour totals: volunteer count, mean, sample std, min, quartiles, max.
func YearlyEngagement(records []domain.ShiftRecord) []domain.YearlyEngagementStat {
	totals := hoursByYearVolunteer(records)

	stats := make([]domain.YearlyEngagementStat, 0, len(totals))
	for _, year := range sortedYears(totals) {
		values := make([]float64, 0, len(totals[year]))
		for _, hours := range totals[year] {
			values = append(values, hours)
		}
		sort.Float64s(values)

		avg := mean(values)
		stats = append(stats, domain.YearlyEngagementStat{
			Year:           year,
			VolunteerCount: len(values),
			MeanHours:      avg,
			StdHours:       sampleStd(values, avg),
			MinHours:       values[0],
			P25Hours:       percentile(values, 0.25),
			MedianHours:    percentile(values, 0.50),
			P75Hours:       percentile(values, 0.75),
			MaxHours:       values[len(values)-1],
		})
	}
	return stats
}
