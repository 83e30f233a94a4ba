package analytics

import (
	"math"
	"sort"

	"compasscli/pkg/contracts/domain"
)

// TopConcentration reports, per year, the share of total hours contributed
// by the top `share` fraction of volunteers ranked by hours descending.
// The top segment holds ceil(share x N) volunteers. Years with zero
// volunteers emit no row.
func TopConcentration(records []domain.ShiftRecord, share float64) []domain.ConcentrationStat {
	totals := hoursByYearVolunteer(records)

	stats := make([]domain.ConcentrationStat, 0, len(totals))
	for _, year := range sortedYears(totals) {
		byVolunteer := totals[year]
		if len(byVolunteer) == 0 {
			continue
		}

		type volunteerTotal struct {
			id    string
			hours float64
		}
		ranked := make([]volunteerTotal, 0, len(byVolunteer))
		for id, hours := range byVolunteer {
			ranked = append(ranked, volunteerTotal{id: id, hours: hours})
		}
		// Hours descending; ties broken by id so reruns are identical.
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].hours != ranked[j].hours {
				return ranked[i].hours > ranked[j].hours
			}
			return ranked[i].id < ranked[j].id
		})

		topN := int(math.Ceil(share * float64(len(ranked))))

		var totalHours, topHours float64
		for i, v := range ranked {
			totalHours += v.hours
			if i < topN {
				topHours += v.hours
			}
		}

		remainderCount := len(ranked) - topN
		stat := domain.ConcentrationStat{
			Year:            year,
			TotalVolunteers: len(ranked),
			TopVolunteers:   topN,
			TotalHours:      totalHours,
			TopHours:        topHours,
		}
		if totalHours > 0 {
			stat.TopSharePct = topHours / totalHours * 100
		}
		if topN > 0 {
			stat.TopMeanHours = topHours / float64(topN)
		}
		if remainderCount > 0 {
			stat.RemainderMeanHours = (totalHours - topHours) / float64(remainderCount)
		}

		stats = append(stats, stat)
	}
	return stats
}
