package analytics

import (
	"compasscli/pkg/contracts/domain"
)

// GrowthDecomposition splits each year's active volunteers into new and
// returning. Training records are excluded. A volunteer is new in the year
// that is their first-ever active year over the same Training-excluded
// table; returning is the arithmetic difference active - new, never a
// separate distinct count. Years with no new volunteers report an explicit
// zero.
func GrowthDecomposition(records []domain.ShiftRecord, trainingCategory string) []domain.GrowthStat {
	filtered := excludeCategory(records, trainingCategory)

	activeByYear := make(map[int]map[string]bool)
	firstYear := make(map[string]int)

	for _, r := range filtered {
		byVolunteer, ok := activeByYear[r.Year]
		if !ok {
			byVolunteer = make(map[string]bool)
			activeByYear[r.Year] = byVolunteer
		}
		byVolunteer[r.VolunteerID] = true

		if first, seen := firstYear[r.VolunteerID]; !seen || r.Year < first {
			firstYear[r.VolunteerID] = r.Year
		}
	}

	newByYear := make(map[int]int)
	for _, year := range firstYear {
		newByYear[year]++
	}

	stats := make([]domain.GrowthStat, 0, len(activeByYear))
	for _, year := range sortedYears(activeByYear) {
		active := len(activeByYear[year])
		newCount := newByYear[year]
		stat := domain.GrowthStat{
			Year:                year,
			ActiveVolunteers:    active,
			NewVolunteers:       newCount,
			ReturningVolunteers: active - newCount,
		}
		if active > 0 {
			stat.NewPct = float64(newCount) / float64(active) * 100
			stat.ReturningPct = float64(stat.ReturningVolunteers) / float64(active) * 100
		}
		stats = append(stats, stat)
	}
	return stats
}
