package analytics

import (
	"time"

	"compasscli/pkg/contracts/domain"
)

// RollingRetention classifies each year's volunteers as active or inactive.
// Training records are excluded. A volunteer active in a year is inactive
// for that year iff their latest shift predates December 31 of that year by
// strictly more than inactivityDays. This is a per-year snapshot rule: it
// detects volunteers who stopped showing up well before year end, without
// waiting into the following year. Years with no qualifying volunteers emit
// no row.
func RollingRetention(records []domain.ShiftRecord, trainingCategory string, inactivityDays int) []domain.RetentionStat {
	filtered := excludeCategory(records, trainingCategory)

	lastShift := make(map[int]map[string]time.Time)
	for _, r := range filtered {
		byVolunteer, ok := lastShift[r.Year]
		if !ok {
			byVolunteer = make(map[string]time.Time)
			lastShift[r.Year] = byVolunteer
		}
		if r.Date.After(byVolunteer[r.VolunteerID]) {
			byVolunteer[r.VolunteerID] = r.Date
		}
	}

	stats := make([]domain.RetentionStat, 0, len(lastShift))
	for _, year := range sortedYears(lastShift) {
		byVolunteer := lastShift[year]
		if len(byVolunteer) == 0 {
			continue
		}

		yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

		var inactive int
		for _, last := range byVolunteer {
			days := int(yearEnd.Sub(last).Hours() / 24)
			if days > inactivityDays {
				inactive++
			}
		}

		total := len(byVolunteer)
		active := total - inactive
		stats = append(stats, domain.RetentionStat{
			Year:               year,
			TotalVolunteers:    total,
			ActiveVolunteers:   active,
			InactiveVolunteers: inactive,
			ActivePct:          float64(active) / float64(total) * 100,
			InactivePct:        float64(inactive) / float64(total) * 100,
		})
	}
	return stats
}
