package dataprocessing

import (
	"compasscli/pkg/contracts/domain"
)

// Merge left-joins cleaned shift records to normalized profiles by
// volunteer id. Every shift row is kept; Profile is nil when no profile
// exists. Duplicate profiles for an id resolve to the first occurrence.
func Merge(shifts []domain.ShiftRecord, profiles []domain.VolunteerProfile) []domain.MergedRecord {
	byID := make(map[string]*domain.VolunteerProfile, len(profiles))
	for i := range profiles {
		if _, exists := byID[profiles[i].VolunteerID]; !exists {
			byID[profiles[i].VolunteerID] = &profiles[i]
		}
	}

	merged := make([]domain.MergedRecord, 0, len(shifts))
	for _, shift := range shifts {
		merged = append(merged, domain.MergedRecord{
			ShiftRecord: shift,
			Profile:     byID[shift.VolunteerID],
		})
	}
	return merged
}
