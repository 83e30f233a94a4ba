package analytics

import (
	"math"
	"sort"

	"compasscli/pkg/contracts/domain"
)

// mean returns the arithmetic mean of values, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd returns the sample standard deviation (n-1 denominator),
// 0 when fewer than two values.
func sampleStd(values []float64, avg float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - avg
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// percentile returns the p-th percentile (0..1) of an ascending-sorted
// slice using linear interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// hoursByYearVolunteer sums hours per volunteer within each year.
func hoursByYearVolunteer(records []domain.ShiftRecord) map[int]map[string]float64 {
	totals := make(map[int]map[string]float64)
	for _, r := range records {
		byVolunteer, ok := totals[r.Year]
		if !ok {
			byVolunteer = make(map[string]float64)
			totals[r.Year] = byVolunteer
		}
		byVolunteer[r.VolunteerID] += r.Hours
	}
	return totals
}

// sortedYears returns the map's year keys in ascending order.
func sortedYears[V any](byYear map[int]V) []int {
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// excludeCategory returns the records whose category differs from the given
// one, without mutating the input slice.
func excludeCategory(records []domain.ShiftRecord, category string) []domain.ShiftRecord {
	filtered := make([]domain.ShiftRecord, 0, len(records))
	for _, r := range records {
		if r.Category != category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
