package domain

import (
	"time"
)

// Season names in reporting order.
const (
	SeasonWinter = "Winter"
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonAutumn = "Autumn"
)

// SeasonOrder is the canonical output order for seasonal tables.
var SeasonOrder = []string{SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn}

// MonthOrder is the canonical January-to-December output order for monthly
// tables, independent of the order months appear in the input data.
var MonthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SeasonForQuarter maps a calendar quarter to its season label.
// The mapping is fixed (quarter 1 is Winter, not the astronomical season)
// and every downstream table relies on it being reproduced exactly.
func SeasonForQuarter(quarter int) string {
	switch quarter {
	case 1:
		return SeasonWinter
	case 2:
		return SeasonSpring
	case 3:
		return SeasonSummer
	case 4:
		return SeasonAutumn
	}
	return ""
}

// ShiftRecord is one cleaned logged volunteering event. Calendar fields are
// derived once at cleaning time and never recomputed by downstream metrics,
// so all reports agree on bucketing.
type ShiftRecord struct {
	VolunteerID string    `json:"volunteer_id" csv:"VolunteerID"`
	Date        time.Time `json:"date" csv:"Date"`
	Year        int       `json:"year" csv:"Year"`
	MonthName   string    `json:"month" csv:"Month"`
	DayName     string    `json:"day_name" csv:"DayName"`
	ISOWeek     int       `json:"iso_week" csv:"Week"`
	Quarter     int       `json:"quarter" csv:"Quarter"`
	Season      string    `json:"season" csv:"Season"`
	Category    string    `json:"category" csv:"Category"`
	Subcategory string    `json:"subcategory" csv:"SubCategory"`
	Hours       float64   `json:"hours" csv:"Hours"`
}

// MergedRecord is a ShiftRecord left-joined with its volunteer profile.
// Profile is nil when no profile exists for the volunteer; the join never
// drops shift rows.
type MergedRecord struct {
	ShiftRecord
	Profile *VolunteerProfile `json:"profile,omitempty"`
}
