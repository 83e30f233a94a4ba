package domain

// Volunteer status buckets produced by profile normalization.
const (
	StatusApplicant = "Applicant"
	StatusInProcess = "In Process"
	StatusAccepted  = "Accepted"
	StatusInactive  = "Inactive"
	StatusArchived  = "Archived"
	StatusOther     = "Other"
	StatusUnknown   = "Unknown"
)

// Language classification buckets.
const (
	LanguageMultilingual = "Multilingual"
	LanguageEnglishOnly  = "English only"
	LanguageOther        = "Other/Unknown"
)

// VolunteerProfile holds one volunteer's normalized demographic and status
// attributes, keyed by VolunteerID. Optional source columns that were absent
// from the input are left as empty strings.
type VolunteerProfile struct {
	VolunteerID string `json:"volunteer_id" csv:"VolunteerID"`
	City        string `json:"city,omitempty" csv:"City"`
	PostalCode  string `json:"postal_code,omitempty" csv:"PostalCode"`
	AreaCode    string `json:"area_code,omitempty" csv:"FSA"`
	Province    string `json:"province,omitempty" csv:"Province"`
	Country     string `json:"country,omitempty" csv:"Country"`
	YearsJoined string `json:"years_joined,omitempty" csv:"YearsJoined"`
	Status      string `json:"status,omitempty" csv:"VolunteerStatus"`
	AgeRange    string `json:"age_range,omitempty" csv:"AgeRange"`
	Language    string `json:"language,omitempty" csv:"Language"`
}

// Stopped reports whether the volunteer's status indicates they are no
// longer volunteering.
func (p *VolunteerProfile) Stopped() bool {
	return p.Status == StatusInactive || p.Status == StatusArchived
}
