package domain

// YearlyEngagementStat describes the distribution of per-volunteer yearly
// hour totals for a single year. Count is reported as the volunteer count.
type YearlyEngagementStat struct {
	Year           int     `json:"year"`
	VolunteerCount int     `json:"volunteer_count"`
	MeanHours      float64 `json:"mean_hours"`
	StdHours       float64 `json:"std_hours"`
	MinHours       float64 `json:"min_hours"`
	P25Hours       float64 `json:"p25_hours"`
	MedianHours    float64 `json:"median_hours"`
	P75Hours       float64 `json:"p75_hours"`
	MaxHours       float64 `json:"max_hours"`
}

// ConcentrationStat reports how much of a year's total hours the most
// active segment of volunteers contributed.
type ConcentrationStat struct {
	Year               int     `json:"year"`
	TotalVolunteers    int     `json:"total_volunteers"`
	TopVolunteers      int     `json:"top_volunteers"`
	TotalHours         float64 `json:"total_hours"`
	TopHours           float64 `json:"top_hours"`
	TopSharePct        float64 `json:"top_share_pct"`
	TopMeanHours       float64 `json:"top_mean_hours"`
	RemainderMeanHours float64 `json:"remainder_mean_hours"`
}

// RetentionStat is a per-year snapshot of the inactivity classification:
// a volunteer active that year is inactive iff their last shift predates
// year end by more than the configured window.
type RetentionStat struct {
	Year               int     `json:"year"`
	TotalVolunteers    int     `json:"total_volunteers"`
	ActiveVolunteers   int     `json:"active_volunteers"`
	InactiveVolunteers int     `json:"inactive_volunteers"`
	ActivePct          float64 `json:"active_pct"`
	InactivePct        float64 `json:"inactive_pct"`
}

// CategoryStat is the all-years hour total for one category.
type CategoryStat struct {
	Category   string  `json:"category"`
	TotalHours float64 `json:"total_hours"`
}

// CategoryYearStat is the hour total for one (year, category) pair.
type CategoryYearStat struct {
	Year       int     `json:"year"`
	Category   string  `json:"category"`
	TotalHours float64 `json:"total_hours"`
}

// GrowthStat decomposes a year's active volunteers into new (first-ever
// active year equals this year) and returning (the arithmetic remainder).
type GrowthStat struct {
	Year                int     `json:"year"`
	ActiveVolunteers    int     `json:"active_volunteers"`
	NewVolunteers       int     `json:"new_volunteers"`
	ReturningVolunteers int     `json:"returning_volunteers"`
	NewPct              float64 `json:"new_pct"`
	ReturningPct        float64 `json:"returning_pct"`
}

// SeasonalAverageRow holds one year's average hours per distinct volunteer
// for each season. Seasons with no volunteers are 0.
type SeasonalAverageRow struct {
	Year   int     `json:"year"`
	Winter float64 `json:"winter"`
	Spring float64 `json:"spring"`
	Summer float64 `json:"summer"`
	Autumn float64 `json:"autumn"`
}

// MonthlyAverageRow holds one year's average hours per distinct volunteer
// for each month, indexed in MonthOrder. Months with no volunteers are 0.
type MonthlyAverageRow struct {
	Year   int         `json:"year"`
	Months [12]float64 `json:"months"`
}

// AreaStoppedStat aggregates stopped-volunteer rates per postal area code.
// Only these four non-geometric columns are ever exported.
type AreaStoppedStat struct {
	AreaCode          string  `json:"area_code"`
	TotalVolunteers   int     `json:"total_volunteers"`
	StoppedVolunteers int     `json:"stopped_volunteers"`
	StoppedPct        float64 `json:"stopped_pct"`
}
