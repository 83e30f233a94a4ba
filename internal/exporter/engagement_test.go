package exporter

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"compasscli/pkg/contracts/domain"
)

// renderSheets flattens sheets into a stable text form for golden
// comparison.
func renderSheets(sheets []Sheet) []byte {
	var buf bytes.Buffer
	for _, s := range sheets {
		fmt.Fprintf(&buf, "# %s\n", s.Name)
		buf.WriteString(strings.Join(s.Header, " | ") + "\n")
		for _, row := range s.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = fmt.Sprintf("%v", c)
			}
			buf.WriteString(strings.Join(cells, " | ") + "\n")
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

func TestEngagementSheets(t *testing.T) {
	sheets := []Sheet{
		YearlyEngagementSheet([]domain.YearlyEngagementStat{{
			Year: 2023, VolunteerCount: 2, MeanHours: 6.5, StdHours: 4.95,
			MinHours: 3, P25Hours: 4.75, MedianHours: 6.5, P75Hours: 8.25, MaxHours: 10,
		}}),
		ConcentrationSheet([]domain.ConcentrationStat{{
			Year: 2023, TotalVolunteers: 2, TopVolunteers: 1, TotalHours: 13,
			TopHours: 10, TopSharePct: 76.92, TopMeanHours: 10, RemainderMeanHours: 3,
		}}),
		RetentionSheet([]domain.RetentionStat{{
			Year: 2023, TotalVolunteers: 2, ActiveVolunteers: 1, InactiveVolunteers: 1,
			ActivePct: 50, InactivePct: 50,
		}}),
		CategorySummarySheet([]domain.CategoryStat{
			{Category: "Food Sort", TotalHours: 8},
			{Category: "Drivers", TotalHours: 6},
		}),
		CategoryTrendSheet([]domain.CategoryYearStat{
			{Year: 2022, Category: "Food Sort", TotalHours: 5},
			{Year: 2023, Category: "Drivers", TotalHours: 6},
		}),
		GrowthSheet([]domain.GrowthStat{{
			Year: 2023, ActiveVolunteers: 2, NewVolunteers: 1, ReturningVolunteers: 1,
			NewPct: 50, ReturningPct: 50,
		}}),
		SeasonAveragesSheet([]domain.SeasonalAverageRow{{
			Year: 2023, Winter: 3, Summer: 6,
		}}),
		MonthAveragesSheet([]domain.MonthlyAverageRow{{
			Year: 2023, Months: [12]float64{2: 5},
		}}),
		AreaStoppedSheet([]domain.AreaStoppedStat{{
			AreaCode: "L5B", TotalVolunteers: 4, StoppedVolunteers: 1, StoppedPct: 25,
		}}),
	}

	g := goldie.New(t)
	g.Assert(t, "engagement_sheets", renderSheets(sheets))
}
