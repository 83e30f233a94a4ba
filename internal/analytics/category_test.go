package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compasscli/pkg/contracts/domain"
)

func TestCategoryHoursTotals(t *testing.T) {
	records := []domain.ShiftRecord{
		shift("V1", day(2022, time.March, 1), 5, "Food Sort"),
		shift("V2", day(2023, time.March, 1), 3, "Food Sort"),
		shift("V1", day(2023, time.March, 1), 6, "Drivers"),
		shift("V2", day(2023, time.April, 1), 2, "Market/Warehouse"),
	}

	totals, trend := CategoryHours(records)

	require.Len(t, totals, 3)
	assert.Equal(t, domain.CategoryStat{Category: "Food Sort", TotalHours: 8}, totals[0])
	assert.Equal(t, domain.CategoryStat{Category: "Drivers", TotalHours: 6}, totals[1])
	assert.Equal(t, domain.CategoryStat{Category: "Market/Warehouse", TotalHours: 2}, totals[2])

	require.Len(t, trend, 4)
	assert.Equal(t, domain.CategoryYearStat{Year: 2022, Category: "Food Sort", TotalHours: 5}, trend[0])
	// within 2023: hours descending
	assert.Equal(t, domain.CategoryYearStat{Year: 2023, Category: "Drivers", TotalHours: 6}, trend[1])
	assert.Equal(t, domain.CategoryYearStat{Year: 2023, Category: "Food Sort", TotalHours: 3}, trend[2])
	assert.Equal(t, domain.CategoryYearStat{Year: 2023, Category: "Market/Warehouse", TotalHours: 2}, trend[3])
}

func TestCategoryHoursTieBrokenByName(t *testing.T) {
	records := []domain.ShiftRecord{
		shift("V1", day(2023, time.March, 1), 4, "Drivers"),
		shift("V2", day(2023, time.March, 1), 4, "Admin"),
	}

	totals, _ := CategoryHours(records)
	require.Len(t, totals, 2)
	assert.Equal(t, "Admin", totals[0].Category)
	assert.Equal(t, "Drivers", totals[1].Category)
}
