package demand

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compasscli/internal/config"
	"compasscli/internal/errors"
)

func testDemandConfig() config.DemandConfig {
	return config.DemandConfig{
		ZScoreCutoff:          3,
		VeryLowVolatilityMax:  0.10,
		LowVolatilityMax:      0.20,
		ModerateVolatilityMax: 0.40,
		HighVolatilityMax:     0.60,
		HolidayYearsFrom:      2017,
		HolidayYearsTo:        2030,
	}
}

const demandHeader = "Date,Shopping Trips by Day,Quantity (lbs) by Day\n"

func loadSeries(t *testing.T, body string) *Series {
	t.Helper()
	loader := NewLoader(testDemandConfig(), nil)
	series, err := loader.Load(context.Background(), strings.NewReader(demandHeader+body), "test.csv")
	require.NoError(t, err)
	return series
}

func TestLoadDerivedFields(t *testing.T) {
	series := loadSeries(t, "2023-01-10,200,5000\n")
	require.Len(t, series.Days, 1)

	d := series.Days[0]
	assert.Equal(t, time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC), d.Date)
	assert.Equal(t, 200.0, d.Visits)
	assert.Equal(t, 5000.0, d.Pounds)
	assert.InDelta(t, 25, d.LbsPerVisit, 1e-9)
	assert.Equal(t, "Tuesday", d.DayName)
	assert.Equal(t, "January", d.MonthName)
	assert.Equal(t, 2023, d.Year)
	assert.Equal(t, 1, d.Quarter)
	assert.Equal(t, "Winter", d.Season)
	assert.False(t, d.IsHoliday)
}

func TestLoadSortsByDate(t *testing.T) {
	series := loadSeries(t,
		"2023-01-12,100,1000\n"+
			"2023-01-10,100,1000\n"+
			"2023-01-11,100,1000\n")
	require.Len(t, series.Days, 3)
	assert.Equal(t, 10, series.Days[0].Date.Day())
	assert.Equal(t, 11, series.Days[1].Date.Day())
	assert.Equal(t, 12, series.Days[2].Date.Day())
}

func TestLoadThousandsSeparators(t *testing.T) {
	series := loadSeries(t, "2023-01-10,\"1,200\",\"25,000\"\n")
	require.Len(t, series.Days, 1)
	assert.Equal(t, 1200.0, series.Days[0].Visits)
	assert.Equal(t, 25000.0, series.Days[0].Pounds)
}

func TestLoadZeroVisitsNoDivide(t *testing.T) {
	series := loadSeries(t, "2023-01-10,0,5000\n")
	require.Len(t, series.Days, 1)
	assert.Zero(t, series.Days[0].LbsPerVisit)
}

func TestLoadDropsUnparseableDates(t *testing.T) {
	series := loadSeries(t,
		"2023-01-10,100,1000\n"+
			"not a date,100,1000\n"+
			",100,1000\n")
	assert.Len(t, series.Days, 1)
}

func TestLoadFlagsCanadianHolidays(t *testing.T) {
	series := loadSeries(t,
		"2023-07-01,100,1000\n"+
			"2023-07-04,100,1000\n")
	require.Len(t, series.Days, 2)

	assert.True(t, series.Days[0].IsHoliday)
	assert.NotEmpty(t, series.Days[0].HolidayName)
	assert.False(t, series.Days[1].IsHoliday)
}

func TestLoadZScores(t *testing.T) {
	series := loadSeries(t,
		"2023-01-10,100,1000\n"+
			"2023-01-11,100,2000\n"+
			"2023-01-12,100,3000\n")
	require.Len(t, series.Days, 3)

	// mean 2000, sample std 1000
	assert.InDelta(t, -1, series.Days[0].ZScorePounds, 1e-9)
	assert.InDelta(t, 0, series.Days[1].ZScorePounds, 1e-9)
	assert.InDelta(t, 1, series.Days[2].ZScorePounds, 1e-9)
}

func TestLoadMissingColumn(t *testing.T) {
	loader := NewLoader(testDemandConfig(), nil)
	csv := "Date,Shopping Trips by Day\n2023-01-10,100\n"

	_, err := loader.Load(context.Background(), strings.NewReader(csv), "test.csv")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
	assert.Contains(t, err.Error(), "Quantity (lbs) by Day")
}

func TestLoadFileMissing(t *testing.T) {
	loader := NewLoader(testDemandConfig(), nil)
	_, err := loader.LoadFile(context.Background(), "does/not/exist.csv")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))
}
