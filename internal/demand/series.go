// Package demand cleans the daily demand/distribution time series and
// produces its descriptive summaries: whole-series, weekday, monthly,
// seasonal, and yearly tables. Like the engagement pipeline it runs once
// over a static dataset and exports only aggregates.
package demand

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ca"
	"github.com/spf13/cast"

	"compasscli/internal/config"
	"compasscli/internal/errors"
	"compasscli/pkg/contracts/domain"
)

// Wire column names of the demand export.
const (
	colDate   = "Date"
	colVisits = "Shopping Trips by Day"
	colPounds = "Quantity (lbs) by Day"
)

var demandDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2/1/2006",
}

// Series is the cleaned demand/distribution time series.
type Series struct {
	Days []domain.DemandDay
}

// Loader reads and cleans the demand series.
type Loader struct {
	cfg    config.DemandConfig
	logger *slog.Logger
}

// NewLoader creates a series loader with the given thresholds.
func NewLoader(cfg config.DemandConfig, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{cfg: cfg, logger: logger}
}

// LoadFile reads and cleans the demand series CSV at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewMissingFileError(path, err)
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open demand series %s", path), err)
	}
	defer file.Close()

	return l.Load(ctx, file, path)
}

// Load reads raw CSV rows and returns the cleaned, date-sorted series with
// derived calendar, holiday, and outlier-score fields.
func (l *Loader) Load(ctx context.Context, r io.Reader, name string) (*Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read header of %s", name), err)
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		positions[strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))] = i
	}
	for _, col := range []string{colDate, colVisits, colPounds} {
		if _, ok := positions[col]; !ok {
			return nil, errors.NewMissingColumnError(name, col)
		}
	}

	holidayCalendar := &cal.Calendar{Name: "Canada"}
	holidayCalendar.AddHoliday(ca.Holidays...)

	var days []domain.DemandDay
	var dropped int

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("failed to read row of %s", name), err)
		}

		get := func(col string) string {
			idx := positions[col]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		date, ok := parseDemandDate(get(colDate))
		if !ok {
			dropped++
			continue
		}

		visits := cast.ToFloat64(strings.ReplaceAll(get(colVisits), ",", ""))
		pounds := cast.ToFloat64(strings.ReplaceAll(get(colPounds), ",", ""))

		var ppv float64
		if visits != 0 {
			ppv = pounds / visits
		}

		quarter := (int(date.Month())-1)/3 + 1
		day := domain.DemandDay{
			Date:        date,
			Visits:      visits,
			Pounds:      pounds,
			LbsPerVisit: ppv,
			DayName:     date.Weekday().String(),
			MonthName:   date.Month().String(),
			Year:        date.Year(),
			Quarter:     quarter,
			Season:      domain.SeasonForQuarter(quarter),
		}

		if date.Year() >= l.cfg.HolidayYearsFrom && date.Year() <= l.cfg.HolidayYearsTo {
			if actual, observed, holiday := holidayCalendar.IsHoliday(date); actual || observed {
				day.IsHoliday = true
				if holiday != nil {
					day.HolidayName = holiday.Name
				}
			}
		}

		days = append(days, day)
	}

	sortByDate(days)
	applyZScores(days)

	l.logger.InfoContext(ctx, "demand series loaded",
		slog.String("file", name),
		slog.Int("days", len(days)),
		slog.Int("dropped_unparseable_date", dropped))

	return &Series{Days: days}, nil
}

func parseDemandDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range demandDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sortByDate(days []domain.DemandDay) {
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
}

// applyZScores scores each day's pounds against the whole-series mean and
// sample standard deviation.
func applyZScores(days []domain.DemandDay) {
	if len(days) == 0 {
		return
	}
	var sum float64
	for _, d := range days {
		sum += d.Pounds
	}
	avg := sum / float64(len(days))

	var sq float64
	for _, d := range days {
		diff := d.Pounds - avg
		sq += diff * diff
	}
	std := 0.0
	if len(days) > 1 {
		std = math.Sqrt(sq / float64(len(days)-1))
	}

	for i := range days {
		if std > 0 {
			days[i].ZScorePounds = (days[i].Pounds - avg) / std
		}
	}
}
