package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"compasscli/internal/config"
	"compasscli/internal/errors"
	"compasscli/pkg/contracts/domain"
)

// Wire column names of the shift log export. These are the contract with
// the upstream data producer.
const (
	colUserID      = "DatabaseUserId"
	colHours       = "HoursWorked"
	colCategory    = "FinalCategory"
	colSubcategory = "EventSubcategory"
	colDate        = "DateVolunteered"
)

// shiftDateLayouts cover the export's day/month/year 12-hour format with
// and without zero padding.
var shiftDateLayouts = []string{
	"02/01/2006 03:04:05 PM",
	"2/1/2006 3:04:05 PM",
}

// categoryRenames canonicalizes known typos in the category column.
var categoryRenames = map[string]string{
	"Market/Ware house Operation": "Market/Warehouse",
}

// RecordCleaner normalizes raw shift records into domain.ShiftRecord values.
type RecordCleaner struct {
	cfg    config.AnalysisConfig
	logger *slog.Logger
}

// NewRecordCleaner creates a cleaner with the given thresholds.
func NewRecordCleaner(cfg config.AnalysisConfig, logger *slog.Logger) *RecordCleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordCleaner{cfg: cfg, logger: logger}
}

// rowFilter is one named row predicate. Filters are independent, so the
// final row set does not depend on their order; the name feeds the
// per-filter drop counts logged for diagnostics.
type rowFilter struct {
	name string
	keep func(domain.ShiftRecord) bool
}

// filters builds the ordered filter chain from the configured thresholds.
func (c *RecordCleaner) filters() []rowFilter {
	return []rowFilter{
		{
			name: "excluded_year",
			keep: func(r domain.ShiftRecord) bool { return r.Year != c.cfg.ExcludedYear },
		},
		{
			name: "hours_cap",
			keep: func(r domain.ShiftRecord) bool { return r.Hours <= c.cfg.MaxShiftHours },
		},
		{
			name: "excluded_subcategory",
			keep: func(r domain.ShiftRecord) bool { return r.Subcategory != c.cfg.ExcludedSubcategory },
		},
	}
}

// CleanFile reads and cleans the shift log CSV at path.
func (c *RecordCleaner) CleanFile(ctx context.Context, path string) ([]domain.ShiftRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewMissingFileError(path, err)
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open shift log %s", path), err)
	}
	defer file.Close()

	return c.Clean(ctx, file, path)
}

// Clean reads raw CSV rows and returns the cleaned shift records. The name
// is used only in error messages.
func (c *RecordCleaner) Clean(ctx context.Context, r io.Reader, name string) ([]domain.ShiftRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read header of %s", name), err)
	}

	cols, err := mapColumns(header, name, colUserID, colHours, colCategory, colSubcategory, colDate)
	if err != nil {
		return nil, err
	}

	var (
		records     []domain.ShiftRecord
		total       int
		dateDrops   int
		filterChain = c.filters()
		drops       = make(map[string]int, len(filterChain))
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("failed to read row of %s", name), err)
		}
		total++

		record, ok := c.parseRow(row, cols)
		if !ok {
			dateDrops++
			continue
		}

		kept := true
		for _, f := range filterChain {
			if !f.keep(record) {
				drops[f.name]++
				kept = false
				break
			}
		}
		if kept {
			records = append(records, record)
		}
	}

	c.logger.InfoContext(ctx, "shift log cleaned",
		slog.String("file", name),
		slog.Int("raw_rows", total),
		slog.Int("kept_rows", len(records)),
		slog.Int("dropped_unparseable_date", dateDrops),
		slog.Int("dropped_excluded_year", drops["excluded_year"]),
		slog.Int("dropped_hours_cap", drops["hours_cap"]),
		slog.Int("dropped_excluded_subcategory", drops["excluded_subcategory"]))

	return records, nil
}

// parseRow builds a ShiftRecord with its derived calendar fields, or
// reports false when the date cannot be parsed (row-level noise, dropped).
func (c *RecordCleaner) parseRow(row []string, cols map[string]int) (domain.ShiftRecord, bool) {
	get := func(col string) string {
		idx := cols[col]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, ok := parseShiftDate(get(colDate))
	if !ok {
		return domain.ShiftRecord{}, false
	}

	// Lenient numeric coercion; a blank or junk cell becomes 0 hours,
	// which still survives the non-negative contract.
	hours := cast.ToFloat64(strings.ReplaceAll(get(colHours), ",", ""))

	category := get(colCategory)
	if canonical, found := categoryRenames[category]; found {
		category = canonical
	}

	_, week := date.ISOWeek()
	quarter := (int(date.Month())-1)/3 + 1

	return domain.ShiftRecord{
		VolunteerID: get(colUserID),
		Date:        date,
		Year:        date.Year(),
		MonthName:   date.Month().String(),
		DayName:     date.Weekday().String(),
		ISOWeek:     week,
		Quarter:     quarter,
		Season:      domain.SeasonForQuarter(quarter),
		Category:    category,
		Subcategory: get(colSubcategory),
		Hours:       hours,
	}, true
}

// parseShiftDate parses the export's day/month/year AM/PM timestamp.
func parseShiftDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range shiftDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// mapColumns resolves required column names to header positions.
// A missing column is an input error that aborts the run.
func mapColumns(header []string, file string, required ...string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		positions[strings.TrimSpace(stripBOM(h))] = i
	}

	cols := make(map[string]int, len(required))
	for _, col := range required {
		idx, ok := positions[col]
		if !ok {
			return nil, errors.NewMissingColumnError(file, col)
		}
		cols[col] = idx
	}
	return cols, nil
}

// stripBOM removes a UTF-8 byte order mark Excel tends to prepend.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
