// Package geo provides the optional per-area stopped-volunteer aggregation.
// It only activates when the boundary shapefile is present; otherwise the
// pipeline proceeds with this output omitted. Only aggregated non-geometric
// columns ever leave this package.
package geo

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"compasscli/internal/files"
	"compasscli/pkg/contracts/domain"
)

// boundary attribute names accepted for the area code; the first is the
// canonical one in the national boundary release.
var areaAttributeNames = []string{"CFSAUID", "FSA"}

// Aggregator produces the per-area stopped-volunteer table, or nothing when
// the capability is unavailable.
type Aggregator interface {
	// Enabled reports whether the boundary dataset was found at startup.
	Enabled() bool
	// Aggregate returns the per-area table, or (nil, nil) when disabled.
	Aggregate(ctx context.Context, merged []domain.MergedRecord) ([]domain.AreaStoppedStat, error)
}

// Capability checks once at startup whether the boundary dataset exists and
// returns either an active aggregator or a disabled stand-in, so presence
// checks do not leak into the aggregation logic.
func Capability(boundaryPath string, logger *slog.Logger) Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if boundaryPath == "" || !files.Exists(boundaryPath) {
		logger.Info("boundary dataset not available, area aggregation disabled",
			slog.String("path", boundaryPath))
		return disabled{}
	}
	return &shapefileAggregator{path: boundaryPath, logger: logger}
}

// disabled is the stand-in used when the boundary dataset is absent.
type disabled struct{}

func (disabled) Enabled() bool { return false }

func (disabled) Aggregate(context.Context, []domain.MergedRecord) ([]domain.AreaStoppedStat, error) {
	return nil, nil
}

// shapefileAggregator aggregates stopped-volunteer rates per area code and
// restricts the result to areas present in the boundary dataset.
type shapefileAggregator struct {
	path   string
	logger *slog.Logger
}

func (a *shapefileAggregator) Enabled() bool { return true }

func (a *shapefileAggregator) Aggregate(ctx context.Context, merged []domain.MergedRecord) ([]domain.AreaStoppedStat, error) {
	stats := SummarizeAreas(merged)
	if len(stats) == 0 {
		return nil, nil
	}

	known, err := a.readBoundaryAreas()
	if err != nil {
		return nil, err
	}

	// Keep only areas present in both the data and the boundary dataset;
	// no unused-area geometry is ever exposed.
	filtered := stats[:0]
	for _, s := range stats {
		if known[s.AreaCode] {
			filtered = append(filtered, s)
		}
	}

	a.logger.InfoContext(ctx, "area aggregation complete",
		slog.Int("areas_in_data", len(stats)),
		slog.Int("areas_reported", len(filtered)))

	return filtered, nil
}

// readBoundaryAreas reads the area-code attribute column of the shapefile.
func (a *shapefileAggregator) readBoundaryAreas() (map[string]bool, error) {
	reader, err := shp.Open(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open boundary shapefile %s: %w", a.path, err)
	}
	defer reader.Close()

	fieldIdx := -1
	for i, field := range reader.Fields() {
		name := strings.TrimSpace(field.String())
		for _, accepted := range areaAttributeNames {
			if strings.EqualFold(name, accepted) {
				fieldIdx = i
				break
			}
		}
		if fieldIdx >= 0 {
			break
		}
	}
	if fieldIdx < 0 {
		return nil, fmt.Errorf("boundary shapefile %s has no area-code attribute (tried %s)",
			a.path, strings.Join(areaAttributeNames, ", "))
	}

	areas := make(map[string]bool)
	for reader.Next() {
		row, _ := reader.Shape()
		code := strings.ToUpper(strings.TrimSpace(reader.ReadAttribute(row, fieldIdx)))
		if code != "" {
			areas[code] = true
		}
	}
	return areas, nil
}

// SummarizeAreas deduplicates the merged table to one row per volunteer,
// flags stopped statuses, and aggregates per area code. Rows without a
// profile or without a usable area code are skipped.
func SummarizeAreas(merged []domain.MergedRecord) []domain.AreaStoppedStat {
	type areaCounts struct {
		total   int
		stopped int
	}

	seen := make(map[string]bool)
	counts := make(map[string]*areaCounts)

	for _, m := range merged {
		if m.Profile == nil || m.Profile.AreaCode == "" {
			continue
		}
		if seen[m.VolunteerID] {
			continue
		}
		seen[m.VolunteerID] = true

		c, ok := counts[m.Profile.AreaCode]
		if !ok {
			c = &areaCounts{}
			counts[m.Profile.AreaCode] = c
		}
		c.total++
		if m.Profile.Stopped() {
			c.stopped++
		}
	}

	stats := make([]domain.AreaStoppedStat, 0, len(counts))
	for area, c := range counts {
		stats = append(stats, domain.AreaStoppedStat{
			AreaCode:          area,
			TotalVolunteers:   c.total,
			StoppedVolunteers: c.stopped,
			StoppedPct:        float64(c.stopped) / float64(c.total) * 100,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].AreaCode < stats[j].AreaCode })
	return stats
}
