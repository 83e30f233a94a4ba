// Command engagement runs the volunteer engagement and retention pipeline:
// it cleans the shift log, normalizes and merges volunteer profiles,
// computes the engagement metrics, optionally aggregates stopped-volunteer
// rates per postal area, and exports everything as one workbook of
// aggregate sheets. No raw per-record data is ever written.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"compasscli/internal/analytics"
	"compasscli/internal/config"
	"compasscli/internal/dataprocessing"
	"compasscli/internal/exporter"
	"compasscli/internal/files"
	"compasscli/internal/geo"
	"compasscli/internal/infrastructure"
	"compasscli/pkg/contracts/domain"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	hoursFile := flag.String("hours", "", "shift log CSV (overrides config)")
	volunteerFile := flag.String("volunteers", "", "volunteer export CSV (overrides config)")
	boundaryFile := flag.String("boundary", "", "area boundary shapefile (overrides config)")
	outFile := flag.String("out", "", "output workbook path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	telemetry, err := infrastructure.InitTelemetry(cfg.Telemetry, logger)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.WithTraceID(context.Background(), infrastructure.NewTraceID())
	defer telemetry.Shutdown(ctx)

	hoursPath := cfg.Paths.HoursPath()
	if *hoursFile != "" {
		hoursPath = *hoursFile
	}
	volunteerPath := cfg.Paths.VolunteerPath()
	if *volunteerFile != "" {
		volunteerPath = *volunteerFile
	}
	boundaryPath := cfg.Paths.BoundaryPath()
	if *boundaryFile != "" {
		boundaryPath = *boundaryFile
	}
	outputPath := cfg.Paths.EngagementOutputPath()
	if *outFile != "" {
		outputPath = *outFile
	}

	if err := run(ctx, cfg, logger, telemetry, hoursPath, volunteerPath, boundaryPath, outputPath); err != nil {
		logger.ErrorContext(ctx, "pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, telemetry *infrastructure.Telemetry,
	hoursPath, volunteerPath, boundaryPath, outputPath string) error {

	// Fail fast before any computation if a required input is absent.
	if err := files.RequireFile(hoursPath); err != nil {
		return err
	}
	if err := files.RequireFile(volunteerPath); err != nil {
		return err
	}

	ctx, span := telemetry.Tracer.Start(ctx, "engagement_pipeline")
	defer span.End()

	shifts, err := cleanStage(ctx, cfg, logger, telemetry, hoursPath)
	if err != nil {
		return err
	}

	merged, err := mergeStage(ctx, logger, telemetry, shifts, volunteerPath)
	if err != nil {
		return err
	}

	workbook := exporter.NewWorkbook(logger)
	metricsStage(ctx, cfg, telemetry, shifts, workbook)

	if err := geoStage(ctx, logger, telemetry, boundaryPath, merged, workbook); err != nil {
		return err
	}

	_, exportSpan := telemetry.Tracer.Start(ctx, "export")
	err = workbook.Write(ctx, outputPath)
	exportSpan.End()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "aggregated summaries exported", slog.String("path", outputPath))
	return nil
}

func cleanStage(ctx context.Context, cfg *config.Config, logger *slog.Logger, telemetry *infrastructure.Telemetry, hoursPath string) ([]domain.ShiftRecord, error) {
	ctx, span := telemetry.Tracer.Start(ctx, "clean_shift_log")
	defer span.End()

	cleaner := dataprocessing.NewRecordCleaner(cfg.Analysis, logger)
	return cleaner.CleanFile(ctx, hoursPath)
}

func mergeStage(ctx context.Context, logger *slog.Logger, telemetry *infrastructure.Telemetry, shifts []domain.ShiftRecord, volunteerPath string) ([]domain.MergedRecord, error) {
	ctx, span := telemetry.Tracer.Start(ctx, "merge_profiles")
	defer span.End()

	normalizer := dataprocessing.NewProfileNormalizer(logger)
	profiles, err := normalizer.NormalizeFile(ctx, volunteerPath)
	if err != nil {
		return nil, err
	}
	return dataprocessing.Merge(shifts, profiles), nil
}

func metricsStage(ctx context.Context, cfg *config.Config, telemetry *infrastructure.Telemetry, shifts []domain.ShiftRecord, workbook *exporter.Workbook) {
	_, span := telemetry.Tracer.Start(ctx, "compute_metrics")
	defer span.End()

	categoryTotals, categoryTrend := analytics.CategoryHours(shifts)

	workbook.Add(exporter.YearlyEngagementSheet(analytics.YearlyEngagement(shifts)))
	workbook.Add(exporter.ConcentrationSheet(analytics.TopConcentration(shifts, cfg.Analysis.TopShare)))
	workbook.Add(exporter.RetentionSheet(analytics.RollingRetention(shifts, cfg.Analysis.TrainingCategory, cfg.Analysis.InactivityDays)))
	workbook.Add(exporter.CategorySummarySheet(categoryTotals))
	workbook.Add(exporter.CategoryTrendSheet(categoryTrend))
	workbook.Add(exporter.GrowthSheet(analytics.GrowthDecomposition(shifts, cfg.Analysis.TrainingCategory)))
	workbook.Add(exporter.SeasonAveragesSheet(analytics.SeasonalAverages(shifts)))
	workbook.Add(exporter.MonthAveragesSheet(analytics.MonthlyAverages(shifts)))
}

func geoStage(ctx context.Context, logger *slog.Logger, telemetry *infrastructure.Telemetry, boundaryPath string, merged []domain.MergedRecord, workbook *exporter.Workbook) error {
	ctx, span := telemetry.Tracer.Start(ctx, "area_aggregation")
	defer span.End()

	aggregator := geo.Capability(boundaryPath, logger)
	if !aggregator.Enabled() {
		return nil
	}

	stats, err := aggregator.Aggregate(ctx, merged)
	if err != nil {
		return err
	}
	if len(stats) > 0 {
		workbook.Add(exporter.AreaStoppedSheet(stats))
	}
	return nil
}
