// Command demand cleans the daily demand/distribution time series and
// exports its descriptive summaries (daily, weekday, monthly, seasonal,
// yearly) as one workbook of aggregate sheets.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"compasscli/internal/config"
	"compasscli/internal/demand"
	"compasscli/internal/exporter"
	"compasscli/internal/files"
	"compasscli/internal/infrastructure"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	inFile := flag.String("in", "", "demand series CSV (overrides config)")
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

	inputPath := cfg.Paths.DemandPath()
	if *inFile != "" {
		inputPath = *inFile
	}
	outputPath := cfg.Paths.DemandOutputPath()
	if *outFile != "" {
		outputPath = *outFile
	}

	if err := run(ctx, cfg, logger, telemetry, inputPath, outputPath); err != nil {
		logger.ErrorContext(ctx, "pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, telemetry *infrastructure.Telemetry, inputPath, outputPath string) error {
	if err := files.RequireFile(inputPath); err != nil {
		return err
	}

	ctx, span := telemetry.Tracer.Start(ctx, "demand_pipeline")
	defer span.End()

	loader := demand.NewLoader(cfg.Demand, logger)
	series, err := loader.LoadFile(ctx, inputPath)
	if err != nil {
		return err
	}

	summarizer := demand.NewSummarizer(cfg.Demand)

	workbook := exporter.NewWorkbook(logger)
	workbook.Add(exporter.DailySummarySheet(summarizer.Daily(series)))
	workbook.Add(exporter.WeekdaySharesSheet(summarizer.Weekly(series)))
	workbook.Add(exporter.MonthlySummariesSheet(summarizer.Monthly(series)))
	workbook.Add(exporter.SeasonalSummariesSheet(summarizer.Seasonal(series)))
	workbook.Add(exporter.YearlySummariesSheet(summarizer.Yearly(series)))

	if err := workbook.Write(ctx, outputPath); err != nil {
		return err
	}

	logger.InfoContext(ctx, "aggregated summaries exported", slog.String("path", outputPath))
	return nil
}
