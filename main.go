package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"reels-chart/chart"
	"reels-chart/config"
	"reels-chart/services"
	"reels-chart/storage"
	"reels-chart/utils"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitNoRecords   = 2
	exitConfigError = 64
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := utils.NewLogger()
	cfg := config.Load()

	if err := cfg.ParseFlags("reels-chart", args, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfigError
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("%v", err)
		return exitConfigError
	}
	logger.SetDebug(cfg.Debug)

	logger.Info("=== Reels views chart ===")
	logger.Info("Config | input: %s | output: %s | year: %d | type: %q",
		cfg.InputPath, cfg.OutputPath, cfg.Year, cfg.RecordType)

	err := pipeline(cfg, logger)
	switch {
	case err == nil:
		fmt.Printf("OK: %s\n", cfg.OutputPath)
		return exitOK
	case errors.Is(err, services.ErrEmptyDataset):
		logger.Error("No %q records found in %s. Check the input file and the -type flag.",
			cfg.RecordType, cfg.InputPath)
		return exitNoRecords
	default:
		logger.Error("%v", err)
		return exitFailure
	}
}

// stages holds the pipeline's I/O endpoints. matrix is nil when no matrix
// export is configured.
type stages struct {
	rows   storage.RowReader
	images storage.ImageWriter
	matrix storage.MatrixWriter
}

func newStages(cfg *config.Config) stages {
	st := stages{
		rows:   storage.NewCSVReader(cfg.InputPath, cfg.DelimiterRune(), storage.DefaultColumns),
		images: storage.NewImageFile(),
	}
	if cfg.MatrixCSVPath != "" {
		st.matrix = storage.NewMatrixCSVWriter(cfg.MatrixCSVPath)
	}
	return st
}

func pipeline(cfg *config.Config, logger *utils.Logger) error {
	return process(cfg, logger, newStages(cfg))
}

func process(cfg *config.Config, logger *utils.Logger, st stages) error {
	rows, err := st.rows.ReadRows()
	if err != nil {
		return err
	}

	loader := services.NewLoader(logger, cfg.Year, cfg.RecordType)
	records, err := loader.Load(rows)
	if err != nil {
		return err
	}

	agg := services.NewAggregator(logger).Aggregate(records)

	if cfg.PrintReport {
		services.NewReporter(os.Stdout).Print(agg)
	}

	renderer := chart.New(chart.DefaultOptions(), st.images, logger)
	if err := renderer.Render(agg, cfg.OutputPath); err != nil {
		return err
	}

	if st.matrix != nil {
		if err := st.matrix.WriteMatrix(agg); err != nil {
			return err
		}
		logger.Info("[storage] Matrix saved to %s", cfg.MatrixCSVPath)
	}
	return nil
}
