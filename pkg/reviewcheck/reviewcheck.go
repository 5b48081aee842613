// Package reviewcheck audits review documents: it pairs checklist and
// record spreadsheets by project, validates each pair for consistency,
// and renders an aligned text report.
package reviewcheck

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/example/reviewcheck/pkg/reviewcheck/config"
	"github.com/example/reviewcheck/pkg/reviewcheck/extract"
	"github.com/example/reviewcheck/pkg/reviewcheck/models"
	"github.com/example/reviewcheck/pkg/reviewcheck/report"
	"github.com/example/reviewcheck/pkg/reviewcheck/search"
	"github.com/example/reviewcheck/pkg/reviewcheck/validator"
)

// Options configures a run.
type Options struct {
	// Output overrides the report path derived from the config file.
	Output string
	// Logger receives progress and skip messages. If nil, log.Default()
	// is used.
	Logger *log.Logger
}

// SkippedFile records a file the runner could not process.
type SkippedFile struct {
	Path string
	Err  error
}

// Result carries everything a run produced.
type Result struct {
	// RunID identifies the run in log output.
	RunID string
	// Verdicts holds one validation verdict per project key.
	Verdicts []models.Verdict
	// Summary aggregates the verdicts into counts.
	Summary models.Summary
	// Report is the rendered report text.
	Report string
	// OutputPath is where the report was written.
	OutputPath string
	// Skipped lists files that failed extraction.
	Skipped []SkippedFile
}

// Run performs a full audit: search the target directory, extract and
// classify every matching file, validate checklist/record pairs, and
// write the report. Per-file failures are logged and skipped; the run
// itself fails only when the search or the report output fails.
func Run(cfg *config.Config, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	runID := uuid.NewString()

	logger.Printf("reviewcheck: run %s: searching %s for %q",
		runID, cfg.Settings.TargetDir, cfg.Settings.SearchKeyword)
	files, err := search.FindFiles(cfg.Settings.TargetDir, cfg.Settings.SearchKeyword)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Printf("reviewcheck: run %s: found %d files", runID, len(files))

	engine := validator.New()
	sections := make([]*report.Section, 0, len(cfg.FileTypes))
	bySection := make(map[*models.FileTypeRule]*report.Section, len(cfg.FileTypes))
	for i := range cfg.FileTypes {
		rule := &cfg.FileTypes[i]
		sec := &report.Section{Rule: rule}
		sections = append(sections, sec)
		bySection[rule] = sec
	}

	var skipped []SkippedFile
	for _, path := range files {
		rule, role := cfg.ClassifyFile(filepath.Base(path))
		if rule == nil {
			logger.Printf("reviewcheck: run %s: no file type rule matches %s", runID, path)
			continue
		}

		rec, err := processFile(path, rule)
		if err != nil {
			logger.Printf("reviewcheck: run %s: skipping %v", runID, err)
			skipped = append(skipped, SkippedFile{Path: path, Err: err})
			continue
		}

		engine.AddFile(rec, role)
		sec := bySection[rule]
		sec.Rows = append(sec.Rows, report.FileRow{
			Filename: rec.Filename,
			Values:   rec.CellValues,
			Images:   rec.ImageResults,
		})
		logger.Printf("reviewcheck: run %s: processed %s as %s", runID, path, role)
	}

	verdicts := engine.ValidateAll()
	sum := validator.Summarize(verdicts)
	text := report.Build(sections, verdicts, sum)

	outPath := opts.Output
	if outPath == "" {
		outPath = cfg.OutputPath()
	}
	if err := report.WriteFile(outPath, text); err != nil {
		return nil, err
	}
	logger.Printf("reviewcheck: run %s: report saved to %s", runID, outPath)

	return &Result{
		RunID:      runID,
		Verdicts:   verdicts,
		Summary:    sum,
		Report:     text,
		OutputPath: outPath,
		Skipped:    skipped,
	}, nil
}

// processFile extracts one classified file into a record the pairing
// engine can ingest.
func processFile(path string, rule *models.FileTypeRule) (*models.ExtractedRecord, error) {
	values, err := extract.Cells(path, rule.TargetSheet, rule.TargetCells)
	if err != nil {
		return nil, NewRunError(path, "cells", err)
	}
	images := extract.Images(path, rule.TargetSheet, rule.ImageCheckCells)

	return &models.ExtractedRecord{
		Path:         path,
		Filename:     filepath.Base(path),
		CellValues:   values,
		CellLabels:   rule.CellLabels,
		ImageResults: images,
		Role:         rule.Role,
	}, nil
}
