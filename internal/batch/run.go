package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/loptr-yoo/paking-ai-1/internal/dataset"
	"github.com/loptr-yoo/paking-ai-1/internal/export"
	"github.com/loptr-yoo/paking-ai-1/internal/images"
	"github.com/loptr-yoo/paking-ai-1/internal/results"
)

// Generator produces a layout for a request
type Generator interface {
	Generate(ctx context.Context, req architect.Request) (*architect.Result, error)
	Model() string
}

// Config controls a batch run
type Config struct {
	DatasetPath string
	OutputDir   string
	Sample      int
	Concurrency int
}

// Run generates one layout per dataset record and writes the SVG files and
// the YAML report into the output directory. Record failures are reported,
// not returned.
func Run(ctx context.Context, gen Generator, cfg Config) (*results.BatchReport, string, error) {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	slog.Info("Starting batch run", "dataset", cfg.DatasetPath, "model", gen.Model(), "output", cfg.OutputDir)

	records, err := dataset.NewLoader(cfg.DatasetPath).LoadSample(cfg.Sample)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load dataset: %w", err)
	}

	slog.Info("Dataset loaded", "records", len(records), "concurrency", cfg.Concurrency)

	start := time.Now()
	out := make([]results.RecordResult, len(records))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, cfg.Concurrency)

	for i, record := range records {
		wg.Add(1)
		go func(idx int, record dataset.PromptRecord) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			slog.Info("Processing record", "id", record.ID, "progress", fmt.Sprintf("%d/%d", idx+1, len(records)))
			out[idx] = processRecord(ctx, gen, cfg, record)
		}(i, record)
	}
	wg.Wait()

	report := results.NewBatchReport(results.BatchConfig{
		Model:          gen.Model(),
		ThinkingBudget: architect.ThinkingBudget,
		DatasetPath:    cfg.DatasetPath,
		SampleSize:     cfg.Sample,
		Concurrency:    cfg.Concurrency,
		OutputDir:      cfg.OutputDir,
	}, out, time.Since(start))

	path, err := results.SaveToYAML(cfg.OutputDir, report)
	if err != nil {
		return report, "", err
	}

	slog.Info("Batch run finished", "succeeded", report.Summary.Succeeded, "failed", report.Summary.Failed, "report", path)
	return report, path, nil
}

func processRecord(ctx context.Context, gen Generator, cfg Config, record dataset.PromptRecord) (result results.RecordResult) {
	result = results.RecordResult{
		Identifier:  record.ID,
		Instruction: record.Instruction,
		ImagePath:   record.ImagePath,
		Status:      results.StatusFailed,
	}

	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result
	}

	req := architect.Request{Instruction: record.Instruction}
	if record.HasImage() {
		ref, err := images.LoadFile(record.ResolveImagePath(cfg.DatasetPath))
		if err != nil {
			result.Error = err.Error()
			slog.Error("Failed to load reference image", "id", record.ID, "error", err)
			return result
		}
		req.ReferenceImage = ref.DataURI()
	}

	res, err := gen.Generate(ctx, req)
	if err != nil {
		result.Error = err.Error()
		slog.Error("Generation failed", "id", record.ID, "error", err)
		return result
	}

	path, err := export.WriteFile(filepath.Join(cfg.OutputDir, record.OutputName()), res.SVG)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Status = results.StatusOK
	result.OutputPath = path
	result.Bytes = len(res.SVG)
	return result
}
