package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Status values of a batch record
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// BatchConfig represents the configuration section of the batch report
type BatchConfig struct {
	Model          string `yaml:"model"`
	ThinkingBudget int32  `yaml:"thinkingbudget"`
	DatasetPath    string `yaml:"datasetpath"`
	SampleSize     int    `yaml:"samplesize"`
	Concurrency    int    `yaml:"concurrency"`
	OutputDir      string `yaml:"outputdir"`
	Timestamp      string `yaml:"timestamp"`
}

// RecordResult represents the outcome of one prompt record
type RecordResult struct {
	Identifier  string        `yaml:"identifier"`
	Instruction string        `yaml:"instruction,omitempty"`
	ImagePath   string        `yaml:"imagepath,omitempty"`
	Status      string        `yaml:"status"`
	Error       string        `yaml:"error,omitempty"`
	OutputPath  string        `yaml:"outputpath,omitempty"`
	Bytes       int           `yaml:"bytes"`
	Duration    time.Duration `yaml:"duration"`
}

// Summary counts the outcomes of a run
type Summary struct {
	Total     int           `yaml:"total"`
	Succeeded int           `yaml:"succeeded"`
	Failed    int           `yaml:"failed"`
	Elapsed   time.Duration `yaml:"elapsed"`
}

// BatchReport represents the complete batch run report
type BatchReport struct {
	Config  BatchConfig    `yaml:"config"`
	Summary Summary        `yaml:"summary"`
	Results []RecordResult `yaml:"results"`
}

// NewBatchReport builds a report and fills in its summary
func NewBatchReport(config BatchConfig, results []RecordResult, elapsed time.Duration) *BatchReport {
	report := &BatchReport{
		Config:  config,
		Results: results,
		Summary: Summary{Total: len(results), Elapsed: elapsed},
	}
	for _, r := range results {
		if r.Status == StatusOK {
			report.Summary.Succeeded++
		} else {
			report.Summary.Failed++
		}
	}
	return report
}

// SaveToYAML writes the report as batch-<timestamp>.yaml in dir and
// returns the absolute path of the file.
func SaveToYAML(dir string, report *BatchReport) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	if report.Config.Timestamp == "" {
		report.Config.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}

	filename := filepath.Join(dir, fmt.Sprintf("batch-%s.yaml", report.Config.Timestamp))

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	return absPath, nil
}
