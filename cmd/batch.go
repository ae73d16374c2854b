package cmd

import (
	"fmt"
	"os"

	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/loptr-yoo/paking-ai-1/internal/batch"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var cfg batch.Config

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate layouts for every record of a prompt dataset",
		Long: `Reads prompt records ({id, instruction, image_path}) from a JSONL or
Parquet file, generates one layout per record and writes <id>.svg files
plus a batch-<timestamp>.yaml report into the output directory.`,
		Example: `  # Generate the first 5 records one at a time
  parking-architect batch --dataset prompts.jsonl --sample 5

  # Run a Parquet dataset with 3 concurrent requests
  parking-architect batch --dataset prompts.parquet --concurrency 3 --output runs/today`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check if dataset file exists
			if _, err := os.Stat(cfg.DatasetPath); os.IsNotExist(err) {
				return fmt.Errorf("dataset file not found: %s", cfg.DatasetPath)
			}

			report, path, err := batch.Run(cmd.Context(), architect.NewClient(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nRecords:   %d\n", report.Summary.Total)
			fmt.Fprintf(out, "Succeeded: %d\n", report.Summary.Succeeded)
			fmt.Fprintf(out, "Failed:    %d\n", report.Summary.Failed)
			fmt.Fprintf(out, "\nReport saved to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.DatasetPath, "dataset", "prompts.jsonl", "Path to a .jsonl or .parquet prompt dataset")
	cmd.Flags().StringVarP(&cfg.OutputDir, "output", "o", "layouts", "Directory for SVG files and the report")
	cmd.Flags().IntVar(&cfg.Sample, "sample", 0, "Number of records to generate (0 for all)")
	cmd.Flags().IntVar(&cfg.Concurrency, "concurrency", 1, "Number of concurrent generation requests")

	return cmd
}
