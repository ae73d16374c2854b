package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/loptr-yoo/paking-ai-1/internal/export"
	"github.com/loptr-yoo/paking-ai-1/internal/images"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var imageSource string
	var prompt string
	var output string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one parking layout and save it as SVG",
		Long: `Sends a single generation request and writes the resulting SVG to disk.

The reference image may be a local file or an http(s) URL. Without an image
the layout is generated from the description alone.`,
		Example: `  # Generate from a description
  parking-architect generate --prompt "Two entrances, 4 elevators, charging row"

  # Recreate a scanned floor plan
  parking-architect generate --image plan.jpg --output out/lot.svg

  # Show the request without calling the model
  parking-architect generate --image plan.jpg --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := architect.Request{Instruction: prompt}

			if imageSource != "" {
				var ref *images.Reference
				var err error
				if strings.HasPrefix(imageSource, "http://") || strings.HasPrefix(imageSource, "https://") {
					ref, err = images.NewFetcher().Download(cmd.Context(), imageSource)
				} else {
					ref, err = images.LoadFile(imageSource)
				}
				if err != nil {
					return fmt.Errorf("failed to load reference image: %w", err)
				}
				req.ReferenceImage = ref.DataURI()
			}

			out := cmd.OutOrStdout()
			if dryRun {
				parts, err := architect.BuildParts(req)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "model: %s\nthinking budget: %d\nparts: %d\n", architect.DefaultModel, architect.ThinkingBudget, len(parts))
				fmt.Fprintf(out, "\n--- system instruction ---\n%s\n", architect.SystemInstruction())
				fmt.Fprintf(out, "\n--- task ---\n%s\n", architect.TaskInstruction(req.HasImage(), req.Instruction))
				return nil
			}

			result, err := architect.NewClient().Generate(cmd.Context(), req)
			if err != nil {
				if errors.Is(err, architect.ErrAPIKeyMissing) {
					return err
				}
				return fmt.Errorf("%s: %w", architect.GenericFailureMessage, err)
			}

			path, err := export.WriteFile(output, result.SVG)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Layout saved to %s (%d bytes)\n", path, len(result.SVG))
			return nil
		},
	}

	cmd.Flags().StringVar(&imageSource, "image", "", "Reference floor plan (file path or URL)")
	cmd.Flags().StringVar(&prompt, "prompt", "", "Description or modification instructions")
	cmd.Flags().StringVarP(&output, "output", "o", export.Filename, "Output file or directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the request instead of calling the model")

	return cmd
}
