package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/loptr-yoo/paking-ai-1/internal/legend"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newLegendCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Print the semantic legend",
		Example: `  parking-architect legend
  parking-architect legend --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			catalog := legend.Catalog()

			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(catalog)
			case "text":
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "COLOR\tCATEGORY")
				for _, c := range catalog {
					fmt.Fprintf(tw, "%s\t%s\n", c.Color, c.Label())
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q (text, json, yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, yaml)")

	return cmd
}
