package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/loptr-yoo/paking-ai-1/internal/gemini"
	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List Gemini models available to the API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := gemini.ListModels(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MODEL\tDISPLAY NAME\tINPUT\tOUTPUT\tMETHODS")
			for _, m := range models {
				if !all && !m.SupportsGeneration() {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", m.ID(), m.DisplayName, m.InputTokenLimit, m.OutputTokenLimit, strings.Join(m.GenerationMethods, ","))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include models that cannot generate content")

	return cmd
}
