package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urbanniche/taxoparse/internal/app"
)

// corpusSampleCap bounds how many species per order the summary table
// shows.
const corpusSampleCap = 3

func newCorpusCommand() *cobra.Command {
	var cfg app.Config
	cmd := &cobra.Command{
		Use:   "corpus <html-file>",
		Short: "Parse a multi-family corpus page into CSV",
		Long: "Parse a corpus page containing several concatenated family sections " +
			"into the 21-column dataset CSV. Each card's taxonomic order is " +
			"resolved from its enclosing family section.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputPath = args[0]
			res, err := app.Run(cmd.Context(), app.ModeCorpus, cfg)
			if err != nil {
				return err
			}
			if breakdown := res.OrderBreakdown(corpusSampleCap); len(breakdown) > 0 {
				fmt.Println(renderOrderBreakdown(breakdown))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", "", "output CSV path (default birds_corpus.csv)")
	cmd.Flags().StringVar(&cfg.SchemaPath, "schema", "", "YAML file overriding the output column layout")
	return cmd
}
