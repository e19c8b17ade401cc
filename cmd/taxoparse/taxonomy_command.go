package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urbanniche/taxoparse/internal/app"
)

func newTaxonomyCommand() *cobra.Command {
	var cfg app.Config
	cmd := &cobra.Command{
		Use:   "taxonomy <html-file>",
		Short: "Parse a single-family taxonomy page into CSV",
		Long: "Parse one family's taxonomy cards into the 21-column dataset CSV. " +
			"The taxonomic order is derived from the input filename stem " +
			"(cathar, accip, strig, falcon) unless --order is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.InputPath = args[0]
			res, err := app.Run(cmd.Context(), app.ModeTaxonomy, cfg)
			if err != nil {
				return err
			}
			printExtracted(res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", "", "output CSV path (default <input stem>_birds.csv)")
	cmd.Flags().StringVar(&cfg.SchemaPath, "schema", "", "YAML file overriding the output column layout")
	cmd.Flags().StringVar(&cfg.Order, "order", "", "taxonomic order override")
	return cmd
}

func printExtracted(res *app.Result) {
	if len(res.Species) == 0 {
		return
	}
	fmt.Println("Extracted birds:")
	for _, s := range res.Species {
		fmt.Printf("  - %s\n", speciesLine(s))
	}
}
