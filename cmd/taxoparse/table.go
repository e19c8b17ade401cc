package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/urbanniche/taxoparse/internal/app"
)

// renderOrderBreakdown renders the corpus run summary: one row per
// taxonomic order with its species count and a few sample species.
func renderOrderBreakdown(breakdown []app.OrderCount) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Order", "Species", "Sample"})

	for _, oc := range breakdown {
		name := oc.Order
		if name == "" {
			name = "(unknown)"
		}
		samples := make([]string, 0, len(oc.Samples))
		for _, s := range oc.Samples {
			samples = append(samples, speciesLine(s))
		}
		tw.AppendRow(table.Row{name, oc.Count, strings.Join(samples, "\n")})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func speciesLine(s app.Species) string {
	status := s.Fields.Status
	if status == "" {
		status = "N/A"
	}
	return fmt.Sprintf("%s (%s) [%s]", s.Fields.Common, s.Fields.Scientific, status)
}
