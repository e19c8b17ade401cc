package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urbanniche/taxoparse/internal/app"
	"github.com/urbanniche/taxoparse/internal/extract"
)

func TestSpeciesLine(t *testing.T) {
	s := app.Species{Fields: extract.Fields{
		Scientific: "Gymnogyps californianus",
		Common:     "California Condor",
		Status:     "CR",
	}}
	assert.Equal(t, "California Condor (Gymnogyps californianus) [CR]", speciesLine(s))

	s.Fields.Status = ""
	assert.Equal(t, "California Condor (Gymnogyps californianus) [N/A]", speciesLine(s))
}

func TestRenderOrderBreakdown(t *testing.T) {
	out := renderOrderBreakdown([]app.OrderCount{
		{
			Order: "Strigiformes",
			Count: 2,
			Samples: []app.Species{
				{Fields: extract.Fields{Scientific: "Strix varia", Common: "Barred Owl", Status: "LC"}},
			},
		},
		{Order: "", Count: 1},
	})

	assert.Contains(t, out, "Strigiformes")
	assert.Contains(t, out, "Barred Owl (Strix varia) [LC]")
	assert.Contains(t, out, "(unknown)")
}
