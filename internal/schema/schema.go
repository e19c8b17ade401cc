package schema

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/urbanniche/taxoparse/internal/extract"
)

// DefaultColumns is the Birds of Prey Urban Niche Space dataset header.
// The first four columns hold the extracted fields; the rest are filled
// in manually after a run and stay blank here.
var DefaultColumns = []string{
	"Species",
	"CommonName",
	"Order",
	"IUCN_Status",
	"HabitatGeneralistSpecialist",
	"Nest_Location_>1",
	"Nest_Structure_>1",
	"General_Nesting_Location",
	"General_Nesting_Structure",
	"Nesting_On_Artificial",
	"Nest_Elevation_Min",
	"Nest_Elevation_Max",
	"Urban_Nester_YN",
	"Urban_Forager_YN",
	"AcceptsProvisions_YN",
	"Urban_NestMortality",
	"Exurban_NestMortality",
	"Urban_RangeSize",
	"Exurban_RangeSize",
	"Urban_Primary_Diet",
	"Exurban_Primary_Diet",
}

// Schema fixes the output column layout. Column count and order are
// identical for the header and every row of a run.
type Schema struct {
	Columns []string `yaml:"columns"`
}

// Default returns the built-in 21-column dataset schema.
func Default() Schema {
	return Schema{Columns: append([]string(nil), DefaultColumns...)}
}

// LoadFile reads a column-layout override from a YAML file. The first
// four columns keep their meaning (scientific name, common name, order,
// status) whatever they are renamed to, so at least four are required.
func LoadFile(path string) (Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("read schema %s: %w", path, err)
	}
	var s Schema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Schema{}, fmt.Errorf("parse schema %s: %w", path, err)
	}
	if len(s.Columns) < 4 {
		return Schema{}, fmt.Errorf("schema %s: need at least 4 columns, got %d", path, len(s.Columns))
	}
	return s, nil
}

// Row builds one fixed-width record: the four extracted values in the
// first four columns, every remaining column blank.
func (s Schema) Row(f extract.Fields) []string {
	row := make([]string, len(s.Columns))
	row[0] = f.Scientific
	row[1] = f.Common
	row[2] = f.Order
	row[3] = f.Status
	return row
}
