package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanniche/taxoparse/internal/extract"
)

func TestDefault_Has21Columns(t *testing.T) {
	s := Default()
	require.Len(t, s.Columns, 21)
	assert.Equal(t, "Species", s.Columns[0])
	assert.Equal(t, "CommonName", s.Columns[1])
	assert.Equal(t, "Order", s.Columns[2])
	assert.Equal(t, "IUCN_Status", s.Columns[3])
	assert.Equal(t, "Exurban_Primary_Diet", s.Columns[20])
}

func TestRow_PlacesFieldsAndLeavesRestBlank(t *testing.T) {
	row := Default().Row(extract.Fields{
		Scientific: "Gymnogyps californianus",
		Common:     "California Condor",
		Order:      "Cathartiformes",
		Status:     "CR",
	})

	require.Len(t, row, 21)
	assert.Equal(t, "Gymnogyps californianus", row[0])
	assert.Equal(t, "California Condor", row[1])
	assert.Equal(t, "Cathartiformes", row[2])
	assert.Equal(t, "CR", row[3])
	for i := 4; i < len(row); i++ {
		assert.Equal(t, "", row[i], "column %d must stay blank", i)
	}
}

func TestRow_BlankFieldsStayBlank(t *testing.T) {
	row := Default().Row(extract.Fields{Common: "Turkey Vulture"})
	require.Len(t, row, 21)
	assert.Equal(t, "", row[0])
	assert.Equal(t, "Turkey Vulture", row[1])
	assert.Equal(t, "", row[3])
}

func TestLoadFile_OverridesColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`columns:
  - Species
  - CommonName
  - Order
  - IUCN_Status
  - Notes
`), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, s.Columns, 5)

	row := s.Row(extract.Fields{Scientific: "Bubo virginianus"})
	require.Len(t, row, 5)
	assert.Equal(t, "Bubo virginianus", row[0])
	assert.Equal(t, "", row[4])
}

func TestLoadFile_RejectsTooFewColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [Species, CommonName]\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 4 columns")
}

func TestLoadFile_MissingFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
