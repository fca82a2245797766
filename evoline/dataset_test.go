package evoline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadData_ParsesRecords(t *testing.T) {
	path := writeData(t, "0,0\n1,1.5\n2.5,3\n")

	data, err := LoadData(path)
	require.NoError(t, err)
	assert.Equal(t, []DataPoint{
		{X: 0, Y: 0},
		{X: 1, Y: 1.5},
		{X: 2.5, Y: 3},
	}, data)
}

func TestLoadData_RejectsEmptyFile(t *testing.T) {
	path := writeData(t, "")

	_, err := LoadData(path)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestLoadData_RejectsNonNumericField(t *testing.T) {
	path := writeData(t, "0,0\nfoo,1\n")

	_, err := LoadData(path)
	assert.ErrorContains(t, err, "record 2")
}

func TestLoadData_RejectsWrongColumnCount(t *testing.T) {
	path := writeData(t, "0,0,0\n")

	_, err := LoadData(path)
	assert.Error(t, err)
}

func TestLoadData_MissingFile(t *testing.T) {
	_, err := LoadData(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
