package evoline

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// DataPoint is a single (x, y) observation. Points are loaded once before
// evolution starts and never mutated.
type DataPoint struct {
	X float64
	Y float64
}

// LoadData reads a two-column CSV file of x, y values.
//
// Every record must have exactly two numeric fields. An empty file is
// rejected with ErrEmptyDataset rather than returned as an empty slice,
// since an empty dataset would make every formula score zero and fake a
// first-generation convergence.
func LoadData(path string) ([]DataPoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file '%s': %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse data file '%s': %w", path, err)
	}

	data := make([]DataPoint, 0, len(records))
	for i, record := range records {
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("record %d of '%s': bad x value %q: %w", i+1, path, record[0], err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("record %d of '%s': bad y value %q: %w", i+1, path, record[1], err)
		}
		data = append(data, DataPoint{X: x, Y: y})
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("data file '%s': %w", path, ErrEmptyDataset)
	}
	return data, nil
}
