package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadTable parses a CSV stream into a Table, dropping rows whose cells are
// all blank. Files with a header but no data rows yield an empty Rows slice.
func ReadTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // wizard exports can be ragged

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading import CSV: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("import CSV has no header row")
	}

	t := Table{Headers: records[0]}
	for _, row := range records[1:] {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if !blank {
			t.Rows = append(t.Rows, row)
		}
	}
	return t, nil
}
