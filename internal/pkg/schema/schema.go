// Package schema loads the customer form field definitions from an
// external CSV source. The form is not hardcoded: deployments swap the
// field list by pointing CLIENT_SCHEMA_PATH at a different file.
package schema

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Column headers the schema file must carry. Extra columns (data
// types, validation rules) are ignored.
const (
	headerName        = "VARIABLE NAME"
	headerDescription = "DESCRIPTION"
)

// Field is one form field definition.
type Field struct {
	Name        string
	Description string
}

// Loader reads field definitions from a CSV file.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the schema file. Field order follows file order.
func (l *Loader) Load() ([]Field, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	// Rows may carry trailing columns we do not read.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("schema file %s is empty", l.path)
	}

	nameIdx, descIdx := -1, -1
	for i, col := range records[0] {
		switch col {
		case headerName:
			nameIdx = i
		case headerDescription:
			descIdx = i
		}
	}
	if nameIdx < 0 || descIdx < 0 {
		return nil, fmt.Errorf("schema file %s is missing %q or %q column", l.path, headerName, headerDescription)
	}

	var fields []Field
	for _, row := range records[1:] {
		if nameIdx >= len(row) || row[nameIdx] == "" {
			continue
		}
		desc := ""
		if descIdx < len(row) {
			desc = row[descIdx]
		}
		fields = append(fields, Field{
			Name:        row[nameIdx],
			Description: desc,
		})
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("schema file %s defines no fields", l.path)
	}

	return fields, nil
}
