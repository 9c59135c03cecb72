// Package store reads and writes the persisted inventory file. The file is
// plain UTF-8 CSV with a fixed header; the loader is its only reader and the
// writer its only writer.
//
// Loading is deliberately forgiving about individual rows: a malformed row is
// reported with its line number and skipped, never aborting the load. Header
// problems are fatal to the load because nothing after them can be trusted.
package store

import (
	"fmt"
	"strings"
)

// FieldKind is the expected data type of a CSV column.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldInt
	FieldMoney
)

// FieldSpec defines the validation rules for a single column of the
// inventory file.
type FieldSpec struct {
	Name     string    // column header, matched case-insensitively
	Kind     FieldKind // expected data type
	Positive bool      // FieldInt only: value must be > 0
}

// Column names of the persisted file. Order here is the order rows are
// written back out.
const (
	colName          = "name"
	colQuantity      = "quantity"
	colPrice         = "price"
	colUnitsPerBox   = "units_per_box"
	colCriticalLevel = "critical_level"
)

// fieldSpecs describes the full persisted schema. Every column is required.
var fieldSpecs = []FieldSpec{
	{Name: colName, Kind: FieldText},
	{Name: colQuantity, Kind: FieldInt},
	{Name: colPrice, Kind: FieldMoney},
	{Name: colUnitsPerBox, Kind: FieldInt, Positive: true},
	{Name: colCriticalLevel, Kind: FieldInt},
}

// HeaderIndex maps lower-cased column names to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a HeaderIndex from a CSV header row. Keys are
// lower-cased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[strings.ToLower(CleanCell(h))] = i
	}
	return idx
}

// ValidateHeader checks that every required column is present and returns the
// header index, or an error listing the missing columns.
func ValidateHeader(header []string) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	var missing []string
	for _, spec := range fieldSpecs {
		if _, ok := idx[spec.Name]; !ok {
			missing = append(missing, spec.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// RowError describes why a single row was rejected during a load.
type RowError struct {
	Line    int    // 1-based line number in the file, header included
	Field   string // offending column, empty for row-level problems
	Value   string // the rejected value
	Message string // human-readable reason
}

func (e RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: %s: %s (%q)", e.Line, e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// LoadReport summarizes a load for operator-visible reporting.
type LoadReport struct {
	FileMissing bool       // the persisted file did not exist
	Loaded      int        // rows that became table items
	Skipped     []RowError // rows rejected, in file order
}
