package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/JonMunkholm/stocktake/internal/inventory"
)

// Load reads the inventory file at path into a fresh table.
//
// A missing file is not an error: the report's FileMissing flag is set and an
// empty table is returned so the program can continue with nothing to manage.
// Individual malformed rows are collected in the report and skipped; only
// unreadable files and invalid headers fail the load outright.
func Load(path string) (*inventory.Table, *LoadReport, error) {
	table := inventory.NewTable()
	report := &LoadReport{}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.FileMissing = true
			slog.Info("inventory file not found, starting empty", "path", path)
			return table, report, nil
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(newBOMSkippingReader(f))
	r.FieldsPerRecord = -1 // row width is validated per field below

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("read %s: file is empty", path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	idx, err := ValidateHeader(header)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	line := 1 // header was line 1
	for {
		line++
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				report.Skipped = append(report.Skipped, RowError{
					Line:    line,
					Message: parseErr.Err.Error(),
				})
				continue
			}
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}

		item, rowErr := parseRow(line, record, idx)
		if rowErr != nil {
			report.Skipped = append(report.Skipped, *rowErr)
			continue
		}

		if err := table.Add(item); err != nil {
			report.Skipped = append(report.Skipped, RowError{
				Line:    line,
				Field:   colName,
				Value:   item.Name,
				Message: "duplicate item name",
			})
			continue
		}
		report.Loaded++
	}

	slog.Debug("inventory loaded",
		"path", path,
		"items", report.Loaded,
		"skipped", len(report.Skipped),
	)
	return table, report, nil
}

// parseRow converts one CSV record into an Item, or explains why it cannot.
func parseRow(line int, record []string, idx HeaderIndex) (*inventory.Item, *RowError) {
	cell := func(col string) (string, bool) {
		pos, ok := idx[col]
		if !ok || pos >= len(record) {
			return "", false
		}
		return record[pos], true
	}

	fail := func(col, value, msg string) *RowError {
		return &RowError{Line: line, Field: col, Value: value, Message: msg}
	}

	raw, ok := cell(colName)
	if !ok {
		return nil, fail(colName, "", "missing field")
	}
	name := inventory.NormalizeName(CleanCell(raw))
	if name == "" {
		return nil, fail(colName, raw, "empty item name")
	}

	item := &inventory.Item{Name: name}

	for _, spec := range fieldSpecs {
		if spec.Name == colName {
			continue
		}
		raw, ok := cell(spec.Name)
		if !ok {
			return nil, fail(spec.Name, "", "missing field")
		}

		switch spec.Kind {
		case FieldInt:
			n, err := ParseCount(raw)
			if err != nil {
				return nil, fail(spec.Name, raw, err.Error())
			}
			if spec.Positive && n <= 0 {
				return nil, fail(spec.Name, raw, "must be positive")
			}
			switch spec.Name {
			case colQuantity:
				item.Quantity = n
			case colUnitsPerBox:
				item.UnitsPerBox = n
			case colCriticalLevel:
				item.CriticalLevel = n
			}
		case FieldMoney:
			d, err := ParseMoney(raw)
			if err != nil {
				return nil, fail(spec.Name, raw, err.Error())
			}
			if d.IsNegative() {
				return nil, fail(spec.Name, raw, "must not be negative")
			}
			item.BoxPrice = d
		}
	}

	item.DerivePerUnitPrice()
	return item, nil
}

// Save writes the table back to path in table order, emitting exactly the
// five persisted columns. The derived per-unit price never hits disk; it is
// recomputed on the next load. The destination is overwritten in place.
func Save(path string, table *inventory.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	header := make([]string, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		header[i] = spec.Name
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	for _, it := range table.Items() {
		row := []string{
			it.Name,
			strconv.Itoa(it.Quantity),
			it.BoxPrice.String(),
			strconv.Itoa(it.UnitsPerBox),
			strconv.Itoa(it.CriticalLevel),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Debug("inventory saved", "path", path, "items", table.Len())
	return nil
}
