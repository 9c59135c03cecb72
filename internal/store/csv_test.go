package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const sampleCSV = `name,quantity,price,units_per_box,critical_level
patty,10,20.00,50,5
Bun,4,12.00,24,6
cheese slice,2,8.00,40,5
`

func TestLoad(t *testing.T) {
	path := writeFile(t, sampleCSV)

	table, report, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.FileMissing {
		t.Error("FileMissing = true, want false")
	}
	if report.Loaded != 3 {
		t.Errorf("Loaded = %d, want 3", report.Loaded)
	}
	if len(report.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", report.Skipped)
	}
	if table.Len() != 3 {
		t.Fatalf("table.Len() = %d, want 3", table.Len())
	}

	patty, ok := table.Get("patty")
	if !ok {
		t.Fatal("patty not found")
	}
	if patty.Quantity != 10 {
		t.Errorf("patty.Quantity = %d, want 10", patty.Quantity)
	}
	if patty.BoxPrice.StringFixed(2) != "20.00" {
		t.Errorf("patty.BoxPrice = %s, want 20.00", patty.BoxPrice.StringFixed(2))
	}
	if patty.UnitsPerBox != 50 {
		t.Errorf("patty.UnitsPerBox = %d, want 50", patty.UnitsPerBox)
	}
	if patty.CriticalLevel != 5 {
		t.Errorf("patty.CriticalLevel = %d, want 5", patty.CriticalLevel)
	}
	if patty.PerUnitPrice.StringFixed(3) != "0.400" {
		t.Errorf("patty.PerUnitPrice = %s, want 0.400", patty.PerUnitPrice.StringFixed(3))
	}

	// Upper-cased name in the file is normalized
	if _, ok := table.Get("bun"); !ok {
		t.Error("bun not found, want lower-cased key")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	table, report, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if !report.FileMissing {
		t.Error("FileMissing = false, want true")
	}
	if table.Len() != 0 {
		t.Errorf("table.Len() = %d, want 0", table.Len())
	}
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	path := writeFile(t, `name,quantity,price,units_per_box,critical_level
patty,10,20.00,50,5
bun,four,12.00,24,6
cheese,2,free,40,5
fries,3,9.00,0,2
patty,7,20.00,50,5
sauce,1,3.50,20
ok item,5,5.00,10,2
`)

	table, report, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Loaded != 2 {
		t.Errorf("Loaded = %d, want 2", report.Loaded)
	}
	if len(report.Skipped) != 5 {
		t.Fatalf("Skipped length = %d, want 5: %v", len(report.Skipped), report.Skipped)
	}

	wantReasons := []struct {
		line  int
		field string
	}{
		{3, "quantity"},       // non-integer quantity
		{4, "price"},          // non-numeric price
		{5, "units_per_box"},  // zero box size
		{6, "name"},           // duplicate of patty
		{7, "critical_level"}, // short row
	}
	for i, want := range wantReasons {
		got := report.Skipped[i]
		if got.Line != want.line || got.Field != want.field {
			t.Errorf("Skipped[%d] = line %d field %q, want line %d field %q",
				i, got.Line, got.Field, want.line, want.field)
		}
	}

	if _, ok := table.Get("bun"); ok {
		t.Error("bun loaded despite malformed quantity")
	}
	if patty, ok := table.Get("patty"); !ok || patty.Quantity != 10 {
		t.Error("first patty row should win over the duplicate")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeFile(t, "name,quantity,price\npatty,10,20.00\n")

	_, _, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "units_per_box") || !strings.Contains(err.Error(), "critical_level") {
		t.Errorf("error should name the missing columns: %v", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "")

	_, _, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for empty file")
	}
}

func TestLoad_BOMAndCurrency(t *testing.T) {
	path := writeFile(t, "\xEF\xBB\xBFname,quantity,price,units_per_box,critical_level\npatty,10,\"$1,234.50\",50,5\n")

	table, report, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Loaded != 1 {
		t.Fatalf("Loaded = %d, want 1 (skipped: %v)", report.Loaded, report.Skipped)
	}
	patty, _ := table.Get("patty")
	if patty.BoxPrice.StringFixed(2) != "1234.50" {
		t.Errorf("BoxPrice = %s, want 1234.50", patty.BoxPrice.StringFixed(2))
	}
}

func TestLoad_RejectsNegativePrice(t *testing.T) {
	path := writeFile(t, "name,quantity,price,units_per_box,critical_level\npatty,10,(5.00),50,5\n")

	_, report, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Loaded != 0 || len(report.Skipped) != 1 {
		t.Fatalf("Loaded = %d, Skipped = %v, want the row rejected", report.Loaded, report.Skipped)
	}
	if report.Skipped[0].Field != "price" {
		t.Errorf("Skipped field = %q, want price", report.Skipped[0].Field)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeFile(t, sampleCSV)

	table, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dest := filepath.Join(t.TempDir(), "out.csv")
	if err := Save(dest, table); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, report, err := Load(dest)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if report.Loaded != table.Len() {
		t.Fatalf("reloaded %d items, want %d", report.Loaded, table.Len())
	}

	orig := table.Items()
	got := reloaded.Items()
	for i := range orig {
		if got[i].Name != orig[i].Name {
			t.Errorf("row %d name = %q, want %q (order must survive round-trip)", i, got[i].Name, orig[i].Name)
		}
		if got[i].Quantity != orig[i].Quantity {
			t.Errorf("%s quantity = %d, want %d", orig[i].Name, got[i].Quantity, orig[i].Quantity)
		}
		if !got[i].BoxPrice.Equal(orig[i].BoxPrice) {
			t.Errorf("%s box price = %s, want %s", orig[i].Name, got[i].BoxPrice, orig[i].BoxPrice)
		}
		if got[i].UnitsPerBox != orig[i].UnitsPerBox {
			t.Errorf("%s units per box = %d, want %d", orig[i].Name, got[i].UnitsPerBox, orig[i].UnitsPerBox)
		}
		if got[i].CriticalLevel != orig[i].CriticalLevel {
			t.Errorf("%s critical level = %d, want %d", orig[i].Name, got[i].CriticalLevel, orig[i].CriticalLevel)
		}
		if !got[i].PerUnitPrice.Equal(orig[i].PerUnitPrice) {
			t.Errorf("%s per-unit price = %s, want %s (must recompute identically)", orig[i].Name, got[i].PerUnitPrice, orig[i].PerUnitPrice)
		}
	}
}

func TestSave_OmitsDerivedColumn(t *testing.T) {
	path := writeFile(t, sampleCSV)
	table, _, _ := Load(path)

	dest := filepath.Join(t.TempDir(), "out.csv")
	if err := Save(dest, table); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	header := strings.SplitN(string(data), "\n", 2)[0]
	if header != "name,quantity,price,units_per_box,critical_level" {
		t.Errorf("header = %q, want the five persisted columns only", header)
	}
	if strings.Contains(string(data), "per_unit") {
		t.Error("saved file must not contain the derived per-unit price")
	}
}
