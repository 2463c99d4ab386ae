package workbook

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeFixture builds a two-sheet workbook on disk and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Video"); err != nil {
		t.Fatalf("failed to rename sheet: %v", err)
	}
	rows := []struct {
		axis   string
		values []interface{}
	}{
		{"A1", []interface{}{"id", "name", "age"}},
		{"A2", []interface{}{1, "Tom", 12}},
		{"A3", []interface{}{2, "Ann", 9.5}},
	}
	for _, r := range rows {
		if err := f.SetSheetRow("Video", r.axis, &r.values); err != nil {
			t.Fatalf("failed to write row %s: %v", r.axis, err)
		}
	}

	if _, err := f.NewSheet("Flags (archive)"); err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}
	flagRows := []struct {
		axis   string
		values []interface{}
	}{
		{"A1", []interface{}{"id", "active"}},
		{"A2", []interface{}{1, true}},
		{"A3", []interface{}{2, false}},
	}
	for _, r := range flagRows {
		if err := f.SetSheetRow("Flags (archive)", r.axis, &r.values); err != nil {
			t.Fatalf("failed to write row %s: %v", r.axis, err)
		}
	}

	path := filepath.Join(t.TempDir(), "main.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	path := writeFixture(t)

	tables, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	// Sheet order is file order.
	if tables[0].Name != "Video" {
		t.Errorf("table 0: got name %q, want Video", tables[0].Name)
	}
	if tables[1].Name != "Flags archive" {
		t.Errorf("table 1: got name %q, want 'Flags archive'", tables[1].Name)
	}

	expected := []string{"id", "name", "age"}
	for i, f := range expected {
		if tables[0].Fields[i] != f {
			t.Errorf("field %d: got %s, want %s", i, tables[0].Fields[i], f)
		}
	}
}

func TestParseCellTypes(t *testing.T) {
	path := writeFixture(t)

	tables, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var data [][]Cell
	err = tables[0].ScanRows(1, func(row []Cell, err error) error {
		if err != nil {
			return err
		}
		data = append(data, row)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanRows failed: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(data))
	}

	if data[0][0].Kind != KindInt || data[0][0].Int != 1 {
		t.Errorf("A2: got %+v, want Int 1", data[0][0])
	}
	if data[0][1].Kind != KindText || data[0][1].Text != "Tom" {
		t.Errorf("B2: got %+v, want Text Tom", data[0][1])
	}
	if data[1][2].Kind != KindFloat || data[1][2].Float != 9.5 {
		t.Errorf("C3: got %+v, want Float 9.5", data[1][2])
	}

	var flags [][]Cell
	err = tables[1].ScanRows(1, func(row []Cell, err error) error {
		if err != nil {
			return err
		}
		flags = append(flags, row)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanRows failed: %v", err)
	}
	if flags[0][1].Kind != KindBool || !flags[0][1].Bool {
		t.Errorf("boolean cell: got %+v, want Bool true", flags[0][1])
	}
	if flags[1][1].Kind != KindBool || flags[1][1].Bool {
		t.Errorf("boolean cell: got %+v, want Bool false", flags[1][1])
	}
}

func TestParseHeaderReYield(t *testing.T) {
	path := writeFixture(t)

	tables, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// With skip 0 the header row comes back as the first data row.
	var first []Cell
	err = tables[0].ScanRows(0, func(row []Cell, err error) error {
		if err != nil {
			return err
		}
		if first == nil {
			first = row
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ScanRows failed: %v", err)
	}
	if first[0].Kind != KindText || first[0].Text != "id" {
		t.Errorf("skip 0 first row: got %+v, want the header cell Text id", first[0])
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "absent.xlsx"))
	if err == nil {
		t.Fatal("expected an error for a missing workbook")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
}
