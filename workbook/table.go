package workbook

import (
	"errors"
	"path/filepath"
	"strings"
)

// FieldPrefix is prepended to every non-id column name by ApplyConvention.
const FieldPrefix = "c"

// Table maps one sheet to one destination database table. The stored range
// keeps the header row at index 0; Fields holds only its text-valued cells.
type Table struct {
	Name   string
	Fields []string

	rows  [][]Cell
	width int
}

// NewTable wraps a raw sheet range. The first row is read as the header: each
// text cell becomes a field, non-text header cells are dropped from the field
// list. The sheet name is sanitized to ASCII with parentheses stripped; no
// case or whitespace normalization happens here.
func NewTable(sheetName string, rows [][]Cell) (*Table, error) {
	t := &Table{
		Name: sanitizeName(sheetName),
		rows: rows,
	}

	if len(rows) > 0 {
		if rows[0] == nil {
			return nil, &ParseError{Sheet: sheetName, Err: errors.New("malformed range: nil header row")}
		}
		t.width = len(rows[0])
		for _, c := range rows[0] {
			if c.Kind == KindText {
				t.Fields = append(t.Fields, c.Text)
			}
		}
	}

	return t, nil
}

// RowCount reports the total number of rows in the stored range, header
// included.
func (t *Table) RowCount() int { return len(t.rows) }

// ScanRows walks the stored range from the top — the header row is element
// zero, not auto-skipped — discarding the first skip elements before handing
// each remaining row to yield. Callers wanting the header plus N data rows
// gone must pass skip = 1 + N.
//
// Rows narrower than the header are padded with empty cells; rows wider than
// the header cannot be aligned and are handed to yield as a ParseError
// wrapping ErrRowShape with a nil row. If yield returns an error, iteration
// stops and that error is returned.
//
// Each call iterates the range afresh, so independent passes are safe.
func (t *Table) ScanRows(skip int, yield func(row []Cell, err error) error) error {
	for i := skip; i < len(t.rows); i++ {
		raw := t.rows[i]
		if len(raw) > t.width {
			if err := yield(nil, &ParseError{Sheet: t.Name, Err: ErrRowShape}); err != nil {
				return err
			}
			continue
		}

		row := raw
		if len(raw) < t.width {
			row = make([]Cell, t.width)
			copy(row, raw)
		}
		if err := yield(row, nil); err != nil {
			return err
		}
	}
	return nil
}

// ApplyConvention rewrites every field except the literal "id" to the
// prefixed form FieldPrefix_<field>, in place. Call before any row is
// consumed.
func (t *Table) ApplyConvention() {
	for i, f := range t.Fields {
		if f == "id" {
			continue
		}
		t.Fields[i] = FieldPrefix + "_" + f
	}
}

// ConventionalTableName joins the source file's stem with the lowercased raw
// table name: .../main.xlsx + "Video" -> "main_video". A path without a
// usable stem contributes the empty string, yielding "_<name>".
func ConventionalTableName(sourcePath, rawTableName string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "." || stem == string(filepath.Separator) {
		stem = ""
	}
	return stem + "_" + strings.ToLower(rawTableName)
}

// sanitizeName strips non-ASCII characters and literal parentheses from a
// sheet name.
func sanitizeName(sheetName string) string {
	var b strings.Builder
	b.Grow(len(sheetName))
	for _, r := range sheetName {
		if r > 127 || r == '(' || r == ')' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
