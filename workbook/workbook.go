// Package workbook reads spreadsheet workbooks into typed, per-sheet tables
// ready for SQL import.
package workbook

import (
	"log"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Parse opens the workbook at path and returns one Table per resolvable
// sheet, in file order. A sheet whose range cannot be resolved is skipped
// with a warning; failing to open the workbook itself, or to construct a
// Table from a resolved range, aborts the whole parse with a ParseError.
func Parse(path string) ([]*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	var tables []*Table
	for _, sheet := range f.GetSheetList() {
		grid, err := readSheet(f, sheet)
		if err != nil {
			log.Printf("[MKMYSQL] sheet %q not resolvable, skipping: %v", sheet, err)
			continue
		}

		table, err := NewTable(sheet, grid)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, nil
}

// readSheet materializes one sheet as a grid of typed cells, header row
// included.
func readSheet(f *excelize.File, sheet string) ([][]Cell, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	grid := make([][]Cell, len(rows))
	for r, row := range rows {
		cells := make([]Cell, len(row))
		for c, raw := range row {
			cells[c] = classifyCell(f, sheet, c, r, raw)
		}
		grid[r] = cells
	}
	return grid, nil
}

// classifyCell reconstructs the cell's type from the stored cell kind plus
// the formatted value. Excelize hands back formatted strings, so numeric
// cells are re-parsed: integral values become Int, the rest Float. Date and
// error cells carry no usable literal and collapse to Empty.
func classifyCell(f *excelize.File, sheet string, col, row int, raw string) Cell {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return EmptyCell()
	}

	ct, err := f.GetCellType(sheet, axis)
	if err != nil {
		ct = excelize.CellTypeUnset
	}

	switch ct {
	case excelize.CellTypeBool:
		return BoolCell(raw == "TRUE")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return TextCell(raw)
	case excelize.CellTypeDate, excelize.CellTypeError:
		return EmptyCell()
	}

	// Number, formula, or unset: xlsx stores plain numeric cells with no
	// explicit type attribute.
	if raw == "" {
		return EmptyCell()
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntCell(i)
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return FloatCell(v)
	}
	return TextCell(raw)
}
