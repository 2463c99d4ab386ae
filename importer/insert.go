package importer

import (
	"strconv"
	"strings"

	"github.com/darianmavgo/mkmysql/workbook"
)

// BuildInsert renders one row as a complete INSERT statement:
//
//	INSERT INTO `table` (`f1`, `f2`) VALUES (v1, v2);
//
// Identifiers are interpolated verbatim inside backticks and text values are
// double-quoted without escaping embedded quotes; the emitted text is the
// documented contract, not an injection-safe encoding. fields and row must
// already be the same length and positionally aligned — BuildInsert does not
// check, a misaligned call produces a well-formed but wrong statement.
func BuildInsert(table string, fields []string, row []workbook.Cell) string {
	var b strings.Builder
	b.Grow(32 + len(table) + len(fields)*16)

	b.WriteString("INSERT INTO `")
	b.WriteString(table)
	b.WriteString("` (")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('`')
		b.WriteString(f)
		b.WriteByte('`')
	}
	b.WriteString(") VALUES (")
	for i, c := range row {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sqlLiteral(c))
	}
	b.WriteString(");")

	return b.String()
}

// sqlLiteral renders a single cell value: text double-quoted, booleans as
// 1/0, numbers as decimal literals, everything else as null.
func sqlLiteral(c workbook.Cell) string {
	switch c.Kind {
	case workbook.KindText:
		return `"` + c.Text + `"`
	case workbook.KindBool:
		if c.Bool {
			return "1"
		}
		return "0"
	case workbook.KindInt:
		return strconv.FormatInt(c.Int, 10)
	case workbook.KindFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	default:
		return "null"
	}
}
