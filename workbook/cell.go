package workbook

import "strconv"

// Kind identifies which variant of a Cell is populated.
type Kind uint8

const (
	KindEmpty Kind = iota // blank, date, or otherwise unsupported cell
	KindText
	KindBool
	KindInt
	KindFloat
)

// Cell is one typed spreadsheet cell. Exactly one value field is meaningful,
// selected by Kind; the rest stay zero.
type Cell struct {
	Kind  Kind
	Text  string
	Bool  bool
	Int   int64
	Float float64
}

func EmptyCell() Cell          { return Cell{Kind: KindEmpty} }
func TextCell(s string) Cell   { return Cell{Kind: KindText, Text: s} }
func BoolCell(b bool) Cell     { return Cell{Kind: KindBool, Bool: b} }
func IntCell(i int64) Cell     { return Cell{Kind: KindInt, Int: i} }
func FloatCell(f float64) Cell { return Cell{Kind: KindFloat, Float: f} }

// String renders the cell for logs and diagnostics, not for SQL.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindBool:
		return strconv.FormatBool(c.Bool)
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	default:
		return ""
	}
}
