package document

import (
	"fmt"
	"strconv"
	"strings"
)

// CellKind tags the closed set of cell value shapes.
type CellKind string

const (
	// CellNumber holds a numeric value.
	CellNumber CellKind = "number"
	// CellText holds a string value.
	CellText CellKind = "text"
	// CellNone marks the absence of a cell. It is the kind of NoCell.
	CellNone CellKind = ""
)

// Cell is a spreadsheet value: a number, a string, or absent.
type Cell struct {
	kind   CellKind
	number float64
	text   string
}

// NoCell is the sentinel returned for out-of-range lookups. Absence is an
// expected outcome here, not an error.
var NoCell = Cell{}

// NumberCell wraps a numeric value.
func NumberCell(v float64) Cell {
	return Cell{kind: CellNumber, number: v}
}

// TextCell wraps a string value.
func TextCell(s string) Cell {
	return Cell{kind: CellText, text: s}
}

func (c Cell) Kind() CellKind { return c.kind }

// IsNone reports whether the cell is the not-found sentinel.
func (c Cell) IsNone() bool { return c.kind == CellNone }

// Number returns the numeric value; zero for non-number cells.
func (c Cell) Number() float64 { return c.number }

// Text returns the string value; empty for non-text cells.
func (c Cell) Text() string { return c.text }

// String renders the cell for display. Numbers drop trailing zeros, so 1200
// renders as "1200" rather than "1200.000000".
func (c Cell) String() string {
	switch c.kind {
	case CellNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	case CellText:
		return c.text
	default:
		return "<no cell>"
	}
}

// Spreadsheet is a document whose content is a grid of cells. Rows may be
// ragged.
type Spreadsheet struct {
	meta
	grid [][]Cell
}

// NewSpreadsheet constructs a spreadsheet document.
func NewSpreadsheet(name string, grid [][]Cell, opts ...Option) *Spreadsheet {
	return &Spreadsheet{meta: newMeta(name, opts...), grid: grid}
}

func (s *Spreadsheet) Kind() Kind { return KindSpreadsheet }

func (s *Spreadsheet) Info() Info { return s.info(KindSpreadsheet) }

// Grid returns the current rows.
func (s *Spreadsheet) Grid() [][]Cell { return s.grid }

// SetGrid replaces the grid, advances the modification timestamp, and
// returns a confirmation line. Row shapes are not validated.
func (s *Spreadsheet) SetGrid(grid [][]Cell) string {
	s.grid = grid
	s.touch()
	return fmt.Sprintf("Content of %q updated", s.name)
}

// Cell returns the value at zero-based row and column indices, or NoCell
// when either index falls outside the grid.
func (s *Spreadsheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.grid) {
		return NoCell
	}
	cells := s.grid[row]
	if col < 0 || col >= len(cells) {
		return NoCell
	}
	return cells[col]
}

// Rows reports the number of rows in the grid.
func (s *Spreadsheet) Rows() int { return len(s.grid) }

// Columns reports the width of the widest row.
func (s *Spreadsheet) Columns() int {
	widest := 0
	for _, row := range s.grid {
		if len(row) > widest {
			widest = len(row)
		}
	}
	return widest
}

// Display renders the grid with one pipe-delimited line per row.
func (s *Spreadsheet) Display() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.name))
	for _, row := range s.grid {
		rendered := make([]string, len(row))
		for i, cell := range row {
			rendered[i] = cell.String()
		}
		b.WriteString("\n| " + strings.Join(rendered, " | ") + " |")
	}
	return b.String()
}
