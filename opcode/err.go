package opcode

import (
	"errors"
	"strings"

	"github.com/ezrec/optable/translate"
)

var f = translate.From

var (
	// Cell errors
	ErrCellMalformed = errors.New(f("mnemonic missing"))
	ErrCycleSuffix   = errors.New(f("cycle count not decimal"))
	ErrCycleRange    = errors.New(f("cycle count out of range"))

	// Shape errors
	ErrShapeRows    = errors.New(f("row count"))
	ErrShapeColumns = errors.New(f("column count"))
)

// ErrAddressingMode is an unknown addressing mode abbreviation.
type ErrAddressingMode string

func (err ErrAddressingMode) Error() string {
	return f("addressing mode '%v' unknown", string(err))
}

// ErrAddressingModeName is an unknown canonical addressing mode name.
type ErrAddressingModeName string

func (err ErrAddressingModeName) Error() string {
	return f("addressing mode name '%v' unknown", string(err))
}

// ErrCell locates a cell that failed to parse.
type ErrCell struct {
	Row    int    // Row of the cell, the opcode high nibble.
	Column int    // Column of the cell, the opcode low nibble.
	Text   string // Flattened cell text.
	Err    error
}

func (err *ErrCell) Error() string {
	return f("row %d column %d '%v' %v", err.Row, err.Column, err.Text, err.Err)
}

func (err *ErrCell) Unwrap() error {
	return err.Err
}

// ErrShape is a table with the wrong number of rows, or a row with the
// wrong number of cells.
type ErrShape struct {
	Row   int // Row index, or -1 for the table itself.
	Count int // Number of rows or cells found.
}

func (err *ErrShape) Error() string {
	if err.Row < 0 {
		return f("table has %d rows, expected %d", err.Count, TABLE_ROWS)
	}
	return f("row %d has %d cells, expected %d", err.Row, err.Count, TABLE_COLUMNS)
}

func (err *ErrShape) Unwrap() error {
	if err.Row < 0 {
		return ErrShapeRows
	}
	return ErrShapeColumns
}

// ErrReport is every error found while building a table, in row major order.
type ErrReport []error

func (err ErrReport) Error() string {
	lines := make([]string, len(err))
	for n, e := range err {
		lines[n] = e.Error()
	}
	return strings.Join(lines, "\n")
}

func (err ErrReport) Unwrap() []error {
	return err
}
