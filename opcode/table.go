// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

import (
	"iter"
	"log"
	"slices"

	"github.com/ezrec/optable/internal"
)

const (
	TABLE_ROWS    = 16 // Rows in a table, one per opcode high nibble.
	TABLE_COLUMNS = 16 // Columns in a row, one per opcode low nibble.
)

// Table is an opcode dispatch table, indexed by [high nibble][low nibble].
type Table [TABLE_ROWS][TABLE_COLUMNS]Instruction

// At returns the instruction for an opcode.
func (tab *Table) At(op uint8) Instruction {
	return tab[op>>4][op&0xf]
}

// row returns an iterator over the opcodes and instructions of a row.
func (tab *Table) row(hi int) iter.Seq2[uint8, Instruction] {
	return func(yield func(uint8, Instruction) bool) {
		for lo, in := range tab[hi] {
			if !yield(uint8(hi<<4|lo), in) {
				return
			}
		}
	}
}

// All returns an iterator over every opcode and its instruction, in
// opcode order.
func (tab *Table) All() iter.Seq2[uint8, Instruction] {
	rows := make([]iter.Seq2[uint8, Instruction], len(tab))
	for hi := range tab {
		rows[hi] = tab.row(hi)
	}
	return internal.IterSeq2Concat(rows...)
}

// Instructions returns an iterator over every instruction, in opcode order.
func (tab *Table) Instructions() iter.Seq[Instruction] {
	rows := make([]iter.Seq[Instruction], len(tab))
	for hi := range tab {
		rows[hi] = slices.Values(tab[hi][:])
	}
	return internal.IterSeqConcat(rows...)
}

// Equal returns true if both tables hold the same instructions.
func (tab *Table) Equal(other *Table) bool {
	return *tab == *other
}

// Assemble checks the shape of parsed rows and copies them into a Table.
// The result is an ErrReport of ErrShape values if there are not exactly
// TABLE_ROWS rows of exactly TABLE_COLUMNS instructions.
func Assemble(rows [][]Instruction) (tab *Table, err error) {
	report := checkShape(len(rows), func(hi int) int { return len(rows[hi]) })
	if len(report) != 0 {
		err = report
		return
	}

	tab = &Table{}
	for hi, row := range rows {
		copy(tab[hi][:], row)
	}

	return
}

// checkShape reports the shape violations of a table with the given number
// of rows, where width returns the number of cells in a row.
func checkShape(rows int, width func(hi int) int) (report ErrReport) {
	if rows != TABLE_ROWS {
		report = append(report, &ErrShape{Row: -1, Count: rows})
	}
	for hi := range rows {
		count := width(hi)
		if count != TABLE_COLUMNS {
			report = append(report, &ErrShape{Row: hi, Count: count})
		}
	}
	return
}

// Builder parses grid cells into a Table.
type Builder struct {
	Verbose bool // If set, logs every decoded cell.
}

// Build parses every cell of a grid, row by row, into a Table.
//
// Parsing does not stop at the first problem. The error, if any, is an
// ErrReport holding an ErrShape for every bad row count or cell count, and
// an ErrCell for every cell that failed to parse. No table is returned
// with an error.
func (bld *Builder) Build(cells [][]string) (tab *Table, err error) {
	report := checkShape(len(cells), func(hi int) int { return len(cells[hi]) })

	rows := make([][]Instruction, len(cells))
	for hi, row := range cells {
		rows[hi] = make([]Instruction, len(row))
		for lo, text := range row {
			in, cell_err := ParseCell(text)
			if cell_err != nil {
				report = append(report, &ErrCell{Row: hi, Column: lo, Text: text, Err: cell_err})
				continue
			}
			if bld.Verbose {
				log.Printf("%X%X: %-8v => %v %v %v\n", hi, lo, text, in.Mnemonic, in.Mode, in.Cycles)
			}
			rows[hi][lo] = in
		}
	}

	if len(report) != 0 {
		err = report
		return
	}

	return Assemble(rows)
}

// Build parses every cell of a grid into a Table, quietly.
func Build(cells [][]string) (*Table, error) {
	bld := &Builder{}
	return bld.Build(cells)
}
