// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package render

import (
	"fmt"
	"io"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/optable/opcode"
)

// Starlark renders a table as a Starlark (Python syntax) list of rows of
// (mnemonic, cycles, mode, page_cross) tuples:
//
//	OPCODES = [
//	    [("BRK", 7, "IMP", False), ("ORA", 6, "INX", False), ...],
//	    ...
//	]
type Starlark struct {
	Name string
}

// Encode writes the table assignment.
func (sl *Starlark) Encode(output io.Writer, tab *opcode.Table) (err error) {
	var text strings.Builder

	fmt.Fprintf(&text, "%v = [\n", sl.Name)
	for _, row := range tab {
		entries := make([]string, len(row))
		for n, in := range row {
			tuple := starlark.Tuple{
				starlark.String(in.Mnemonic),
				starlark.MakeInt(int(in.Cycles)),
				starlark.String(in.Mode.String()),
				starlark.Bool(in.PageCross),
			}
			entries[n] = tuple.String()
		}
		fmt.Fprintf(&text, "    [%v],\n", strings.Join(entries, ", "))
	}
	text.WriteString("]\n")

	_, err = io.WriteString(output, text.String())
	return
}

// Decode executes the Starlark source and reads back the table value.
func (sl *Starlark) Decode(input io.Reader) (tab *opcode.Table, err error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return
	}

	thread := starlark.Thread{Name: "decode"}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, "opcodes.star", src, nil)
	if err != nil {
		return
	}

	value, ok := globals[sl.Name]
	if !ok {
		err = ErrTableMissing
		return
	}

	table, ok := value.(*starlark.List)
	if !ok {
		err = ErrEntry(value.String())
		return
	}

	rows := make([][]opcode.Instruction, 0, table.Len())
	for n := range table.Len() {
		item := table.Index(n)
		list, ok := item.(*starlark.List)
		if !ok {
			err = ErrEntry(item.String())
			return
		}
		row := make([]opcode.Instruction, 0, list.Len())
		for m := range list.Len() {
			var in opcode.Instruction
			in, err = decodeStarlarkEntry(list.Index(m))
			if err != nil {
				return
			}
			row = append(row, in)
		}
		rows = append(rows, row)
	}

	return opcode.Assemble(rows)
}

// decodeStarlarkEntry decodes one (mnemonic, cycles, mode, page_cross) tuple.
func decodeStarlarkEntry(entry starlark.Value) (in opcode.Instruction, err error) {
	tuple, ok := entry.(starlark.Tuple)
	if !ok || tuple.Len() != 4 {
		err = ErrEntry(entry.String())
		return
	}

	mnemonic, ok := starlark.AsString(tuple[0])
	if !ok || len(mnemonic) == 0 {
		err = ErrEntry(entry.String())
		return
	}
	in.Mnemonic = mnemonic

	var cycles int
	if err = starlark.AsInt(tuple[1], &cycles); err != nil {
		return
	}
	if cycles < 0 || cycles > 0xff {
		err = ErrEntry(entry.String())
		return
	}
	in.Cycles = uint8(cycles)

	mode, ok := starlark.AsString(tuple[2])
	if !ok {
		err = ErrEntry(entry.String())
		return
	}
	in.Mode, err = opcode.ParseAddressingMode(mode)
	if err != nil {
		return
	}

	page, ok := tuple[3].(starlark.Bool)
	if !ok {
		err = ErrEntry(entry.String())
		return
	}
	in.PageCross = bool(page)

	return
}
