// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package render

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/optable/opcode"
)

// Rust renders a table as a Rust constant of `I::new(Op, cycles, AM)`
// values:
//
//	pub const OPCODES: [[I; 16]; 16] = [
//	[I::new(Op::BRK,7,AM::IMP),I::new(Op::ORA,6,AM::INX),...],
//	...
//	];
type Rust struct {
	Name string
}

func (rs *Rust) header() string {
	return fmt.Sprintf("pub const %v: [[I; %d]; %d] = [", rs.Name, opcode.TABLE_COLUMNS, opcode.TABLE_ROWS)
}

// Encode writes the table constant.
func (rs *Rust) Encode(output io.Writer, tab *opcode.Table) (err error) {
	var text strings.Builder

	text.WriteString(rs.header())
	text.WriteString("\n")
	for _, row := range tab {
		text.WriteString("[")
		for _, in := range row {
			fmt.Fprintf(&text, "I::new(Op::%v,%d,AM::%v),", in.Mnemonic, in.Cycles, in.Mode)
		}
		text.WriteString("],\n")
	}
	text.WriteString("];\n")

	_, err = io.WriteString(output, text.String())
	return
}

var (
	rustRow   = regexp.MustCompile(`^\[(.*)\],$`)
	rustEntry = regexp.MustCompile(`I::new\(Op::([^,()]+),([0-9]+),AM::([A-Z]+)\),`)
)

// Decode reads back a table constant written by Encode.
func (rs *Rust) Decode(input io.Reader) (tab *opcode.Table, err error) {
	scanner := bufio.NewScanner(input)

	var rows [][]opcode.Instruction
	found := false
	done := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case done || len(line) == 0:
			continue
		case !found:
			found = line == rs.header()
			continue
		case line == "];":
			done = true
			continue
		}

		match := rustRow.FindStringSubmatch(line)
		if match == nil {
			err = ErrEntry(line)
			return
		}

		body := match[1]
		var row []opcode.Instruction
		for _, loc := range rustEntry.FindAllStringSubmatchIndex(body, -1) {
			entry := body[loc[0]:loc[1]]
			var in opcode.Instruction
			in.Mnemonic = body[loc[2]:loc[3]]
			in.Mode, err = opcode.ParseAddressingMode(body[loc[6]:loc[7]])
			if err != nil {
				return
			}
			var cycles uint64
			cycles, err = strconv.ParseUint(body[loc[4]:loc[5]], 10, 8)
			if err != nil {
				err = ErrEntry(entry)
				return
			}
			in.Cycles = uint8(cycles)
			row = append(row, in)
		}
		if rest := rustEntry.ReplaceAllString(body, ""); len(rest) != 0 {
			err = ErrEntry(rest)
			return
		}
		rows = append(rows, row)
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if !found || !done {
		err = ErrTableMissing
		return
	}

	return opcode.Assemble(rows)
}
