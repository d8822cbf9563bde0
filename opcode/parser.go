// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

import (
	"strconv"
)

// Instruction is the decoded content of one grid cell.
type Instruction struct {
	Mnemonic  string         // Instruction mnemonic, such as "LDA".
	Cycles    uint8          // Base cycle count, 0 if not listed.
	Mode      AddressingMode // Operand addressing mode.
	PageCross bool           // One more cycle if a page boundary is crossed.
}

// pageCrossMarker follows the cycle count of page crossing sensitive cells.
const pageCrossMarker = "*"

// ParseCell decodes the flattened text of a single grid cell.
//
// The grammar is an uppercase mnemonic, then an optional lowercase
// addressing mode abbreviation, then an optional decimal cycle count with
// an optional trailing '*'. A cycle count directly after the mnemonic means
// the implied addressing mode.
func ParseCell(text string) (in Instruction, err error) {
	defer func() {
		if err != nil {
			in = Instruction{}
		}
	}()

	tokens := Tokenize(text)

	if len(tokens) == 0 || tokens[0].Kind != TOKEN_UPPER {
		err = ErrCellMalformed
		return
	}

	in.Mnemonic = tokens[0].Text
	tokens = tokens[1:]

	if len(tokens) > 0 && tokens[0].Kind == TOKEN_LOWER {
		in.Mode, err = ResolveAddressingMode(tokens[0].Text)
		if err != nil {
			return
		}
		tokens = tokens[1:]
	}

	if len(tokens) > 0 && tokens[0].Kind == TOKEN_DIGIT {
		var cycles uint64
		cycles, err = strconv.ParseUint(tokens[0].Text, 10, 8)
		if err != nil {
			err = ErrCycleRange
			return
		}
		in.Cycles = uint8(cycles)
		tokens = tokens[1:]

		if len(tokens) > 0 && tokens[0].Text == pageCrossMarker {
			in.PageCross = true
			tokens = tokens[1:]
		}
	}

	if len(tokens) > 0 {
		err = ErrCycleSuffix
		return
	}

	return
}
