// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package opcode decodes the cells of a 16x16 opcode reference grid into a
// 256 entry instruction dispatch table.
//
// Each cell holds the flattened text of one instruction, such as "ORAizx6",
// "JMPind" or "BRK7": an uppercase mnemonic, an optional lowercase addressing
// mode abbreviation, and an optional decimal cycle count, which may carry a
// trailing '*' when crossing a page boundary costs an extra cycle.
//
// Cells are tokenized, parsed, and assembled into a Table whose row is the
// high nibble of the opcode and whose column is the low nibble. Every bad
// cell, and every shape violation, is collected into a single ErrReport so
// that one pass over a reference grid shows all of its problems.
package opcode
