// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package opcode

// AddressingMode is an instruction operand addressing mode.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	MODE_IMPLIED          = AddressingMode(0)  // IMP
	MODE_ABSOLUTE         = AddressingMode(1)  // ABS
	MODE_ABSOLUTE_X       = AddressingMode(2)  // ABX
	MODE_ABSOLUTE_Y       = AddressingMode(3)  // ABY
	MODE_IMMEDIATE        = AddressingMode(4)  // IMM
	MODE_INDIRECT         = AddressingMode(5)  // IND
	MODE_INDEXED_INDIRECT = AddressingMode(6)  // INX
	MODE_INDIRECT_INDEXED = AddressingMode(7)  // INY
	MODE_ZERO_PAGE        = AddressingMode(8)  // ZPG
	MODE_ZERO_PAGE_X      = AddressingMode(9)  // ZPX
	MODE_ZERO_PAGE_Y      = AddressingMode(10) // ZPY
	MODE_RELATIVE         = AddressingMode(11) // REL
)

// abbrevMap maps reference grid abbreviations to addressing modes.
var abbrevMap = map[string]AddressingMode{
	"":    MODE_IMPLIED,
	"abs": MODE_ABSOLUTE,
	"abx": MODE_ABSOLUTE_X,
	"aby": MODE_ABSOLUTE_Y,
	"imm": MODE_IMMEDIATE,
	"ind": MODE_INDIRECT,
	"izx": MODE_INDEXED_INDIRECT,
	"izy": MODE_INDIRECT_INDEXED,
	"zp":  MODE_ZERO_PAGE,
	"zpx": MODE_ZERO_PAGE_X,
	"zpy": MODE_ZERO_PAGE_Y,
	"rel": MODE_RELATIVE,
}

// nameMap maps canonical names back to addressing modes.
var nameMap = func() map[string]AddressingMode {
	names := make(map[string]AddressingMode, len(abbrevMap))
	for _, mode := range abbrevMap {
		names[mode.String()] = mode
	}
	return names
}()

// ResolveAddressingMode maps a grid abbreviation, such as "izx", to its
// addressing mode. The empty abbreviation is MODE_IMPLIED. Any other
// unrecognized abbreviation is an ErrAddressingMode.
func ResolveAddressingMode(abbrev string) (mode AddressingMode, err error) {
	mode, ok := abbrevMap[abbrev]
	if !ok {
		err = ErrAddressingMode(abbrev)
	}
	return
}

// ParseAddressingMode maps a canonical addressing mode name, as returned
// by AddressingMode.String(), back to the addressing mode.
func ParseAddressingMode(name string) (mode AddressingMode, err error) {
	mode, ok := nameMap[name]
	if !ok {
		err = ErrAddressingModeName(name)
	}
	return
}

// Valid returns true if the addressing mode is one of the known modes.
func (mode AddressingMode) Valid() bool {
	return mode >= MODE_IMPLIED && mode <= MODE_RELATIVE
}
