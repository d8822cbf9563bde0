package render

import (
	"errors"

	"github.com/ezrec/optable/opcode"
	"github.com/ezrec/optable/translate"
)

var f = translate.From

var (
	ErrTableMissing = errors.New(f("table declaration missing"))
)

// ErrFormatUnknown is an unsupported output format.
type ErrFormatUnknown string

func (err ErrFormatUnknown) Error() string {
	return f("format '%v' unknown", string(err))
}

// ErrEntry is a table entry that could not be decoded.
type ErrEntry string

func (err ErrEntry) Error() string {
	return f("entry '%v' invalid", string(err))
}

// ErrMismatch is a decoded instruction that differs from the rendered one.
type ErrMismatch struct {
	Op   uint8
	Want opcode.Instruction
	Got  opcode.Instruction
}

func (err *ErrMismatch) Error() string {
	return f("opcode $%02X decoded as %v, expected %v", err.Op, err.Got, err.Want)
}
