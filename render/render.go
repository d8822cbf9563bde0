// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package render writes opcode tables as array literals of a target
// language, and reads those literals back.
package render

import (
	"bytes"
	"io"

	"github.com/ezrec/optable/opcode"
)

// Format is the name of a target language.
type Format string

const (
	FORMAT_RUST     = Format("rust")
	FORMAT_GO       = Format("go")
	FORMAT_STARLARK = Format("starlark")
)

const (
	DEFAULT_NAME    = "OPCODES" // Default table constant name.
	DEFAULT_PACKAGE = "cpu"     // Default package of generated Go code.
)

// Codec renders a table as a named literal in one target language, and
// decodes such a literal back into a table.
type Codec interface {
	Encode(output io.Writer, tab *opcode.Table) error
	Decode(input io.Reader) (*opcode.Table, error)
}

// Options common to the codecs.
type Options struct {
	Name    string // Name of the table constant.
	Package string // Package of generated Go code.
}

// New returns the codec of a format. Empty options get their defaults.
func New(format Format, opts Options) (codec Codec, err error) {
	if len(opts.Name) == 0 {
		opts.Name = DEFAULT_NAME
	}
	if len(opts.Package) == 0 {
		opts.Package = DEFAULT_PACKAGE
	}

	switch format {
	case FORMAT_RUST:
		codec = &Rust{Name: opts.Name}
	case FORMAT_GO:
		codec = &Go{Package: opts.Package, Name: opts.Name}
	case FORMAT_STARLARK:
		codec = &Starlark{Name: opts.Name}
	default:
		err = ErrFormatUnknown(format)
	}

	return
}

// Formats lists the known formats.
func Formats() []Format {
	return []Format{FORMAT_RUST, FORMAT_GO, FORMAT_STARLARK}
}

// Verify decodes rendered output and checks that it matches the table it
// was rendered from.
func Verify(codec Codec, rendered []byte, tab *opcode.Table) (err error) {
	decoded, err := codec.Decode(bytes.NewReader(rendered))
	if err != nil {
		return
	}

	// The Rust I type has no page crossing field.
	_, lossy := codec.(*Rust)

	for op, in := range tab.All() {
		if lossy {
			in.PageCross = false
		}
		if decoded.At(op) != in {
			err = &ErrMismatch{Op: op, Want: in, Got: decoded.At(op)}
			return
		}
	}

	return
}
