// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package render

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"strconv"

	"github.com/ezrec/optable/opcode"
)

// Go renders a table as a gofmt'ed Go source file holding a variable of
// keyed `I` literals, with the mnemonics and addressing modes as
// identifiers:
//
//	var OPCODES = [16][16]I{
//		{
//			{Op: BRK, Cycles: 7, Mode: IMP},
//			...
type Go struct {
	Package string
	Name    string
}

// Encode writes the Go source file.
func (gen *Go) Encode(output io.Writer, tab *opcode.Table) (err error) {
	var text bytes.Buffer

	fmt.Fprintf(&text, "// Code generated by optable; DO NOT EDIT.\n\n")
	fmt.Fprintf(&text, "package %v\n\n", gen.Package)
	fmt.Fprintf(&text, "// %v is indexed by the [high][low] nibbles of an opcode.\n", gen.Name)
	fmt.Fprintf(&text, "var %v = [%d][%d]I{\n", gen.Name, opcode.TABLE_ROWS, opcode.TABLE_COLUMNS)
	for _, row := range tab {
		text.WriteString("{\n")
		for _, in := range row {
			fmt.Fprintf(&text, "{Op: %v, Cycles: %d, Mode: %v", in.Mnemonic, in.Cycles, in.Mode)
			if in.PageCross {
				text.WriteString(", PageCross: true")
			}
			text.WriteString("},\n")
		}
		text.WriteString("},\n")
	}
	text.WriteString("}\n")

	src, err := format.Source(text.Bytes())
	if err != nil {
		return
	}

	_, err = output.Write(src)
	return
}

// Decode parses a Go source file written by Encode.
func (gen *Go) Decode(input io.Reader) (tab *opcode.Table, err error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.SkipObjectResolution)
	if err != nil {
		return
	}

	value := gen.find(file)
	if value == nil {
		err = ErrTableMissing
		return
	}

	rows := make([][]opcode.Instruction, 0, len(value.Elts))
	for _, elt := range value.Elts {
		lit, ok := elt.(*ast.CompositeLit)
		if !ok {
			err = ErrEntry(nodeText(fset, elt))
			return
		}
		row := make([]opcode.Instruction, 0, len(lit.Elts))
		for _, entry := range lit.Elts {
			var in opcode.Instruction
			in, err = decodeGoEntry(fset, entry)
			if err != nil {
				return
			}
			row = append(row, in)
		}
		rows = append(rows, row)
	}

	return opcode.Assemble(rows)
}

// find returns the composite literal assigned to the table variable.
func (gen *Go) find(file *ast.File) *ast.CompositeLit {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || (gd.Tok != token.VAR && gd.Tok != token.CONST) {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for n, name := range vs.Names {
				if name.Name != gen.Name || n >= len(vs.Values) {
					continue
				}
				if lit, ok := vs.Values[n].(*ast.CompositeLit); ok {
					return lit
				}
			}
		}
	}
	return nil
}

// decodeGoEntry decodes one keyed `I` literal.
func decodeGoEntry(fset *token.FileSet, entry ast.Expr) (in opcode.Instruction, err error) {
	lit, ok := entry.(*ast.CompositeLit)
	if !ok {
		err = ErrEntry(nodeText(fset, entry))
		return
	}

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			err = ErrEntry(nodeText(fset, elt))
			return
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			err = ErrEntry(nodeText(fset, elt))
			return
		}

		switch value := kv.Value.(type) {
		case *ast.Ident:
			switch key.Name {
			case "Op":
				in.Mnemonic = value.Name
			case "Mode":
				in.Mode, err = opcode.ParseAddressingMode(value.Name)
			case "PageCross":
				in.PageCross, err = strconv.ParseBool(value.Name)
			default:
				err = ErrEntry(nodeText(fset, elt))
			}
		case *ast.BasicLit:
			if key.Name != "Cycles" || value.Kind != token.INT {
				err = ErrEntry(nodeText(fset, elt))
				return
			}
			var cycles uint64
			cycles, err = strconv.ParseUint(value.Value, 0, 8)
			in.Cycles = uint8(cycles)
		default:
			err = ErrEntry(nodeText(fset, elt))
		}
		if err != nil {
			return
		}
	}

	if len(in.Mnemonic) == 0 {
		err = ErrEntry(nodeText(fset, entry))
	}

	return
}

// nodeText returns the source text of a node, for error reports.
func nodeText(fset *token.FileSet, node ast.Node) string {
	var text bytes.Buffer
	if err := format.Node(&text, fset, node); err != nil {
		return fmt.Sprintf("%T", node)
	}
	return text.String()
}
