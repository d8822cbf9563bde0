// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package source loads an opcode reference grid from an HTML document.
package source

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ezrec/optable/opcode"
	"github.com/ezrec/optable/translate"
)

var f = translate.From

var (
	ErrTableMissing = errors.New(f("no <table> in document"))
)

// Grid is the flattened text of every cell of a table, row by row.
// The first row and first column hold the nibble labels of the grid.
type Grid [][]string

// Body returns the cells of the grid without its label row and label column.
//
// Only the opcode.TABLE_ROWS rows after the label row are kept; rows past
// them, such as a repeated label row at the bottom, are ignored. A short
// grid keeps all of its rows, and opcode.Build reports the shape.
//
// Every cell after the label cell of a row is kept. A row with cells past
// opcode.TABLE_COLUMNS, such as a trailing notes column, is not trimmed and
// is reported as a shape error by opcode.Build.
func (grid Grid) Body() (cells [][]string) {
	if len(grid) == 0 {
		return
	}

	body := grid[1:min(len(grid), 1+opcode.TABLE_ROWS)]
	cells = make([][]string, 0, len(body))
	for _, row := range body {
		if len(row) == 0 {
			cells = append(cells, nil)
			continue
		}
		cells = append(cells, row[1:])
	}

	return
}

// flatten returns all of the text under a node, with all whitespace removed.
func flatten(node *html.Node) string {
	var text strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)

	return strings.Join(strings.Fields(text.String()), "")
}

// findTable returns the first <table> element in document order.
func findTable(node *html.Node) *html.Node {
	if node.Type == html.ElementNode && node.DataAtom == atom.Table {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if table := findTable(child); table != nil {
			return table
		}
	}
	return nil
}

// rows appends the <tr> elements of a table to grid, in document order,
// without entering nested tables.
func rows(node *html.Node, grid Grid) Grid {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch child.DataAtom {
		case atom.Table:
			// Nested table.
		case atom.Tr:
			row := []string{}
			for cell := child.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type == html.ElementNode && cell.DataAtom == atom.Td {
					row = append(row, flatten(cell))
				}
			}
			grid = append(grid, row)
		default:
			grid = rows(child, grid)
		}
	}
	return grid
}

// Load reads the first table of an HTML document.
func Load(input io.Reader) (grid Grid, err error) {
	doc, err := html.Parse(input)
	if err != nil {
		return
	}

	table := findTable(doc)
	if table == nil {
		err = ErrTableMissing
		return
	}

	grid = rows(table, Grid{})

	return
}

// LoadFile reads the first table of an HTML file.
func LoadFile(path string) (grid Grid, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Load(inf)
}
