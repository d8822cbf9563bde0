package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/optable/opcode"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	doc := `<html><body>
<p>Opcodes</p>
<table>
  <tr><th>-</th><th>x0</th><th>x1</th></tr>
  <tr><td>0x</td><td>BRK <br> 7</td><td> ORA
     izx   6 </td></tr>
  <tr><td>1x</td><td><a href="#bpl">BPL</a> rel <i>2*</i></td><td>
    <table><tr><td>NESTED</td></tr></table>
  </td></tr>
</table>
<table><tr><td>SECOND</td></tr></table>
</body></html>`

	grid, err := Load(strings.NewReader(doc))
	assert.NoError(err)

	assert.Equal(Grid{
		{},
		{"0x", "BRK7", "ORAizx6"},
		{"1x", "BPLrel2*", "NESTED"},
	}, grid)

	assert.Equal([][]string{
		{"BRK7", "ORAizx6"},
		{"BPLrel2*", "NESTED"},
	}, grid.Body())
}

func TestLoadMissingTable(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	assert.ErrorIs(err, ErrTableMissing)

	_, err = LoadFile("testdata/does-not-exist.html")
	assert.Error(err)
}

func TestBody(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Grid{}.Body())
	assert.Equal([][]string{}, Grid{{"header"}}.Body())
	assert.Equal([][]string{nil, {}}, Grid{{"header"}, {}, {"label"}}.Body())

	// Rows past the sixteenth body row are dropped.
	grid := make(Grid, 20)
	for n := range grid {
		grid[n] = []string{"label", "NOP"}
	}
	assert.Equal(16, len(grid.Body()))
}

func TestLoadFileTrailingRows(t *testing.T) {
	assert := assert.New(t)

	grid, err := LoadFile("testdata/opcodes.html")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	// A repeated label row at the bottom of the grid.
	grid = append(grid, grid[0])
	assert.Equal(18, len(grid))

	tab, err := opcode.Build(grid.Body())
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}
	assert.Equal(opcode.Instruction{Mnemonic: "ISC", Cycles: 7, Mode: opcode.MODE_ABSOLUTE_X, PageCross: false}, tab.At(0xff))
}

func TestLoadFileShortAndWide(t *testing.T) {
	assert := assert.New(t)

	grid, err := LoadFile("testdata/opcodes.html")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	// Fifteen body rows.
	_, err = opcode.Build(grid[:16].Body())
	assert.Equal(opcode.ErrReport{&opcode.ErrShape{Row: -1, Count: 15}}, err)

	// A trailing notes column is a shape error, not ignored.
	wide := make(Grid, len(grid))
	copy(wide, grid)
	wide[3] = append(append([]string{}, grid[3]...), "notes")
	_, err = opcode.Build(wide.Body())
	assert.Equal(opcode.ErrReport{
		&opcode.ErrShape{Row: 2, Count: 17},
		&opcode.ErrCell{Row: 2, Column: 16, Text: "notes", Err: opcode.ErrCellMalformed},
	}, err)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	grid, err := LoadFile("testdata/opcodes.html")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(17, len(grid))
	for _, row := range grid {
		assert.Equal(17, len(row))
	}
	assert.Equal("x0", grid[0][1])
	assert.Equal("Fx", grid[16][0])

	tab, err := opcode.Build(grid.Body())
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	table := [](struct {
		Op uint8
		In opcode.Instruction
	}){
		{0x00, opcode.Instruction{Mnemonic: "BRK", Cycles: 7, Mode: opcode.MODE_IMPLIED, PageCross: false}},
		{0x01, opcode.Instruction{Mnemonic: "ORA", Cycles: 6, Mode: opcode.MODE_INDEXED_INDIRECT, PageCross: false}},
		{0x02, opcode.Instruction{Mnemonic: "KIL", Cycles: 0, Mode: opcode.MODE_IMPLIED, PageCross: false}},
		{0x0a, opcode.Instruction{Mnemonic: "ASL", Cycles: 2, Mode: opcode.MODE_IMPLIED, PageCross: false}},
		{0x10, opcode.Instruction{Mnemonic: "BPL", Cycles: 2, Mode: opcode.MODE_RELATIVE, PageCross: true}},
		{0x11, opcode.Instruction{Mnemonic: "ORA", Cycles: 5, Mode: opcode.MODE_INDIRECT_INDEXED, PageCross: true}},
		{0x20, opcode.Instruction{Mnemonic: "JSR", Cycles: 6, Mode: opcode.MODE_ABSOLUTE, PageCross: false}},
		{0x6c, opcode.Instruction{Mnemonic: "JMP", Cycles: 5, Mode: opcode.MODE_INDIRECT, PageCross: false}},
		{0x96, opcode.Instruction{Mnemonic: "STX", Cycles: 4, Mode: opcode.MODE_ZERO_PAGE_Y, PageCross: false}},
		{0xa9, opcode.Instruction{Mnemonic: "LDA", Cycles: 2, Mode: opcode.MODE_IMMEDIATE, PageCross: false}},
		{0xbd, opcode.Instruction{Mnemonic: "LDA", Cycles: 4, Mode: opcode.MODE_ABSOLUTE_X, PageCross: true}},
		{0xbe, opcode.Instruction{Mnemonic: "LDX", Cycles: 4, Mode: opcode.MODE_ABSOLUTE_Y, PageCross: true}},
		{0xe5, opcode.Instruction{Mnemonic: "SBC", Cycles: 3, Mode: opcode.MODE_ZERO_PAGE, PageCross: false}},
		{0xf6, opcode.Instruction{Mnemonic: "INC", Cycles: 6, Mode: opcode.MODE_ZERO_PAGE_X, PageCross: false}},
		{0xff, opcode.Instruction{Mnemonic: "ISC", Cycles: 7, Mode: opcode.MODE_ABSOLUTE_X, PageCross: false}},
	}

	for _, entry := range table {
		assert.Equal(entry.In, tab.At(entry.Op), "$%02X", entry.Op)
	}

	var kil, page int
	for in := range tab.Instructions() {
		if in.Mnemonic == "KIL" {
			kil++
		}
		if in.PageCross {
			page++
		}
	}
	assert.Equal(12, kil)
	assert.Equal(40, page)
}
