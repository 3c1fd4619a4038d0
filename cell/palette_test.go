package cell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nonogram/solver/cell"
)

func TestMonochromePalette(t *testing.T) {
	r := require.New(t)
	p := cell.MonochromePalette()
	r.Equal(2, p.Size())
	r.Equal(cell.MonochromeUnknown, p.Unknown())

	boxID, err := p.ColorByName("box")
	r.NoError(err)
	r.Equal(cell.Box, boxID)
}

func TestPaletteAddAndLookup(t *testing.T) {
	r := require.New(t)
	p := cell.NewPalette()

	red, err := p.Add("red", 'R')
	r.NoError(err)
	r.Equal(cell.Color(1), red)

	blue, err := p.Add("blue", 'B')
	r.NoError(err)
	r.Equal(cell.Color(2), blue)

	r.Equal(3, p.Size())
	r.Equal("red", p.Name(red))
	r.Equal('B', p.Symbol(blue))

	_, err = p.Add("red", 'X')
	r.ErrorIs(err, cell.ErrDuplicateColor)

	_, err = p.ColorByName("green")
	r.ErrorIs(err, cell.ErrUnknownColor)
}

func TestPaletteFull(t *testing.T) {
	r := require.New(t)
	p := cell.NewPalette()
	for i := 0; i < cell.MaxColors-1; i++ {
		_, err := p.Add(string(rune('a'+i%26))+string(rune('0'+i/26)), 'x')
		r.NoError(err)
	}
	_, err := p.Add("overflow", 'x')
	r.ErrorIs(err, cell.ErrPaletteFull)
}
