package clue_test

import (
	"errors"
	"testing"

	"github.com/nonogram/solver/cell"
	"github.com/nonogram/solver/clue"
)

func TestMinSpanMonochrome(t *testing.T) {
	c := clue.Clue{clue.Box(2), clue.Box(1), clue.Box(3)}
	// 2 + 1(gap) + 1 + 1(gap) + 3 = 8
	if got := c.MinSpan(); got != 8 {
		t.Errorf("MinSpan() = %d; want 8", got)
	}
}

func TestMinSpanEmpty(t *testing.T) {
	var c clue.Clue
	if got := c.MinSpan(); got != 0 {
		t.Errorf("MinSpan() of empty clue = %d; want 0", got)
	}
	if !c.IsEmpty() {
		t.Error("IsEmpty() = false; want true")
	}
}

func TestMinSpanDifferentColorsMayTouch(t *testing.T) {
	red, _ := newRedBlue()
	c := clue.Clue{clue.Colored(2, red), clue.Colored(2, red+1)}
	// same span check: different colors need no forced gap
	if got := c.MinSpan(); got != 4 {
		t.Errorf("MinSpan() = %d; want 4 (no forced gap between different colors)", got)
	}
}

func TestMinSpanSameColorNeedsGap(t *testing.T) {
	red, _ := newRedBlue()
	c := clue.Clue{clue.Colored(2, red), clue.Colored(2, red)}
	if got := c.MinSpan(); got != 5 {
		t.Errorf("MinSpan() = %d; want 5 (forced gap between same color)", got)
	}
}

func TestValidateRejectsBadBlocks(t *testing.T) {
	c := clue.Clue{{Length: 0, Color: cell.Box}}
	if err := c.Validate(); !errors.Is(err, clue.ErrInvalidBlock) {
		t.Errorf("Validate() = %v; want ErrInvalidBlock", err)
	}

	c2 := clue.Clue{{Length: 3, Color: cell.Space}}
	if err := c2.Validate(); !errors.Is(err, clue.ErrInvalidBlock) {
		t.Errorf("Validate() = %v; want ErrInvalidBlock for Space-colored block", err)
	}
}

func TestColorSums(t *testing.T) {
	c := clue.Clue{clue.Box(2), clue.Box(3)}
	sums := c.ColorSums()
	if sums[cell.Box] != 5 {
		t.Errorf("ColorSums()[Box] = %d; want 5", sums[cell.Box])
	}
}

func TestHasBlots(t *testing.T) {
	c := clue.Clue{clue.Box(2), clue.Blot(1)}
	if !c.HasBlots() {
		t.Error("HasBlots() = false; want true")
	}
}

func newRedBlue() (cell.Color, cell.Color) {
	p := cell.NewPalette()
	red, _ := p.Add("red", 'R')
	blue, _ := p.Add("blue", 'B')

	return red, blue
}
