// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package channel

import (
	"iter"
	"strings"
)

// Display is a fixed size circular frame buffer of Width x Height cells.
// Writes and reads share a single cursor that wraps at the end of the frame,
// so a program streaming a full frame of values repaints the whole display.
// A display is always full: Len is the frame size.
type Display struct {
	Width  int
	Height int

	Offset int
	Data   []int64
}

var _ Channel = (*Display)(nil)

// NewDisplay creates a blank display.
func NewDisplay(width, height int) (disp *Display) {
	disp = &Display{
		Width:  width,
		Height: height,
	}
	disp.Clear()

	return
}

func (disp *Display) advance() {
	disp.Offset++
	if disp.Offset >= len(disp.Data) {
		disp.Offset = 0
	}
}

// Len returns the number of cells in the frame.
func (disp *Display) Len() int {
	return len(disp.Data)
}

// All returns an iterator over one revolution of the frame, starting at the
// cursor. The cursor is not moved.
func (disp *Display) All() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		size := len(disp.Data)
		for n := range size {
			if !yield(disp.Data[(disp.Offset+n)%size]) {
				return
			}
		}
	}
}

// Push stores a value at the cursor, and advances the cursor.
func (disp *Display) Push(value int64) {
	if len(disp.Data) == 0 {
		return
	}

	disp.Data[disp.Offset] = value
	disp.advance()
}

// Pop reads the value at the cursor, and advances the cursor.
func (disp *Display) Pop() (value int64, err error) {
	if len(disp.Data) == 0 {
		err = ErrChannelEmpty
		return
	}

	value = disp.Data[disp.Offset]
	disp.advance()

	return
}

// Clear blanks the frame and homes the cursor.
func (disp *Display) Clear() {
	size := disp.Width * disp.Height
	if size < 0 {
		size = 0
	}
	if len(disp.Data) != size {
		disp.Data = make([]int64, size)
	} else {
		clear(disp.Data)
	}
	disp.Offset = 0
}

// Extend pushes each value in order.
func (disp *Display) Extend(values ...int64) {
	for _, value := range values {
		disp.Push(value)
	}
}

// At returns the cell at column x, row y.
func (disp *Display) At(x, y int) (value int64) {
	if x < 0 || y < 0 || x >= disp.Width || y >= disp.Height {
		return
	}

	return disp.Data[y*disp.Width+x]
}

// String renders the frame one row per line, using glyph to map each cell.
func (disp *Display) String() string {
	return disp.Render(func(value int64) rune {
		if value >= 0 && value <= 9 {
			return rune('0' + value)
		}
		return '?'
	})
}

// Render renders the frame one row per line.
func (disp *Display) Render(glyph func(value int64) rune) string {
	var sb strings.Builder
	for y := range disp.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range disp.Width {
			sb.WriteRune(glyph(disp.At(x, y)))
		}
	}

	return sb.String()
}
