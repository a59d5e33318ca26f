package arcade

import (
	"fmt"

	"github.com/gdamore/tcell"
)

var _tile_rune = map[Tile]rune{
	TILE_EMPTY:  ' ',
	TILE_WALL:   '#',
	TILE_BLOCK:  'B',
	TILE_PADDLE: '=',
	TILE_BALL:   'O',
}

var _tile_style = map[Tile]tcell.Style{
	TILE_WALL:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	TILE_BLOCK:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	TILE_PADDLE: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	TILE_BALL:   tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// Glyph returns the character drawn for a tile.
func Glyph(tile Tile) rune {
	glyph, ok := _tile_rune[tile]
	if !ok {
		return '?'
	}
	return glyph
}

// Draw renders the score on the top row, and the tiles below it.
func Draw(screen tcell.Screen, tiles map[Point]Tile, score int64) {
	screen.Clear()

	for x, ch := range fmt.Sprintf("SCORE %d", score) {
		screen.SetContent(x, 0, ch, nil, tcell.StyleDefault.Bold(true))
	}

	for pos, tile := range tiles {
		if pos.X < 0 || pos.Y < 0 {
			continue
		}
		style, ok := _tile_style[tile]
		if !ok {
			style = tcell.StyleDefault
		}
		screen.SetContent(int(pos.X), int(pos.Y)+1, Glyph(tile), nil, style)
	}
}
