// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package arcade drives an IntCode arcade cabinet.
//
// The program draws by emitting (x, y, tile) triples. The triple (-1, 0, n)
// sets the score to n instead of drawing. When the program wants joystick
// input, the cabinet steers the paddle towards the ball.
package arcade

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrProtocol = errors.New(f("arcade expected x, y and tile"))
)

// Tile is a screen tile id.
type Tile int64

const (
	TILE_EMPTY  = Tile(0) // empty
	TILE_WALL   = Tile(1) // wall
	TILE_BLOCK  = Tile(2) // block
	TILE_PADDLE = Tile(3) // paddle
	TILE_BALL   = Tile(4) // ball
)

func (tile Tile) String() string {
	switch tile {
	case TILE_EMPTY:
		return "empty"
	case TILE_WALL:
		return "wall"
	case TILE_BLOCK:
		return "block"
	case TILE_PADDLE:
		return "paddle"
	case TILE_BALL:
		return "ball"
	default:
		return fmt.Sprintf("Tile(%d)", int64(tile))
	}
}

const (
	// FREE_PLAY is stored at address 0 to play without quarters.
	FREE_PLAY = 2
)

// Score position sentinel.
var SCORE = Point{-1, 0}

// Point on the screen.
type Point struct {
	X, Y int64
}

// Cabinet state.
type Cabinet struct {
	Verbose bool // If set, enables verbose logging.
	Machine *intcode.Machine

	Tiles map[Point]Tile // Every tile drawn.
	Score int64

	Ball   Point
	Paddle Point

	Screen tcell.Screen // If set, the game is rendered after each update.
}

// NewCabinet creates a cabinet running the game program.
func NewCabinet(program []int64, freePlay bool) (cab *Cabinet) {
	cab = &Cabinet{
		Machine: intcode.NewMachine(program),
		Tiles:   map[Point]Tile{},
	}

	if freePlay {
		// Address 0 is never negative.
		_ = cab.Machine.Tape.Write(0, FREE_PLAY)
	}

	return
}

// Joystick returns the joystick position that moves the paddle toward
// the ball: -1 left, 0 neutral, 1 right.
func (cab *Cabinet) Joystick() int64 {
	switch {
	case cab.Ball.X < cab.Paddle.X:
		return -1
	case cab.Ball.X > cab.Paddle.X:
		return 1
	default:
		return 0
	}
}

// Step decodes the next triple of output, or feeds the joystick when the
// program asks for it. done is set once the program halts. A program that
// halts partway through a triple is an ErrProtocol.
func (cab *Cabinet) Step() (done bool, err error) {
	cab.Machine.Verbose = cab.Verbose

	outputs, ok, err := cab.Machine.RunUntilOutput(3)
	if err != nil {
		return
	}

	if !ok {
		joystick := cab.Joystick()
		if cab.Verbose {
			log.Printf("arcade: joystick %d", joystick)
		}
		cab.Machine.Input.Push(joystick)
		return
	}

	switch len(outputs) {
	case 0:
		done = true
		return
	case 3:
	default:
		err = ErrProtocol
		return
	}

	pos := Point{outputs[0], outputs[1]}
	if pos == SCORE {
		cab.Score = outputs[2]
		if cab.Verbose {
			log.Printf("arcade: score %d", cab.Score)
		}
	} else {
		tile := Tile(outputs[2])
		cab.Tiles[pos] = tile
		switch tile {
		case TILE_BALL:
			cab.Ball = pos
		case TILE_PADDLE:
			cab.Paddle = pos
		}
	}

	if cab.Screen != nil {
		Draw(cab.Screen, cab.Tiles, cab.Score)
		cab.Screen.Show()
	}

	return
}

// Run steps the cabinet until the program halts, and returns the final score.
func (cab *Cabinet) Run() (score int64, err error) {
	for done := false; !done; {
		done, err = cab.Step()
		if err != nil {
			return
		}
	}

	score = cab.Score
	return
}

// Count returns the number of tiles of a kind currently on screen.
func (cab *Cabinet) Count(kind Tile) (count int) {
	for _, tile := range cab.Tiles {
		if tile == kind {
			count++
		}
	}
	return
}
