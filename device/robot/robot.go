// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package robot drives an IntCode hull painting robot.
//
// Each step, the robot feeds the colour of the panel under it to the
// program, then reads two outputs: the colour to paint the panel, and the
// direction to turn (0 left, 1 right) before moving forward one panel.
package robot

import (
	"errors"
	"log"
	"strings"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrProtocol = errors.New(f("robot expected colour and turn"))
)

// Colour of a hull panel.
type Colour int64

const (
	BLACK = Colour(0)
	WHITE = Colour(1)
)

// Direction the robot faces.
type Direction int

const (
	UP    = Direction(0)
	RIGHT = Direction(1)
	DOWN  = Direction(2)
	LEFT  = Direction(3)
)

var _direction_vector = [4]Point{
	UP:    {0, 1},
	RIGHT: {1, 0},
	DOWN:  {0, -1},
	LEFT:  {-1, 0},
}

func (dir Direction) String() string {
	return [...]string{"up", "right", "down", "left"}[dir&3]
}

// Point on the hull. Y increases upwards.
type Point struct {
	X, Y int
}

// Robot state.
type Robot struct {
	Verbose bool // If set, enables verbose logging.
	Machine *intcode.Machine

	Position  Point
	Direction Direction
	Panels    map[Point]Colour // Colour of every visited panel.
	Painted   map[Point]bool   // Panels painted at least once.
}

// NewRobot creates a robot at the origin, facing up, on a black hull
// except for the starting panel.
func NewRobot(program []int64, start Colour) (bot *Robot) {
	bot = &Robot{
		Machine: intcode.NewMachine(program),
		Panels:  map[Point]Colour{{}: start},
		Painted: map[Point]bool{},
	}

	return
}

// Colour returns the colour of the panel under the robot.
func (bot *Robot) Colour() Colour {
	return bot.Panels[bot.Position]
}

// Step performs one sense-paint-turn-move cycle.
// done is set once the program halts.
func (bot *Robot) Step() (done bool, err error) {
	bot.Machine.Verbose = bot.Verbose

	outputs, ok, err := bot.Machine.RunUntilOutput(2, int64(bot.Colour()))
	if err != nil {
		return
	}

	if !ok || (len(outputs) != 0 && len(outputs) != 2) {
		err = ErrProtocol
		return
	}

	if len(outputs) == 0 {
		done = true
		return
	}

	colour := BLACK
	if outputs[0] != 0 {
		colour = WHITE
	}
	bot.Panels[bot.Position] = colour
	bot.Painted[bot.Position] = true

	if outputs[1] == 0 {
		bot.Direction = (bot.Direction + 3) % 4
	} else {
		bot.Direction = (bot.Direction + 1) % 4
	}

	delta := _direction_vector[bot.Direction]
	next := Point{bot.Position.X + delta.X, bot.Position.Y + delta.Y}

	if bot.Verbose {
		log.Printf("robot: paint %v %v, move %v to %v", bot.Position, colour, bot.Direction, next)
	}

	bot.Position = next

	return
}

// Run steps the robot until the program halts.
func (bot *Robot) Run() (err error) {
	for done := false; !done; {
		done, err = bot.Step()
		if err != nil {
			return
		}
	}

	return
}

// PaintedCount returns the number of panels painted at least once.
func (bot *Robot) PaintedCount() int {
	return len(bot.Painted)
}

// Render draws the white panels as '#' and the rest as '.', top row first.
func (bot *Robot) Render() string {
	var lo, hi Point
	first := true
	for pos, colour := range bot.Panels {
		if colour != WHITE {
			continue
		}
		if first {
			lo, hi = pos, pos
			first = false
			continue
		}
		lo.X, lo.Y = min(lo.X, pos.X), min(lo.Y, pos.Y)
		hi.X, hi.Y = max(hi.X, pos.X), max(hi.Y, pos.Y)
	}

	if first {
		return ""
	}

	var lines []string
	for y := hi.Y; y >= lo.Y; y-- {
		var sb strings.Builder
		for x := lo.X; x <= hi.X; x++ {
			if bot.Panels[Point{x, y}] == WHITE {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}
