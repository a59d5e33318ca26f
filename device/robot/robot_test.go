package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scripted returns a program that, for each pair of values, reads the panel
// colour and then outputs the pair.
func scripted(pairs ...int64) (program []int64) {
	count := int64(len(pairs) / 2)
	program = []int64{
		1101, count, 0, 101, // [101] = count
		109, 23, // base = script
		3, 100, // read panel colour
		204, 0, // output colour
		204, 1, // output turn
		109, 2, // next pair
		1001, 101, -1, 101, // [101]--
		1005, 101, 6, // loop while [101] != 0
		99,
		0,
	}
	program = append(program, pairs...)
	return
}

func TestRobot_Paint(t *testing.T) {
	assert := assert.New(t)

	bot := NewRobot(scripted(1, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 0), BLACK)
	assert.Equal(BLACK, bot.Colour())

	assert.NoError(bot.Run())
	assert.True(bot.Machine.Halted)
	assert.Equal(6, bot.PaintedCount())
	assert.Equal(Point{0, 1}, bot.Position)
	assert.Equal(LEFT, bot.Direction)

	assert.Equal("..#\n..#\n##.", bot.Render())
}

func TestRobot_Inputs(t *testing.T) {
	assert := assert.New(t)

	// Start on white, paint black, turn right, then come back around.
	bot := NewRobot(scripted(0, 1, 1, 1, 1, 1, 1, 1, 1, 1), WHITE)

	done, err := bot.Step()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(BLACK, bot.Panels[Point{}])
	assert.Equal(RIGHT, bot.Direction)
	assert.Equal(Point{1, 0}, bot.Position)

	// The program was given the colour of the starting panel.
	assert.Equal(int64(WHITE), bot.Machine.Tape.Read(100))

	// A clockwise square, ending one panel right of the start.
	assert.NoError(bot.Run())
	assert.Equal(4, bot.PaintedCount())
	assert.Equal(Point{1, 0}, bot.Position)
	assert.Equal(RIGHT, bot.Direction)
	assert.Equal(WHITE, bot.Panels[Point{}])
	assert.Equal("##\n##", bot.Render())
}

func TestRobot_Protocol(t *testing.T) {
	assert := assert.New(t)

	// Outputs only a colour, then waits for more input.
	bot := NewRobot([]int64{3, 100, 104, 1, 3, 100, 99}, BLACK)
	_, err := bot.Step()
	assert.ErrorIs(err, ErrProtocol)

	// Outputs a colour, then halts.
	bot = NewRobot([]int64{3, 100, 104, 1, 99}, BLACK)
	_, err = bot.Step()
	assert.ErrorIs(err, ErrProtocol)

	bot = NewRobot([]int64{99}, BLACK)
	done, err := bot.Step()
	assert.NoError(err)
	assert.True(done)
	assert.Equal("", bot.Render())
}
