package program

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text    string
		program Program
	}){
		{"99", Program{99}},
		{"1,0,0,0,99\n", Program{1, 0, 0, 0, 99}},
		{" 104, -5 ,\n99 ", Program{104, -5, 99}},
		{"104,1125899906842624,99", Program{104, 1125899906842624, 99}},
		{"1102,$(34915192),$(0x10 * 2),7,4,7,99,0", Program{1102, 34915192, 32, 7, 4, 7, 99, 0}},
		{"$(INDEX),$(INDEX * 10),$(max(1, INDEX, 3))", Program{0, 10, 3}},
		{"$(-(1 << 40))", Program{-(1 << 40)}},
	}

	for _, entry := range table {
		prog, err := Parse(strings.NewReader(entry.text))
		assert.NoError(err, entry.text)
		assert.Equal(entry.program, prog, entry.text)
	}
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse(strings.NewReader(" \n"))
	assert.ErrorIs(err, ErrEmpty)

	_, err = Parse(strings.NewReader("1,,99"))
	assert.ErrorIs(err, ErrToken)
	var syn ErrSyntax
	assert.True(errors.As(err, &syn))
	assert.Equal(1, syn.Index)

	_, err = Parse(strings.NewReader("1,x,99"))
	assert.ErrorIs(err, ErrParseNumber("x"))

	_, err = Parse(strings.NewReader("1,$(\"text\"),99"))
	assert.ErrorIs(err, ErrParseExpression(`"text"`))

	_, err = Parse(strings.NewReader("1,$(1 +,99"))
	assert.ErrorIs(err, ErrParenthesis)

	_, err = Parse(strings.NewReader("1,$(1 + ),99"))
	assert.Error(err)
	assert.ErrorAs(err, &syn)
	assert.Equal(1, syn.Index)

	_, err = Parse(strings.NewReader("99999999999999999999"))
	assert.ErrorIs(err, ErrParseNumber("99999999999999999999"))
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	fs := afero.NewMemMapFs()
	assert.NoError(afero.WriteFile(fs, "day9.txt", []byte("104,1125899906842624,99\n"), 0644))

	prog, err := Load(fs, "day9.txt")
	assert.NoError(err)
	assert.Equal(Program{104, 1125899906842624, 99}, prog)
	assert.Equal("104,1125899906842624,99", prog.String())

	clone := prog.Clone()
	clone[0] = 4
	assert.Equal(int64(104), prog[0])

	_, err = Load(fs, "missing.txt")
	assert.Error(err)
}
