// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program loads IntCode programs.
//
// The text form of a program is a comma separated list of signed decimal
// integers. Any value may instead be written as a compile-time expression,
// $(...), which is evaluated when the program is parsed. Expressions may
// refer to INDEX, the position of the value being defined.
package program

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Program is the initial tape contents of an IntCode machine.
type Program []int64

// Clone returns a copy of the program.
func (prog Program) Clone() Program {
	return append(Program(nil), prog...)
}

// String returns the text form of the program.
func (prog Program) String() string {
	words := make([]string, len(prog))
	for n, value := range prog {
		words[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(words, ",")
}

// Load reads and parses a program file.
func Load(fs afero.Fs, name string) (prog Program, err error) {
	file, err := fs.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	return Parse(file)
}

// Parse parses the text form of a program.
func Parse(r io.Reader) (prog Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		err = ErrEmpty
		return
	}

	tokens, err := split(text)
	if err != nil {
		return
	}

	prog = make(Program, 0, len(tokens))
	for index, token := range tokens {
		var value int64
		value, err = parseValue(token, index)
		if err != nil {
			err = ErrSyntax{Index: index, Token: token, Err: err}
			prog = nil
			return
		}
		prog = append(prog, value)
	}

	return
}

// split breaks the text at commas outside of parenthesis.
func split(text string) (tokens []string, err error) {
	depth := 0
	start := 0
	for n, ch := range text {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				err = ErrParenthesis
				return
			}
		case ',':
			if depth == 0 {
				tokens = append(tokens, strings.TrimSpace(text[start:n]))
				start = n + 1
			}
		}
	}
	if depth != 0 {
		err = ErrParenthesis
		return
	}
	tokens = append(tokens, strings.TrimSpace(text[start:]))

	return
}

// parseValue converts a single token.
func parseValue(token string, index int) (value int64, err error) {
	if len(token) == 0 {
		err = ErrToken
		return
	}

	if strings.HasPrefix(token, "$(") && strings.HasSuffix(token, ")") {
		return parenEval(token[2:len(token)-1], index)
	}

	value, err = strconv.ParseInt(token, 10, 64)
	if err != nil {
		err = ErrParseNumber(token)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func parenEval(expr string, index int) (value int64, err error) {
	thread := starlark.Thread{Name: "program"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"INDEX": starlark.MakeInt(index),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}
