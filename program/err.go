package program

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrEmpty       = errors.New(f("empty program"))
	ErrToken       = errors.New(f("empty value"))
	ErrParenthesis = errors.New(f("unbalanced parenthesis"))
)

// ErrParseNumber is a token that is not a signed decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is a $(...) token that did not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax indicates the location of a parse error.
type ErrSyntax struct {
	Index int    // Zero based index of the value in the program.
	Token string // Source text of the value.
	Err   error
}

func (err ErrSyntax) Error() string {
	return f("value %d '%v' %v", err.Index, err.Token, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
