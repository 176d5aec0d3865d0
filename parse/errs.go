package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/vconf/token"
)

var (
	ErrGrammar      = errors.New("grammar error")
	ErrDepth        = fmt.Errorf("%w: nesting too deep", ErrGrammar)
	ErrRange        = errors.New("number out of range")
	ErrInclude      = errors.New("include error")
	ErrIncludeDepth = fmt.Errorf("%w: include depth exceeded", ErrInclude)
)

// ParseErr is a grammar or include error at a position in the input.
type ParseErr struct {
	Err error
	Pos token.Pos
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func grammarErr(p token.Pos, msg string, args ...any) error {
	return &ParseErr{
		Err: fmt.Errorf("%w: %s", ErrGrammar, fmt.Sprintf(msg, args...)),
		Pos: p,
	}
}

// trailingErr reports input after a complete document. Input that does
// not even lex is still a grammar error, with the lexical cause kept in the
// chain.
func trailingErr(err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return err
	}
	return &ParseErr{
		Err: fmt.Errorf("%w: trailing input after document: %w", ErrGrammar, te.Err),
		Pos: te.Pos,
	}
}

func rangeErr(p token.Pos, lit []byte, want string) error {
	return &ParseErr{Err: fmt.Errorf("%w: %s does not fit %s", ErrRange, lit, want), Pos: p}
}
