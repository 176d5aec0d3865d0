package token

import (
	"fmt"
	"io"
	"strconv"
)

// number lexes [-]?(0|[1-9][0-9]*)([.][0-9]*)?([eE][+-]?[0-9]+)? and
// classifies it: a literal that parses entirely as an int64 is TInteger,
// one that parses as a uint64 is TUnsigned, anything else is TFloat.
func (l *Lexer) number(start Pos) (*Token, error) {
	d := l.buf[:0]
	c, err := l.read()
	if err != nil {
		return nil, err
	}
	if c == '-' {
		d = append(d, c)
		c, err = l.read()
		if err == io.EOF {
			return nil, NewTokenizeErr(fmt.Errorf("%w: lone '-'", ErrNumber), start)
		}
		if err != nil {
			return nil, err
		}
	}
	switch {
	case c == '0':
		d = append(d, c)
		n, err := l.peek()
		if err != nil && err != io.EOF {
			return nil, err
		}
		if err == nil && asciiDigit(n) {
			return nil, NewTokenizeErr(ErrNumberLeadingZero, start)
		}
	case asciiDigit(c):
		d = append(d, c)
		if d, err = l.digits(d); err != nil {
			return nil, err
		}
	default:
		return nil, NewTokenizeErr(fmt.Errorf("%w: expected digit after '-'", ErrNumber), start)
	}

	if d, err = l.fract(d); err != nil {
		return nil, err
	}
	if d, err = l.exp(d, start); err != nil {
		return nil, err
	}
	l.buf = d
	return classify(append([]byte(nil), d...), start)
}

func classify(d []byte, start Pos) (*Token, error) {
	s := string(d)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &Token{Type: TInteger, Pos: start, Bytes: d, Int64: i}, nil
	}
	if d[0] != '-' {
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return &Token{Type: TUnsigned, Pos: start, Bytes: d, Uint64: u}, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, NewTokenizeErr(fmt.Errorf("%w %q: %w", ErrNumber, s, err), start)
	}
	return &Token{Type: TFloat, Pos: start, Bytes: d, Float64: f}, nil
}

func (l *Lexer) digits(d []byte) ([]byte, error) {
	for {
		c, err := l.read()
		if err == io.EOF {
			return d, nil
		}
		if err != nil {
			return nil, err
		}
		if !asciiDigit(c) {
			l.unread()
			return d, nil
		}
		d = append(d, c)
	}
}

func (l *Lexer) fract(d []byte) ([]byte, error) {
	c, err := l.peek()
	if err == io.EOF {
		return d, nil
	}
	if err != nil {
		return nil, err
	}
	if c != '.' {
		return d, nil
	}
	l.read()
	return l.digits(append(d, '.'))
}

func (l *Lexer) exp(d []byte, start Pos) ([]byte, error) {
	c, err := l.peek()
	if err == io.EOF {
		return d, nil
	}
	if err != nil {
		return nil, err
	}
	if c != 'e' && c != 'E' {
		return d, nil
	}
	l.read()
	d = append(d, c)
	c, err = l.read()
	if err == io.EOF {
		return nil, NewTokenizeErr(fmt.Errorf("%w: empty exponent", ErrNumber), start)
	}
	if err != nil {
		return nil, err
	}
	if c == '+' || c == '-' {
		d = append(d, c)
		c, err = l.read()
		if err == io.EOF {
			return nil, NewTokenizeErr(fmt.Errorf("%w: empty exponent", ErrNumber), start)
		}
		if err != nil {
			return nil, err
		}
	}
	if !asciiDigit(c) {
		return nil, NewTokenizeErr(fmt.Errorf("%w: empty exponent", ErrNumber), start)
	}
	return l.digits(append(d, c))
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
