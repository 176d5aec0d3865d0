package token

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/vconf/format"
)

// Lexer produces tokens from a byte stream.
//
// The lexer reads its input one byte at a time through a bufio.Reader and
// never looks back more than one byte. It is not safe for concurrent use.
type Lexer struct {
	r   *bufio.Reader
	opt *tokenOpts

	pos  Pos
	prev Pos
	eof  bool

	buf []byte
}

func NewLexer(r io.Reader, opts ...TokenOpt) *Lexer {
	opt := &tokenOpts{format: format.JSONFormat}
	for _, o := range opts {
		o(opt)
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Lexer{
		r:   br,
		opt: opt,
		pos: Pos{Line: 1, Col: 1},
	}
}

// Format returns the dialect the lexer was configured with.
func (l *Lexer) Format() format.Format {
	return l.opt.format
}

// Pos returns the position of the next unread byte.
func (l *Lexer) Pos() Pos {
	return l.pos
}

func (l *Lexer) config() bool {
	return l.opt.format == format.ConfigFormat
}

// Next returns the next token. At the end of input it returns a token of
// type TEOF; calling Next again keeps returning TEOF.
func (l *Lexer) Next() (*Token, error) {
	if err := l.skipSpace(); err != nil {
		return nil, err
	}
	start := l.pos
	c, err := l.read()
	if err == io.EOF {
		return &Token{Type: TEOF, Pos: start}, nil
	}
	if err != nil {
		return nil, err
	}
	switch c {
	case '{':
		return punct(TLCurl, c, start), nil
	case '}':
		return punct(TRCurl, c, start), nil
	case '[':
		return punct(TLSquare, c, start), nil
	case ']':
		return punct(TRSquare, c, start), nil
	case ':':
		return punct(TColon, c, start), nil
	case ',':
		return punct(TComma, c, start), nil
	case '=':
		if !l.config() {
			return nil, UnexpectedErr("'='", start)
		}
		return punct(TColon, c, start), nil
	case '"', '\'':
		d, err := l.quoted(c, start)
		if err != nil {
			return nil, err
		}
		return &Token{Type: TString, Pos: start, Bytes: d}, nil
	case '@':
		if !l.config() {
			return nil, UnexpectedErr("'@'", start)
		}
		return l.include(start)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		l.unread()
		return l.number(start)
	}
	if identStart(c) {
		l.unread()
		return l.word(start)
	}
	if c >= 0x80 {
		return nil, NewTokenizeErr(fmt.Errorf("%w: non-ascii byte 0x%02X", ErrUnexpected, c), start)
	}
	return nil, UnexpectedErr(fmt.Sprintf("%q", rune(c)), start)
}

func punct(t TokenType, c byte, p Pos) *Token {
	return &Token{Type: t, Pos: p, Bytes: []byte{c}}
}

func (l *Lexer) read() (byte, error) {
	if l.eof {
		return 0, io.EOF
	}
	c, err := l.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.eof = true
			return 0, io.EOF
		}
		return 0, NewTokenizeErr(err, l.pos)
	}
	l.prev = l.pos
	l.pos.Offset++
	switch {
	case c == '\n':
		l.pos.Line++
		l.pos.Col = 1
	case c&0xC0 != 0x80:
		// utf8 continuation bytes share the column of their leading byte
		l.pos.Col++
	}
	return c, nil
}

// unread backs up one byte; it is only valid directly after a successful read.
func (l *Lexer) unread() {
	if err := l.r.UnreadByte(); err != nil {
		panic(fmt.Sprintf("token: unread: %v", err))
	}
	l.pos = l.prev
}

// peek returns the next byte without consuming it, or io.EOF.
func (l *Lexer) peek() (byte, error) {
	c, err := l.read()
	if err != nil {
		return 0, err
	}
	l.unread()
	return c, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func (l *Lexer) skipSpace() error {
	for {
		c, err := l.read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if isSpace(c) {
			continue
		}
		if !l.config() {
			l.unread()
			return nil
		}
		switch c {
		case '#':
			if err := l.skipLine(); err != nil {
				return err
			}
			continue
		case '/':
			start := l.prev
			n, err := l.read()
			if err == io.EOF {
				return UnexpectedErr("'/'", start)
			}
			if err != nil {
				return err
			}
			switch n {
			case '/':
				if err := l.skipLine(); err != nil {
					return err
				}
				continue
			case '*':
				if err := l.skipBlock(start); err != nil {
					return err
				}
				continue
			}
			return UnexpectedErr("'/'", start)
		}
		l.unread()
		return nil
	}
}

func (l *Lexer) skipLine() error {
	for {
		c, err := l.read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

func (l *Lexer) skipBlock(start Pos) error {
	star := false
	for {
		c, err := l.read()
		if err == io.EOF {
			return NewTokenizeErr(fmt.Errorf("%w block comment", ErrUnterminated), start)
		}
		if err != nil {
			return err
		}
		if star && c == '/' {
			return nil
		}
		star = c == '*'
	}
}

func identStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || (c >= '0' && c <= '9')
}

func (l *Lexer) readWord() ([]byte, error) {
	d := l.buf[:0]
	for {
		c, err := l.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !identPart(c) {
			l.unread()
			break
		}
		d = append(d, c)
	}
	l.buf = d
	return append([]byte(nil), d...), nil
}

func (l *Lexer) word(start Pos) (*Token, error) {
	d, err := l.readWord()
	if err != nil {
		return nil, err
	}
	if t, ok := keyword(d); ok {
		return &Token{Type: t, Pos: start, Bytes: d}, nil
	}
	if !l.config() {
		return nil, NewTokenizeErr(fmt.Errorf("%w %q", ErrLiteral, d), start)
	}
	return &Token{Type: TName, Pos: start, Bytes: d}, nil
}

func keyword(d []byte) (TokenType, bool) {
	switch string(d) {
	case "true", "TRUE":
		return TTrue, true
	case "false", "FALSE":
		return TFalse, true
	case "null", "NULL":
		return TNull, true
	}
	return 0, false
}

func (l *Lexer) include(start Pos) (*Token, error) {
	d, err := l.readWord()
	if err != nil {
		return nil, err
	}
	if string(d) != "include" {
		return nil, NewTokenizeErr(fmt.Errorf("%w: unknown directive @%s", ErrInclude, d), start)
	}
	for {
		c, err := l.read()
		if err == io.EOF {
			return nil, NewTokenizeErr(fmt.Errorf("%w: %w include path", ErrInclude, ErrUnterminated), start)
		}
		if err != nil {
			return nil, err
		}
		if c == ' ' || c == '\t' {
			continue
		}
		if c != '"' && c != '\'' {
			return nil, NewTokenizeErr(fmt.Errorf("%w: expected quoted path", ErrInclude), l.prev)
		}
		path, err := l.quoted(c, l.prev)
		if err != nil {
			return nil, err
		}
		return &Token{Type: TInclude, Pos: start, Bytes: path}, nil
	}
}
