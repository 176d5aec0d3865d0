package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// quoted reads the rest of a string literal opened by quote q and returns
// its decoded bytes.
func (l *Lexer) quoted(q byte, start Pos) ([]byte, error) {
	d := l.buf[:0]
	defer func() { l.buf = d[:0] }()
	for {
		c, err := l.read()
		if err == io.EOF {
			return nil, NewTokenizeErr(fmt.Errorf("%w string", ErrUnterminated), start)
		}
		if err != nil {
			return nil, err
		}
		switch c {
		case q:
			return append([]byte(nil), d...), nil
		case '\\':
			escPos := l.prev
			d, err = l.escape(d, escPos)
			if err != nil {
				return nil, err
			}
		default:
			d = append(d, c)
		}
	}
}

func (l *Lexer) escape(d []byte, escPos Pos) ([]byte, error) {
	c, err := l.read()
	if err == io.EOF {
		return nil, NewTokenizeErr(fmt.Errorf("%w escape", ErrUnterminated), escPos)
	}
	if err != nil {
		return nil, err
	}
	switch c {
	case '"', '\'', '/', '\\':
		return append(d, c), nil
	case 'b':
		return append(d, '\b'), nil
	case 'f':
		return append(d, '\f'), nil
	case 'n':
		return append(d, '\n'), nil
	case 'r':
		return append(d, '\r'), nil
	case 't':
		return append(d, '\t'), nil
	case 'u':
		var r rune
		for range 4 {
			h, err := l.read()
			if err == io.EOF {
				return nil, NewTokenizeErr(fmt.Errorf("%w escape", ErrUnterminated), escPos)
			}
			if err != nil {
				return nil, err
			}
			v, ok := hexVal(h)
			if !ok {
				return nil, NewTokenizeErr(fmt.Errorf("%w: \\u needs 4 hex digits", ErrBadUnicode), escPos)
			}
			r = r<<4 | rune(v)
		}
		return AppendCodePoint(d, r), nil
	}
	return nil, NewTokenizeErr(fmt.Errorf("%w \\%c", ErrBadEscape, c), escPos)
}

// AppendCodePoint appends the UTF-8 form of r to d. Surrogate halves, which
// utf8.AppendRune would replace with U+FFFD, are written in their raw 3-byte
// form; pairs are not combined.
func AppendCodePoint(d []byte, r rune) []byte {
	if r >= 0xD800 && r <= 0xDFFF {
		return append(d,
			byte(0xE0|r>>12),
			byte(0x80|(r>>6)&0x3F),
			byte(0x80|r&0x3F))
	}
	return utf8.AppendRune(d, r)
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

const hexDigits = "0123456789ABCDEF"

// Quote returns v as a double quoted JSON string. '/' is escaped as "\/"
// and control bytes below 0x20 without a short escape are written as
// \u00XX. All other bytes, including invalid UTF-8, are copied verbatim.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '/':
			d = append(d, '\\', '/')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if c < 0x20 {
				d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
				continue
			}
			d = append(d, c)
		}
	}
	return append(d, '"')
}
