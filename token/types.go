package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TInteger
	TUnsigned
	TFloat
	TTrue
	TFalse
	TNull
	TName
	TInclude
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TEOF:      "TEOF",
		TLCurl:    "TLCurl",
		TRCurl:    "TRCurl",
		TLSquare:  "TLSquare",
		TRSquare:  "TRSquare",
		TColon:    "TColon",
		TComma:    "TComma",
		TString:   "TString",
		TInteger:  "TInteger",
		TUnsigned: "TUnsigned",
		TFloat:    "TFloat",
		TTrue:     "TTrue",
		TFalse:    "TFalse",
		TNull:     "TNull",
		TName:     "TName",
		TInclude:  "TInclude",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

// IsNumber reports whether t is one of the numeric literal types.
func (t TokenType) IsNumber() bool {
	switch t {
	case TInteger, TUnsigned, TFloat:
		return true
	default:
		return false
	}
}

// Token is a lexical token. For TString, TName and TInclude, Bytes holds the
// decoded text; otherwise it holds the literal source text. Numeric tokens
// also carry the parsed value matching their type.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte

	Int64   int64
	Uint64  uint64
	Float64 float64
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TEOF:
		return "EOF"
	case TString, TInclude:
		return strconv.Quote(string(t.Bytes))
	default:
		return string(t.Bytes)
	}
}

// Value returns the decoded text of the token.
func (t *Token) Value() string {
	return string(t.Bytes)
}
