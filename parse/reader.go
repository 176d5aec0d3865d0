package parse

import (
	"io"
	"math"

	"github.com/signadot/vconf/debug"
	"github.com/signadot/vconf/token"
)

// State is the grammar position of one open level of a document.
type State int

const (
	EmptyDocument State = iota
	NonEmptyDocument
	EmptyObject
	NonEmptyObject
	DanglingName
	EmptyArray
	NonEmptyArray
)

func (s State) String() string {
	switch s {
	case EmptyDocument:
		return "EmptyDocument"
	case NonEmptyDocument:
		return "NonEmptyDocument"
	case EmptyObject:
		return "EmptyObject"
	case NonEmptyObject:
		return "NonEmptyObject"
	case DanglingName:
		return "DanglingName"
	case EmptyArray:
		return "EmptyArray"
	case NonEmptyArray:
		return "NonEmptyArray"
	}
	return "<unknown state>"
}

// Kind is the kind of the next logical token of a Reader.
type Kind int

const (
	BeginObject Kind = iota
	EndObject
	BeginArray
	EndArray
	Name
	String
	SignedInteger
	UnsignedInteger
	Float
	Boolean
	Null
	EndDocument
)

func (k Kind) String() string {
	switch k {
	case BeginObject:
		return "BeginObject"
	case EndObject:
		return "EndObject"
	case BeginArray:
		return "BeginArray"
	case EndArray:
		return "EndArray"
	case Name:
		return "Name"
	case String:
		return "String"
	case SignedInteger:
		return "SignedInteger"
	case UnsignedInteger:
		return "UnsignedInteger"
	case Float:
		return "Float"
	case Boolean:
		return "Boolean"
	case Null:
		return "Null"
	case EndDocument:
		return "EndDocument"
	}
	return "<unknown kind>"
}

// Reader is a pull parser for strict JSON documents.
//
// It validates the grammar with an explicit stack of States and never
// recurses, whatever the nesting of the input. A document must be an object
// or an array followed by the end of input. Errors are sticky: once a call
// fails, every later call returns the same error.
type Reader struct {
	lex  *token.Lexer
	opts *parseOpts

	stack []State

	peeked bool
	kind   Kind
	tok    *token.Token

	err error
}

func NewReader(r io.Reader, opts ...ParseOption) *Reader {
	return &Reader{
		lex:   token.NewLexer(r, token.TokenJSON()),
		opts:  newParseOpts(opts),
		stack: []State{EmptyDocument},
	}
}

// Depth returns the number of open objects and arrays.
func (r *Reader) Depth() int {
	return len(r.stack) - 1
}

// Pos returns the position of the most recently peeked token, or of the
// next unread byte when nothing has been peeked yet.
func (r *Reader) Pos() token.Pos {
	if r.tok != nil {
		return r.tok.Pos
	}
	return r.lex.Pos()
}

// Peek returns the kind of the next logical token without consuming it.
// Repeated calls return the same kind until a Begin, End or Next method
// consumes it.
func (r *Reader) Peek() (Kind, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.peeked {
		return r.kind, nil
	}
	k, err := r.doPeek()
	if err != nil {
		r.err = err
		return 0, err
	}
	r.kind = k
	r.peeked = true
	if debug.Read() {
		debug.Logf("read %s at depth %d %s\n", k, r.Depth(), r.tok.Pos)
	}
	return k, nil
}

func (r *Reader) next() (*token.Token, error) {
	tok, err := r.lex.Next()
	if err != nil {
		return nil, err
	}
	r.tok = tok
	return tok, nil
}

func (r *Reader) top() State {
	return r.stack[len(r.stack)-1]
}

func (r *Reader) setTop(s State) {
	r.stack[len(r.stack)-1] = s
}

func (r *Reader) doPeek() (Kind, error) {
	peekState := r.top()
	switch peekState {
	case EmptyArray:
		r.setTop(NonEmptyArray)
	case NonEmptyArray:
		tok, err := r.next()
		if err != nil {
			return 0, err
		}
		switch tok.Type {
		case token.TRSquare:
			return EndArray, nil
		case token.TComma:
		case token.TEOF:
			return 0, grammarErr(tok.Pos, "unterminated array")
		default:
			return 0, grammarErr(tok.Pos, "expected ',' or ']', got %s", tok.Type)
		}
	case EmptyObject, NonEmptyObject:
		r.setTop(DanglingName)
		if peekState == NonEmptyObject {
			tok, err := r.next()
			if err != nil {
				return 0, err
			}
			switch tok.Type {
			case token.TRCurl:
				return EndObject, nil
			case token.TComma:
			case token.TEOF:
				return 0, grammarErr(tok.Pos, "unterminated object")
			default:
				return 0, grammarErr(tok.Pos, "expected ',' or '}', got %s", tok.Type)
			}
		}
		tok, err := r.next()
		if err != nil {
			return 0, err
		}
		switch tok.Type {
		case token.TString:
			return Name, nil
		case token.TRCurl:
			if peekState == EmptyObject {
				return EndObject, nil
			}
			return 0, grammarErr(tok.Pos, "trailing comma in object")
		case token.TEOF:
			return 0, grammarErr(tok.Pos, "unterminated object")
		default:
			return 0, grammarErr(tok.Pos, "expected name, got %s", tok.Type)
		}
	case DanglingName:
		r.setTop(NonEmptyObject)
		tok, err := r.next()
		if err != nil {
			return 0, err
		}
		if tok.Type != token.TColon {
			return 0, grammarErr(tok.Pos, "expected ':', got %s", tok.Type)
		}
	case EmptyDocument:
		r.setTop(NonEmptyDocument)
	case NonEmptyDocument:
		tok, err := r.next()
		if err != nil {
			return 0, trailingErr(err)
		}
		if tok.Type != token.TEOF {
			return 0, grammarErr(tok.Pos, "trailing %s after document", tok.Type)
		}
		return EndDocument, nil
	}

	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	if peekState == EmptyDocument {
		switch tok.Type {
		case token.TLCurl, token.TLSquare:
		case token.TEOF:
			return 0, grammarErr(tok.Pos, "empty document")
		default:
			return 0, grammarErr(tok.Pos, "document must begin with '{' or '[', got %s", tok.Type)
		}
	}
	switch tok.Type {
	case token.TLCurl:
		return BeginObject, nil
	case token.TLSquare:
		return BeginArray, nil
	case token.TRSquare:
		if peekState == EmptyArray {
			return EndArray, nil
		}
		if peekState == NonEmptyArray {
			return 0, grammarErr(tok.Pos, "trailing comma in array")
		}
	case token.TString:
		return String, nil
	case token.TInteger:
		return SignedInteger, nil
	case token.TUnsigned:
		return UnsignedInteger, nil
	case token.TFloat:
		return Float, nil
	case token.TTrue, token.TFalse:
		return Boolean, nil
	case token.TNull:
		return Null, nil
	case token.TEOF:
		return 0, grammarErr(tok.Pos, "unexpected end of input")
	}
	return 0, grammarErr(tok.Pos, "expected value, got %s", tok.Type)
}

// expect peeks and consumes the next token if it has kind want.
func (r *Reader) expect(want Kind) (*token.Token, error) {
	k, err := r.Peek()
	if err != nil {
		return nil, err
	}
	if k != want {
		return nil, r.fail(grammarErr(r.tok.Pos, "expected %s but was %s", want, k))
	}
	r.peeked = false
	return r.tok, nil
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

func (r *Reader) push(s State) error {
	if r.opts.maxDepth > 0 && r.Depth() >= r.opts.maxDepth {
		return r.fail(&ParseErr{Err: ErrDepth, Pos: r.tok.Pos})
	}
	r.stack = append(r.stack, s)
	return nil
}

func (r *Reader) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Reader) BeginObject() error {
	if _, err := r.expect(BeginObject); err != nil {
		return err
	}
	return r.push(EmptyObject)
}

func (r *Reader) EndObject() error {
	if _, err := r.expect(EndObject); err != nil {
		return err
	}
	r.pop()
	return nil
}

func (r *Reader) BeginArray() error {
	if _, err := r.expect(BeginArray); err != nil {
		return err
	}
	return r.push(EmptyArray)
}

func (r *Reader) EndArray() error {
	if _, err := r.expect(EndArray); err != nil {
		return err
	}
	r.pop()
	return nil
}

// HasNext reports whether the current object or array has another member.
func (r *Reader) HasNext() (bool, error) {
	k, err := r.Peek()
	if err != nil {
		return false, err
	}
	return k != EndObject && k != EndArray && k != EndDocument, nil
}

// NextName consumes an object member name. It fails unless a name is
// pending.
func (r *Reader) NextName() (string, error) {
	tok, err := r.expect(Name)
	if err != nil {
		return "", err
	}
	return tok.Value(), nil
}

// NextString consumes a string, or a number as its literal text.
func (r *Reader) NextString() (string, error) {
	k, err := r.Peek()
	if err != nil {
		return "", err
	}
	switch k {
	case String, SignedInteger, UnsignedInteger, Float:
		r.peeked = false
		return r.tok.Value(), nil
	}
	return "", r.fail(grammarErr(r.tok.Pos, "expected String but was %s", k))
}

// NextInt consumes an integer. Floats with an integral value in range are
// accepted.
func (r *Reader) NextInt() (int64, error) {
	k, err := r.Peek()
	if err != nil {
		return 0, err
	}
	tok := r.tok
	switch k {
	case SignedInteger:
		r.peeked = false
		return tok.Int64, nil
	case UnsignedInteger:
		return 0, r.fail(rangeErr(tok.Pos, tok.Bytes, "int64"))
	case Float:
		f := tok.Float64
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, r.fail(rangeErr(tok.Pos, tok.Bytes, "int64"))
		}
		r.peeked = false
		return int64(f), nil
	}
	return 0, r.fail(grammarErr(tok.Pos, "expected SignedInteger but was %s", k))
}

// NextUint consumes a non-negative integer. Floats with an integral value in
// range are accepted.
func (r *Reader) NextUint() (uint64, error) {
	k, err := r.Peek()
	if err != nil {
		return 0, err
	}
	tok := r.tok
	switch k {
	case UnsignedInteger:
		r.peeked = false
		return tok.Uint64, nil
	case SignedInteger:
		if tok.Int64 < 0 {
			return 0, r.fail(rangeErr(tok.Pos, tok.Bytes, "uint64"))
		}
		r.peeked = false
		return uint64(tok.Int64), nil
	case Float:
		f := tok.Float64
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return 0, r.fail(rangeErr(tok.Pos, tok.Bytes, "uint64"))
		}
		r.peeked = false
		return uint64(f), nil
	}
	return 0, r.fail(grammarErr(tok.Pos, "expected UnsignedInteger but was %s", k))
}

// NextDouble consumes any number as a float64.
func (r *Reader) NextDouble() (float64, error) {
	k, err := r.Peek()
	if err != nil {
		return 0, err
	}
	tok := r.tok
	switch k {
	case Float:
		r.peeked = false
		return tok.Float64, nil
	case SignedInteger:
		r.peeked = false
		return float64(tok.Int64), nil
	case UnsignedInteger:
		r.peeked = false
		return float64(tok.Uint64), nil
	}
	return 0, r.fail(grammarErr(tok.Pos, "expected Float but was %s", k))
}

func (r *Reader) NextBoolean() (bool, error) {
	tok, err := r.expect(Boolean)
	if err != nil {
		return false, err
	}
	return tok.Type == token.TTrue, nil
}

func (r *Reader) NextNull() error {
	_, err := r.expect(Null)
	return err
}

// SkipValue consumes the next value without building it. If a member name
// is pending, the name and its value are skipped.
func (r *Reader) SkipValue() error {
	depth := 0
	for {
		k, err := r.Peek()
		if err != nil {
			return err
		}
		switch k {
		case BeginObject:
			err = r.BeginObject()
			depth++
		case BeginArray:
			err = r.BeginArray()
			depth++
		case EndObject, EndArray:
			if depth == 0 {
				return r.fail(grammarErr(r.tok.Pos, "no value to skip before %s", k))
			}
			if k == EndObject {
				err = r.EndObject()
			} else {
				err = r.EndArray()
			}
			depth--
		case Name:
			r.peeked = false
			continue
		case EndDocument:
			return r.fail(grammarErr(r.tok.Pos, "no value to skip at end of document"))
		default:
			r.peeked = false
		}
		if err != nil {
			return err
		}
		if depth == 0 {
			return nil
		}
	}
}
