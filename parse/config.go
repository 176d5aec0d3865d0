package parse

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/signadot/vconf/debug"
	"github.com/signadot/vconf/token"
	"github.com/signadot/vconf/variant"
)

// ParseConfig parses a document in the config dialect: JSON extended with
// bare identifier keys, '=' as a separator, optional commas, '#', '//'
// and '/* */' comments, and @include directives.
//
// A document is either a braced object or a bare sequence of members; the
// result is always an Object. Relative include paths are resolved against
// IncludeBase, or the working directory when it is not set.
func ParseConfig(r io.Reader, opts ...ParseOption) (*variant.Variant, error) {
	a := &assembler{opts: newParseOpts(opts)}
	res := variant.FromMap(nil)
	if err := a.document(r, "", 0, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ParseConfigFile parses the config file name. Relative include paths
// are resolved against IncludeBase, or the directory of the including file
// when it is not set.
func ParseConfigFile(name string, opts ...ParseOption) (*variant.Variant, error) {
	a := &assembler{opts: newParseOpts(opts)}
	res := variant.FromMap(nil)
	if err := a.file(name, 0, res); err != nil {
		return nil, err
	}
	return res, nil
}

// assembler holds the options shared by a document and everything it
// includes.
type assembler struct {
	opts *parseOpts
}

func (a *assembler) open(name string) (io.ReadCloser, error) {
	if a.opts.includeFS != nil {
		name = path.Clean(filepath.ToSlash(name))
		name = strings.TrimPrefix(name, "/")
		return a.opts.includeFS.Open(name)
	}
	return os.Open(name)
}

func (a *assembler) file(name string, incDepth int, dst *variant.Variant) error {
	f, err := a.open(name)
	if err != nil {
		if incDepth == 0 {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInclude, err)
	}
	defer f.Close()
	if err := a.document(f, name, incDepth, dst); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (a *assembler) document(r io.Reader, name string, incDepth int, dst *variant.Variant) error {
	p := &configParser{
		a:        a,
		lex:      token.NewLexer(r, token.TokenConfig()),
		name:     name,
		incDepth: incDepth,
	}
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Type != token.TLCurl {
		return p.members(dst, token.TEOF)
	}
	p.tok = nil
	if err := p.members(dst, token.TRCurl); err != nil {
		return err
	}
	tok, err = p.next()
	if err != nil {
		return trailingErr(err)
	}
	if tok.Type != token.TEOF {
		return grammarErr(tok.Pos, "trailing %s after document", tok.Type)
	}
	return nil
}

// configParser is a recursive descent parser over one config file.
type configParser struct {
	a        *assembler
	lex      *token.Lexer
	name     string
	incDepth int
	depth    int

	tok *token.Token
}

func (p *configParser) peek() (*token.Token, error) {
	if p.tok != nil {
		return p.tok, nil
	}
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	p.tok = tok
	return tok, nil
}

func (p *configParser) next() (*token.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	p.tok = nil
	return tok, nil
}

func (p *configParser) enter(pos token.Pos) error {
	p.depth++
	if limit := p.a.opts.maxDepth; limit > 0 && p.depth > limit {
		return &ParseErr{Err: ErrDepth, Pos: pos}
	}
	return nil
}

// members parses members into dst up to closer, which is consumed unless
// it is TEOF. A comma may follow each member.
func (p *configParser) members(dst *variant.Variant, closer token.TokenType) error {
	sep := false
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.Type {
		case closer:
			return nil
		case token.TComma:
			if !sep {
				return grammarErr(tok.Pos, "unexpected ','")
			}
			sep = false
			continue
		case token.TInclude:
			if err := p.include(tok, dst); err != nil {
				return err
			}
		case token.TName, token.TString:
			colon, err := p.next()
			if err != nil {
				return err
			}
			if colon.Type != token.TColon {
				return grammarErr(colon.Pos, "expected ':' or '=' after %s, got %s", tok, colon.Type)
			}
			val, err := p.value()
			if err != nil {
				return err
			}
			dst.Set(tok.Value(), val)
		case token.TEOF:
			return grammarErr(tok.Pos, "unterminated object")
		default:
			return grammarErr(tok.Pos, "expected member, got %s", tok.Type)
		}
		sep = true
	}
}

func (p *configParser) elements(dst *variant.Variant) error {
	sep := false
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		switch tok.Type {
		case token.TRSquare:
			p.tok = nil
			return nil
		case token.TComma:
			if !sep {
				return grammarErr(tok.Pos, "unexpected ','")
			}
			p.tok = nil
			sep = false
			continue
		case token.TEOF:
			return grammarErr(tok.Pos, "unterminated array")
		}
		val, err := p.value()
		if err != nil {
			return err
		}
		dst.Append(val)
		sep = true
	}
}

func (p *configParser) value() (*variant.Variant, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.TLCurl:
		if err := p.enter(tok.Pos); err != nil {
			return nil, err
		}
		res := variant.FromMap(nil)
		if err := p.members(res, token.TRCurl); err != nil {
			return nil, err
		}
		p.depth--
		return res, nil
	case token.TLSquare:
		if err := p.enter(tok.Pos); err != nil {
			return nil, err
		}
		res := variant.Array()
		if err := p.elements(res); err != nil {
			return nil, err
		}
		p.depth--
		return res, nil
	case token.TInclude:
		res := variant.FromMap(nil)
		if err := p.include(tok, res); err != nil {
			return nil, err
		}
		return res, nil
	case token.TString:
		return variant.FromString(tok.Value()), nil
	case token.TInteger:
		return variant.FromInt(tok.Int64), nil
	case token.TUnsigned:
		return variant.FromUint(tok.Uint64), nil
	case token.TFloat:
		return variant.FromFloat(tok.Float64), nil
	case token.TTrue:
		return variant.FromBool(true), nil
	case token.TFalse:
		return variant.FromBool(false), nil
	case token.TNull:
		return variant.Null(), nil
	case token.TEOF:
		return nil, grammarErr(tok.Pos, "unexpected end of input")
	}
	return nil, grammarErr(tok.Pos, "expected value, got %s", tok)
}

// include parses the file named by an include token into dst.
func (p *configParser) include(tok *token.Token, dst *variant.Variant) error {
	depth := p.incDepth + 1
	if limit := p.a.opts.maxIncludeDepth; limit > 0 && depth > limit {
		return &ParseErr{Err: fmt.Errorf("%w (%d) including %q", ErrIncludeDepth, limit, tok.Value()), Pos: tok.Pos}
	}
	name := p.resolve(tok.Value())
	if debug.Include() {
		debug.Logf("include %s from %q depth %d\n", name, p.name, depth)
	}
	if err := p.a.file(name, depth, dst); err != nil {
		return &ParseErr{Err: err, Pos: tok.Pos}
	}
	return nil
}

func (p *configParser) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if base := p.a.opts.includeBase; base != "" {
		return filepath.Join(base, name)
	}
	if p.name != "" {
		return filepath.Join(filepath.Dir(p.name), name)
	}
	return name
}
