// Package token provides tokenization of JSON and of the extended config
// dialect.
//
// [Lexer] reads a byte stream and produces one [Token] per call to
// [Lexer.Next]. In config mode (see [TokenConfig]) the lexer additionally
// recognizes bare identifiers, '=' as a name/value separator, '#', '//' and
// '/* */' comments and the '@include "path"' directive.
//
// Lexical errors are reported as [*TokenizeErr], which carries the [Pos] of
// the offending input and wraps one of the package's sentinel errors.
//
// # Related Packages
//
//   - github.com/signadot/vconf/parse - Reader and tree builders on top of the lexer
package token
