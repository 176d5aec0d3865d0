package token

import "fmt"

// Pos is a position in a token stream. Line and Col are 1-based, Col counts
// runes.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}
