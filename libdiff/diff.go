package libdiff

import (
	"errors"

	"github.com/signadot/vconf/variant"
)

var (
	ErrDiff  = errors.New("invalid diff")
	ErrPatch = errors.New("cannot patch")
)

// Diff returns the diff from from to to, or nil if they are equal.
//
// Objects diff member by member, arrays element by element after aligning
// equal-looking elements, and strings rune by rune. Any other change, and
// any change of type, is a replacement.
func Diff(from, to *variant.Variant) *variant.Variant {
	if variant.Equal(from, to) {
		return nil
	}
	if from.IsUndefined() || to.IsUndefined() || from.Type() != to.Type() {
		return MakeDiff(from, to)
	}
	switch from.Type() {
	case variant.ObjectType:
		return DiffObject(from, to)
	case variant.ArrayType:
		return DiffArray(from, to)
	case variant.StringType:
		return DiffString(from, to)
	}
	return MakeDiff(from, to)
}
