package libdiff

import (
	"github.com/signadot/vconf/variant"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString diffs two Strings rune by rune. The result lists operations as
// DiffArray does: an integer n keeps n runes, and deletes and inserts carry
// the text removed or added. When more than half of the shorter string
// changes, the result is a plain replacement.
func DiffString(from, to *variant.Variant) *variant.Variant {
	fs, _ := from.Str()
	ts, _ := to.Str()
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(fs, ts, false)
	ops := []*variant.Variant{}
	diffSize := 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			if i < len(diffs)-1 {
				ops = append(ops, variant.FromInt(int64(n)))
			}
		case diffpatch.DiffDelete:
			ops = append(ops, op(DeleteOp, variant.FromString(diff.Text)))
			diffSize += n
		case diffpatch.DiffInsert:
			ops = append(ops, op(InsertOp, variant.FromString(diff.Text)))
			diffSize += n
		}
	}
	if diffSize == 0 {
		return nil
	}
	if diffSize > min(len([]rune(fs)), len([]rune(ts)))/2 {
		return MakeDiff(from, to)
	}
	return op(StringOp, variant.FromSlice(ops))
}
