package libdiff

import (
	"github.com/signadot/vconf/variant"
)

// DiffObject diffs the members of two Objects. Members only in from are
// deleted, members only in to inserted, and common members diffed.
func DiffObject(from, to *variant.Variant) *variant.Variant {
	res := variant.FromMap(nil)
	for k, fv := range from.Entries() {
		tv, err := to.Get(k)
		if err != nil {
			res.Set(k, MakeDiff(fv, nil))
			continue
		}
		if d := Diff(fv, tv); d != nil {
			res.Set(k, d)
		}
	}
	for k, tv := range to.Entries() {
		if !from.Has(k) {
			res.Set(k, MakeDiff(nil, tv))
		}
	}
	if res.Len() == 0 {
		return nil
	}
	return op(ObjectOp, res)
}
