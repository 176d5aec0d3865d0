package libdiff

import (
	"github.com/signadot/vconf/variant"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray aligns the elements of two Arrays and records the edit script
// as a list of operations: an integer n keeps the next n elements, a delete
// consumes one element, an insert adds one and any other diff patches one
// element in place. Elements after the last operation are kept. Undefined
// elements are diffed like any other value.
//
// Alignment diffs element summaries (type and scalar value) with
// diffmatchpatch, so containers of the same type always align and are
// diffed recursively.
func DiffArray(from, to *variant.Variant) *variant.Variant {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	ops := &editScript{lastDelete: -1}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				fv, _ := from.At(fi)
				ops.add(op(DeleteOp, fv.Clone()))
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				fv, _ := from.At(fi)
				tv, _ := to.At(ti)
				if d := Diff(fv, tv); d != nil {
					ops.add(d)
				} else {
					ops.keep(1)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				tv, _ := to.At(ti)
				ops.insert(tv)
				ti++
			}
		}
	}
	if !ops.changed {
		return nil
	}
	return op(ArrayOp, ops.done())
}

// editScript accumulates array and string operations, folding runs of kept
// items into counts.
type editScript struct {
	ops     []*variant.Variant
	kept    int
	changed bool
	// index in ops of a delete that an insert may turn into a replace
	lastDelete int
}

func (e *editScript) flush() {
	if e.kept > 0 {
		e.ops = append(e.ops, variant.FromInt(int64(e.kept)))
		e.kept = 0
	}
}

func (e *editScript) keep(n int) {
	e.kept += n
	e.lastDelete = -1
}

func (e *editScript) add(d *variant.Variant) {
	e.flush()
	e.ops = append(e.ops, d)
	e.changed = true
	e.lastDelete = -1
	if name, _, _ := Op(d); name == DeleteOp {
		e.lastDelete = len(e.ops) - 1
	}
}

// insert records an insertion of v, merging it with a directly preceding
// delete into a replace.
func (e *editScript) insert(v *variant.Variant) {
	if e.lastDelete >= 0 && e.lastDelete == len(e.ops)-1 {
		_, deleted, _ := Op(e.ops[e.lastDelete])
		e.ops[e.lastDelete] = replace(deleted, v)
		e.lastDelete = -1
		return
	}
	e.add(op(InsertOp, v.Clone()))
}

func (e *editScript) done() *variant.Variant {
	// trailing kept items are implicit
	e.kept = 0
	return variant.FromSlice(e.ops)
}

func mapValues(m map[string]rune, v *variant.Variant) []rune {
	rs := make([]rune, 0, v.Len())
	for _, elt := range v.Elements() {
		rs = append(rs, symbol(m, summary(elt)))
	}
	return rs
}

// symbol assigns each distinct key a rune, skipping the surrogate range
// which does not survive conversion to string.
func symbol(m map[string]rune, key string) rune {
	r, ok := m[key]
	if !ok {
		r = rune(len(m))
		if r >= 0xD800 {
			r += 0x800
		}
		m[key] = r
	}
	return r
}

func summary(v *variant.Variant) string {
	switch v.Type() {
	case variant.ObjectType, variant.ArrayType, variant.NullType, variant.UndefinedType, variant.FunctionType:
		return v.Type().String()
	case variant.SignedIntegerType, variant.UnsignedIntegerType:
		return "integer-" + v.ToString()
	}
	return v.Type().String() + "-" + v.ToString()
}
