package patch

import (
	"bytes"
	"fmt"

	"github.com/signadot/vconf/debug"
	"github.com/signadot/vconf/encode"
	"github.com/signadot/vconf/parse"
	"github.com/signadot/vconf/variant"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch is a decoded RFC 6902 JSON patch.
type Patch struct {
	ops jsonpatch.Patch
}

// Decode decodes a patch given as an Array of operation Objects.
func Decode(p *variant.Variant) (*Patch, error) {
	if p.Type() != variant.ArrayType {
		return nil, fmt.Errorf("%w: patch must be an array, got %s", ErrPatch, p.Type())
	}
	d, err := encode.ToJSON(p)
	if err != nil {
		return nil, err
	}
	return DecodeJSON([]byte(d))
}

// DecodeJSON decodes a patch from JSON text.
func DecodeJSON(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

// Len returns the number of operations.
func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply applies p to a copy of doc.
func (p *Patch) Apply(doc *variant.Variant) (*variant.Variant, error) {
	d, err := encode.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("json-patch %d ops on %v\n", len(p.ops), doc)
	}
	out, err := p.ops.Apply([]byte(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApply, err)
	}
	return parse.ParseReader(bytes.NewReader(out))
}

// Apply decodes patch and applies it to doc.
func Apply(doc, patch *variant.Variant) (*variant.Variant, error) {
	p, err := Decode(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

// Merge applies an RFC 7386 merge patch: members of patch replace those of
// doc, recursively for objects, and null members delete.
func Merge(doc, patch *variant.Variant) (*variant.Variant, error) {
	d, err := encode.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	p, err := encode.ToJSON(patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge-patch %v on %v\n", patch, doc)
	}
	out, err := jsonpatch.MergePatch([]byte(d), []byte(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrApply, err)
	}
	return parse.Parse(out)
}

// CreateMerge returns the merge patch turning from into to.
func CreateMerge(from, to *variant.Variant) (*variant.Variant, error) {
	f, err := encode.ToJSON(from)
	if err != nil {
		return nil, err
	}
	t, err := encode.ToJSON(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch([]byte(f), []byte(t))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}
