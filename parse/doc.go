// Package parse parses JSON and config text into variants.
//
// # JSON
//
//	v, err := parse.Parse([]byte(`{"name": "alice", "tags": [1, 2.5]}`))
//
// Strict JSON goes through a Reader, a pull parser that can also be used
// directly:
//
//	r := parse.NewReader(f)
//	if err := r.BeginArray(); err != nil {
//		return err
//	}
//	for {
//		more, err := r.HasNext()
//		if err != nil {
//			return err
//		}
//		if !more {
//			break
//		}
//		elt, err := r.ReadValue()
//		...
//	}
//	return r.EndArray()
//
// A document must be an object or an array. Integer literals become
// SignedInteger variants, or UnsignedInteger above the int64 range; any
// fraction or exponent makes a Float.
//
// # Config
//
// The config dialect extends JSON:
//
//	# comment
//	name = "svc"         // bare keys, '=' or ':'
//	limits = {cpu: 2,}   /* optional and trailing commas */
//	@include "base.cfg"  // merge base.cfg's members here
//	extra = @include "extra.cfg"
//
// Read it with ParseConfig or ParseConfigFile. Include cycles are not
// detected; use MaxIncludeDepth to turn them into errors.
//
// # Related Packages
//
//   - github.com/signadot/vconf/token - Tokenization
//   - github.com/signadot/vconf/variant - The Variant value tree
//   - github.com/signadot/vconf/encode - Encode variants to text
package parse
