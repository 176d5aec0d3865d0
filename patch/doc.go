// Package patch applies JSON patches (RFC 6902) and merge patches
// (RFC 7386) to variants.
//
//	p, err := parse.Parse([]byte(`[{"op": "replace", "path": "/port", "value": 8080}]`))
//	...
//	out, err := patch.Apply(doc, p)
//
// Documents go through their JSON encoding, so they must not contain
// Undefined or Function values, and must be objects or arrays at the top
// level.
package patch
