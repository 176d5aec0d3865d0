// Package libdiff computes and applies structural diffs between variants.
//
// # Usage
//
//	// Compute the diff between two documents
//	diff := libdiff.Diff(oldDoc, newDoc) // nil when equal
//
//	// Apply it
//	patched, err := libdiff.Patch(oldDoc, diff)
//
//	// Undo it
//	undo, err := libdiff.Reverse(diff)
//
// Diffs are themselves variants, so they can be encoded as JSON:
//
//	{"!object": {"port": {"!replace": {"from": 80, "to": 8080}},
//	             "tags": {"!array": [1, {"!insert": "new"}]}}}
//
// # Related Packages
//
//   - github.com/signadot/vconf/variant - The Variant value tree
//   - github.com/signadot/vconf/patch - RFC 6902 JSON patches
package libdiff
