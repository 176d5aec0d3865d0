// Package variant provides Variant, the dynamically typed value tree
// produced by the JSON and config parsers.
//
// A Variant holds exactly one of: Undefined (the zero value, also returned
// for absent keys), Null, Boolean, SignedInteger, UnsignedInteger, Float,
// String, Array, Object or Function.
//
// # Construction
//
//	v := variant.FromMap(map[string]*variant.Variant{
//		"name": variant.FromString("alice"),
//		"age":  variant.FromInt(30),
//	})
//	pairs := variant.FromList(variant.Pair("a", variant.FromInt(1))) // Object
//	list := variant.FromList(variant.FromInt(1), variant.FromInt(2)) // Array
//
// # Indexing
//
// Get and At never modify their receiver and report missing keys or indices
// as errors. Field and Elem auto-vivify: applied to an Undefined or Null
// value they turn it into an Object or Array and create the missing member
// or elements.
//
//	var v variant.Variant
//	v.Field("a").Field("b").MoveFrom(variant.FromInt(1)) // {"a": {"b": 1}}
//
// # Paths
//
// Lookup follows dotted key paths through Objects only and never creates
// anything; Get wraps it with a default:
//
//	port := variant.Get(cfg, "server.port", 8080)
//
// # Coercion
//
// The To* methods and As never fail. Unparseable strings coerce to zero,
// which is indistinguishable from a real zero.
//
// # Related Packages
//
//   - github.com/signadot/vconf/parse - Parse JSON and config text to Variants
//   - github.com/signadot/vconf/encode - Encode Variants to JSON
package variant
