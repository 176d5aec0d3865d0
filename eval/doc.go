// Package eval evaluates expr-lang expressions against Variant documents.
//
// A compiled expression is itself a Variant holding a Function, so it can
// be stored in a document and called like any other function value:
//
//	fn, _ := eval.Compile(`doc.replicas * 2`)
//	res, err := fn.Call(doc)
//
// Expressions see the argument as doc and may call the functions in the
// package registry, which initially holds getenv, tojson, fromjson and diff.
package eval
