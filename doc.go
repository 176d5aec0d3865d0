// Package vconf reads and writes Variant documents.
//
// Documents come either from strict JSON (FromJSON, FromJSONString) or from
// the config dialect (FromConfigFile, FromConfig), which extends JSON with
// bare keys, '=' separators, optional commas, comments and @include
// directives:
//
//	# service.conf
//	name = "api"
//	server = {port: 8080}
//	@include "common.conf"
//
// Values are read with dotted paths:
//
//	port := vconf.Get(doc, "server.port", 80)
//
// The subpackages hold the pieces: token (lexer), parse (pull reader and
// tree builders), variant (value model), encode (JSON and YAML output),
// libdiff and patch (structural diffs and RFC 6902 patches) and eval
// (expression valued functions).
package vconf
