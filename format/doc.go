// Package format names the document formats understood by vconf.
//
// JSON and the extended config dialect can be read; JSON and YAML can be
// written.
//
// # Related Packages
//
//   - github.com/signadot/vconf/parse - Parse text to Variants
//   - github.com/signadot/vconf/encode - Encode Variants to text
package format
