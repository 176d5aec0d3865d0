package encode

import (
	"github.com/signadot/vconf/variant"
)

// MustString is ToJSON for values known to be encodable. It panics on
// ErrEncoding.
func MustString(v *variant.Variant) string {
	s, err := ToJSON(v)
	if err != nil {
		panic(err)
	}
	return s
}
