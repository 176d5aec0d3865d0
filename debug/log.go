package debug

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/signadot/vconf/encode"
	"github.com/signadot/vconf/variant"
)

var out io.Writer = os.Stderr

// Logf writes a diagnostic line to stderr. *variant.Variant arguments are
// rendered as JSON strings, so format them with %v.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *variant.Variant:
			s, err := encode.ToJSON(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw %s variant]", x.Type())
				continue
			}
			args[i] = s
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
