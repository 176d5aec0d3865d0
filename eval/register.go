package eval

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/vconf/variant"
)

var (
	mu sync.RWMutex
	d  = map[string]variant.Func{}
)

var ErrFuncExists = errors.New("function exists")

// Register makes fn callable by name from expressions and through Lookup.
func Register(name string, fn variant.Func) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[name]
	if present {
		return fmt.Errorf("%s: %w", name, ErrFuncExists)
	}
	d[name] = fn
	return nil
}

func init() {
	Register("getenv", getenv)
	Register("tojson", tojson)
	Register("fromjson", fromjson)
	Register("diff", diff)
}

// Lookup returns the registered function name as a Function variant, or
// nil.
func Lookup(name string) *variant.Variant {
	mu.RLock()
	defer mu.RUnlock()
	fn := d[name]
	if fn == nil {
		return nil
	}
	return variant.FromFunc(fn)
}

// Names returns the registered function names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(d))
	for name := range d {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
