package eval

import (
	"fmt"

	"github.com/signadot/vconf/debug"
	"github.com/signadot/vconf/variant"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Compile compiles an expr-lang expression into a Function variant. Calling
// the function evaluates the expression with its argument bound to doc and
// converts the result back to a Variant.
//
// Besides the expr builtins, expressions can call the registered functions
// (see Register) and getpath(path), which looks up a dotted path in doc and
// yields nil when it does not resolve.
func Compile(src string) (*variant.Variant, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return variant.FromFunc(func(arg *variant.Variant) (*variant.Variant, error) {
		return run(src, prg, arg)
	}), nil
}

// Eval compiles src and calls it on doc.
func Eval(src string, doc *variant.Variant) (*variant.Variant, error) {
	fn, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return fn.Call(doc)
}

func run(src string, prg *vm.Program, arg *variant.Variant) (*variant.Variant, error) {
	env := map[string]any{
		"doc": arg.Interface(),
		"getpath": func(path string) any {
			v, ok := arg.Lookup(path)
			if !ok {
				return nil
			}
			return v.Interface()
		},
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRun, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q on %s gave %T\n", src, arg.Type(), res)
	}
	return variant.FromValue(res)
}

func exprOpts() []expr.Option {
	mu.RLock()
	defer mu.RUnlock()
	opts := make([]expr.Option, 0, len(d))
	for name, fn := range d {
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			var arg any
			switch len(params) {
			case 0:
			case 1:
				arg = params[0]
			default:
				arg = params
			}
			v, err := variant.FromValue(arg)
			if err != nil {
				return nil, err
			}
			res, err := fn(v)
			if err != nil {
				return nil, err
			}
			return res.Interface(), nil
		}))
	}
	return opts
}
