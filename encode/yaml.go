package encode

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/vconf/variant"
)

func encodeYAML(v *variant.Variant, es *EncState) ([]byte, error) {
	x, err := toYAML(v)
	if err != nil {
		return nil, err
	}
	var opts []yaml.EncodeOption
	if es.indent > 0 {
		opts = append(opts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(x, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return d, nil
}

// toYAML converts v to values go-yaml encodes in order: objects become
// MapSlices sorted by key.
func toYAML(v *variant.Variant) (any, error) {
	switch v.Type() {
	case variant.ObjectType:
		res := make(yaml.MapSlice, 0, v.Len())
		for k, val := range v.Entries() {
			x, err := toYAML(val)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			res = append(res, yaml.MapItem{Key: k, Value: x})
		}
		return res, nil
	case variant.ArrayType:
		res := make([]any, 0, v.Len())
		for i, elt := range v.Elements() {
			x, err := toYAML(elt)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			res = append(res, x)
		}
		return res, nil
	case variant.UndefinedType, variant.FunctionType:
		return nil, fmt.Errorf("%w: %s has no YAML form", ErrEncoding, v.Type())
	}
	if !v.IsFinite() {
		return nil, fmt.Errorf("%w: %v has no YAML form", ErrEncoding, v.Interface())
	}
	return v.Interface(), nil
}
