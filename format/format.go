package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JSONFormat Format = iota
	ConfigFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":      JSONFormat,
		"json":   JSONFormat,
		"c":      ConfigFormat,
		"cfg":    ConfigFormat,
		"config": ConfigFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case ConfigFormat:
		return []byte("config"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// IsInput reports whether documents can be read in format f.
func (f Format) IsInput() bool { return f == JSONFormat || f == ConfigFormat }

// IsOutput reports whether documents can be written in format f.
func (f Format) IsOutput() bool { return f == JSONFormat || f == YAMLFormat }
