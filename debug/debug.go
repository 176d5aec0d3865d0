package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex     bool
	Read    bool
	Include bool
	Eval    bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("VCONF_DEBUG_LEX")
	d.Read = boolEnv("VCONF_DEBUG_READ")
	d.Include = boolEnv("VCONF_DEBUG_INCLUDE")
	d.Eval = boolEnv("VCONF_DEBUG_EVAL")
	d.Patch = boolEnv("VCONF_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Read() bool {
	return d.Read
}
func Include() bool {
	return d.Include
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
