package token

import (
	"github.com/signadot/vconf/format"
)

type tokenOpts struct {
	format format.Format
}
type TokenOpt func(*tokenOpts)

func TokenJSON() TokenOpt {
	return func(o *tokenOpts) { o.format = format.JSONFormat }
}
func TokenConfig() TokenOpt {
	return func(o *tokenOpts) { o.format = format.ConfigFormat }
}
func TokenFormat(f format.Format) TokenOpt {
	return func(o *tokenOpts) { o.format = f }
}
