package parse

import "io/fs"

type parseOpts struct {
	maxDepth        int
	includeBase     string
	includeFS       fs.FS
	maxIncludeDepth int
}

type ParseOption func(*parseOpts)

func newParseOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{}
	for _, o := range opts {
		o(res)
	}
	return res
}

// MaxDepth bounds the nesting of objects and arrays. Exceeding it fails
// with ErrDepth. The default, 0, is unbounded.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// IncludeBase sets the directory relative @include paths resolve against.
// Without it they resolve against the directory of the including file.
func IncludeBase(dir string) ParseOption {
	return func(o *parseOpts) { o.includeBase = dir }
}

// IncludeFS makes the config parser open files, including the one named
// by ParseConfigFile, from fsys instead of the operating system.
func IncludeFS(fsys fs.FS) ParseOption {
	return func(o *parseOpts) { o.includeFS = fsys }
}

// MaxIncludeDepth bounds @include nesting. Exceeding it fails with
// ErrIncludeDepth. The default, 0, is unbounded, so an include cycle runs
// until opening files fails.
func MaxIncludeDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxIncludeDepth = n }
}
