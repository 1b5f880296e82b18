/*
Package textfile provides API helpers to load UTF-8 text files as ropes.

Files are read in fragments of a fixed number of runes by a producer
goroutine, which broadcasts the fragments to the loader. The loader appends
the fragments to a rope in file order and rebuilds the rope once the file is
exhausted. The Load API itself is synchronous.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
