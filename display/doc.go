/*
Package display outputs the text of ropes to a console with a fixed width font.

Text is wrapped at Unicode line break opportunities (UAX#14), measuring
fragments in “en”s, i.e. fixed width positions, according to UAX#11 East
Asian width rules. Every source line is prefixed by a gutter with its line
number, and output closes with a status line.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package display

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
