/*
Package washline implements a rope for text documents which are built up
incrementally, e.g. by loading a file in fragments, and are then read by
index or by range.

Ropes

A rope organizes fragments of immutable text in a binary tree. Leaves carry
the fragments, inner nodes (branches) carry the weights of their two subtrees,
measured in Unicode code points. Reading a character or a range of characters
descends the tree along the weights and never has to rescan the complete text.

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long string.
[…] In summary, ropes are preferable when the data is large and modified often.

Appending

The rope in this package is append-biased. Every call to Append creates a new
root on top of the previous one, which makes the tree lean to the left and
grow one level per fragment. Clients which append many fragments should call
Rebuild once they are done; Rebuild re-pairs all leaves level by level and
leaves a tree of logarithmic height.

Nodes are never modified after construction. A new version of the tree shares
every unchanged subtree with the previous one, so a Snapshot of a rope stays
valid no matter what happens to the rope afterwards. Snapshots may be read
concurrently; writers to a single Rope have to be synchronized by the client.

Traversal

All operations walk the tree with an explicit stack instead of recursion. The
depth of an unbalanced tree is therefore bounded by memory only, not by the
call stack.

Positions

All positions and lengths are counted in code points (runes), never in bytes.
Substring ranges are half-open: [i, j).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package washline

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// RopeError is an error type for the washline module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrRopeCompleted signals that a rope builder has already completed a rope and
// it's illegal to further add fragments.
const ErrRopeCompleted = RopeError("forbidden to add fragments; rope has been completed")

// ErrIndexOutOfBounds is flagged whenever a rope position is
// greater than or equal to the length of the rope.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrInvalidRange is flagged for ranges [i, j) with i > j.
const ErrInvalidRange = RopeError("invalid range")

// ErrEmptyDocument is flagged for queries on a rope without content.
const ErrEmptyDocument = RopeError("empty document")

// ErrBrokenTree is flagged if a branch's weights call for a child which is absent.
// This is always a construction bug, never a user error.
const ErrBrokenTree = RopeError("structural inconsistency in rope tree")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
