package washline

import "io"

// Reader returns a reader for the bytes of a rope. The reader works on a
// snapshot of r taken at the time of the call.
func (r *Rope) Reader() io.Reader {
	snap := r.Snapshot()
	return &ropeReader{leaves: collectLeaves(snap.head)}
}

type ropeReader struct {
	leaves []*leafNode
	cur    int // current leaf
	off    int // byte offset within current leaf
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	for n < len(p) && rr.cur < len(rr.leaves) {
		text := rr.leaves[rr.cur].text
		c := copy(p[n:], text[rr.off:])
		n += c
		rr.off += c
		if rr.off >= len(text) {
			rr.cur++
			rr.off = 0
		}
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
