package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/longmathemagician/washline"
)

var (
	// ErrNotRegular signals that a path does not denote a regular file.
	ErrNotRegular = errors.New("textfile: not a regular file")
	// ErrInvalidUTF8 signals that a file does not contain valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")
	// ErrIncomplete signals that loading stopped before the end of the file.
	ErrIncomplete = errors.New("textfile: loading incomplete")
)

// Options control how a file is cut into fragments.
type Options struct {
	FragmentLen int  // runes per fragment, defaults to 2*washline.LeafLength
	Prefetch    uint // number of fragments read ahead, defaults to 16
}

func (o *Options) fragmentLen() int {
	if o == nil || o.FragmentLen <= 0 {
		return 2 * washline.LeafLength
	}
	return o.FragmentLen
}

func (o *Options) prefetch() uint {
	if o == nil || o.Prefetch == 0 {
		return 16
	}
	return o.Prefetch
}

// fragment is the message broadcast by the reading goroutine.
type fragment struct {
	seq  int
	text string
	err  error
	eof  bool
}

// textFile represents an OS file which will be loaded as a rope.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a UTF-8 text file, and loads it as a rope.
// opts may be nil, letting Load use sensible defaults.
//
// Reading happens on a separate goroutine, reading ahead of the appending
// loader. Load returns after the complete file has been appended and the rope
// has been rebuilt, or after the first error. Cancelling ctx stops loading.
func Load(ctx context.Context, name string, opts *Options) (*washline.Rope, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	sub, ok := tf.cast.Sub(ctx, opts.prefetch())
	if !ok {
		tf.file.Close()
		return nil, fmt.Errorf("cannot subscribe to fragments of %s: %w", name, ErrIncomplete)
	}
	go readFragments(tf, opts.fragmentLen())
	complete := false
	defer func() {
		if !complete {
			// caster sends without watching ctx; keep consuming until it closes
			go drain(sub)
		}
	}()
	//
	rope := washline.New()
	seq := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case msg, ok := <-sub:
			if !ok {
				return nil, fmt.Errorf("fragment stream of %s closed early: %w", name, ErrIncomplete)
			}
			frag := msg.(fragment)
			if frag.err != nil {
				return nil, frag.err
			}
			if frag.eof {
				complete = true
				rope.Rebuild()
				tracer().Debugf("textfile: loaded %s as %d fragments, %d runes, height %d",
					name, seq, rope.Len(), rope.Height())
				return rope, nil
			}
			assert(frag.seq == seq, "textfile: fragments out of order")
			rope.Append(frag.text)
			seq++
		}
	}
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", name, ErrNotRegular)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// readFragments reads the file rune by rune and publishes a fragment for
// every fragLen runes. The last message is either an EOF marker or an error.
func readFragments(tf *textFile, fragLen int) {
	defer tf.cast.Close()
	defer tf.file.Close()
	rd := bufio.NewReader(tf.file)
	var sb strings.Builder
	var offset int64
	cnt, seq := 0, 0
	publish := func(f fragment) bool {
		if !tf.cast.Pub(f) {
			tracer().Debugf("textfile: loading of %s cancelled", tf.path)
			return false
		}
		return true
	}
	for {
		r, size, err := rd.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			publish(fragment{err: fmt.Errorf("error loading text fragment: %w", err)})
			return
		}
		if r == utf8.RuneError && size == 1 {
			publish(fragment{err: fmt.Errorf("%s at byte %d: %w", tf.path, offset, ErrInvalidUTF8)})
			return
		}
		offset += int64(size)
		sb.WriteRune(r)
		cnt++
		if cnt == fragLen {
			if !publish(fragment{seq: seq, text: sb.String()}) {
				return
			}
			seq++
			sb.Reset()
			cnt = 0
		}
	}
	if offset != tf.info.Size() {
		tracer().Infof("textfile: %s changed size while loading", tf.path)
	}
	if cnt > 0 {
		if !publish(fragment{seq: seq, text: sb.String()}) {
			return
		}
	}
	publish(fragment{eof: true})
}

func drain(sub <-chan interface{}) {
	for range sub {
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
