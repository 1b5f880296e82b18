// Command washline loads a text document into a rope and displays it.
//
//	washline [options] [file]
//
// If no file is given, test_document.txt is loaded.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/longmathemagician/washline"
	"github.com/longmathemagician/washline/display"
	"github.com/longmathemagician/washline/html"
	"github.com/longmathemagician/washline/metrics"
	"github.com/longmathemagician/washline/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
)

const defaultDocument = "test_document.txt"

type options struct {
	File      string
	FragLen   int
	From, To  uint64
	DotFile   string
	TraceLvl  string
	Words     bool
	LineWidth int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	gtrace.CoreTracer = gologadapter.New()
	switch opts.TraceLvl {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
	rope, err := load(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.DotFile != "" {
		if err := writeDot(rope, opts.DotFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	config := display.ConfigFromTerminal()
	config.Context = uax11.ContextFromEnvironment()
	if opts.LineWidth > 0 {
		config.LineWidth = opts.LineWidth
	}
	fw := display.NewConsoleFixedWidth(config)
	from, to := displayRange(opts.From, opts.To, rope.Len())
	if err := fw.Print(rope, from, to, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.Words {
		n, err := metrics.Count(rope, 0, rope.Len())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("%d words\n", n)
	}
	return 0
}

// displayRange clips [from, to) to a document of length n. to == 0 denotes
// the end of the document.
func displayRange(from, to, n uint64) (uint64, uint64) {
	if to == 0 || to > n {
		to = n
	}
	if from > n {
		from = n
	}
	return from, to
}

// load reads the document. HTML files are reduced to their text content.
func load(opts options) (*washline.Rope, error) {
	ext := strings.ToLower(filepath.Ext(opts.File))
	if ext == ".html" || ext == ".htm" {
		f, err := os.Open(opts.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return html.TextFromHTML(f)
	}
	return textfile.Load(context.Background(), opts.File, &textfile.Options{
		FragmentLen: opts.FragLen,
	})
}

func writeDot(rope *washline.Rope, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := washline.Rope2Dot(rope, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseFlags() options {
	var opts options
	flag.IntVar(&opts.FragLen, "frag", 2*washline.LeafLength, "Fragment length in characters")
	flag.Uint64Var(&opts.From, "from", 0, "First character to display")
	flag.Uint64Var(&opts.To, "to", 0, "Display up to this character (exclusive, 0 = end of document)")
	flag.StringVar(&opts.DotFile, "dot", "", "Write the rope's tree structure in Graphviz DOT format to this file")
	flag.StringVar(&opts.TraceLvl, "trace", "error", "Trace level (debug, info, error)")
	flag.BoolVar(&opts.Words, "words", false, "Count words")
	flag.IntVar(&opts.LineWidth, "width", 0, "Line width (0 = from terminal)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: washline [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Loads a text or HTML document (default %s) and displays it.\n\n", defaultDocument)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch opts.TraceLvl {
	case "debug", "info", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid trace level %q (must be debug, info or error)\n", opts.TraceLvl)
		os.Exit(1)
	}
	opts.File = defaultDocument
	if flag.NArg() > 0 {
		opts.File = flag.Arg(0)
	}
	return opts
}
