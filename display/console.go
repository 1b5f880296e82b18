package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/longmathemagician/washline"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the parameters for console output.
type Config struct {
	LineWidth int            // target line length in “en”s, including the gutter
	Context   *uax11.Context // context for character widths
	Colored   bool           // use colors for gutter and status line
}

// ConsoleFixedWidth is a type for outputting ropes to a console with
// a fixed width font.
type ConsoleFixedWidth struct {
	config *Config
	gutter *color.Color
	status *color.Color
}

const gutterWidth = 6 // "%4d │"

// NewConsoleFixedWidth creates a new console output. If config is nil, a
// heuristic will create a config from the current terminal's properties (if
// stdout is interactive) and from the user environment.
func NewConsoleFixedWidth(config *Config) *ConsoleFixedWidth {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	fw := &ConsoleFixedWidth{
		config: config,
		gutter: color.New(color.FgBlue),
		status: color.New(color.FgRed, color.Bold),
	}
	if !config.Colored {
		fw.gutter.DisableColor()
		fw.status.DisableColor()
	}
	return fw
}

// Print outputs the runes [from, to) of a rope to w. to is clipped to the
// length of the rope. Lines are numbered as in the complete document.
func (fw *ConsoleFixedWidth) Print(r *washline.Rope, from, to uint64, w io.Writer) error {
	if to > r.Len() {
		to = r.Len()
	}
	if !r.IsVoid() && from < to {
		lineno := 1
		if from > 0 {
			before, err := r.Substring(0, from)
			if err != nil {
				return err
			}
			lineno += strings.Count(before, "\n")
		}
		text, err := r.Substring(from, to)
		if err != nil {
			return err
		}
		text = strings.TrimSuffix(text, "\n")
		width := fw.config.LineWidth - gutterWidth
		if width < 10 {
			width = 10
		}
		for _, para := range strings.Split(text, "\n") {
			for i, line := range Wrap(para, width, fw.config.Context) {
				var err error
				if i == 0 {
					_, err = fw.gutter.Fprintf(w, "%4d │", lineno)
				} else {
					_, err = fw.gutter.Fprint(w, "     │")
				}
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			lineno++
		}
	} else if from > to {
		return washline.ErrInvalidRange
	}
	_, err := fw.status.Fprintf(w, "-- %d characters, %d fragments, height %d --\n",
		r.Len(), r.LeafCount(), r.Height())
	return err
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else {
			if w > 30 {
				config.LineWidth = w - 2
			} else if w > 16 {
				config.LineWidth = w
			} else {
				config.LineWidth = 16
			}
		}
	} else {
		config.LineWidth = 80
	}
	T().Infof("setting line length to %d en", config.LineWidth)
	return config
}
