package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/mgutz/ansi"
)

// Output handles result and diagnostic formatting with optional color.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	cyan   func(string) string
	green  func(string) string
	white  func(string) string
	yellow func(string) string
	red    func(string) string
}

// NewOutput creates a new Output writing results to stdout and diagnostics
// to stderr.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		cyan:   color("cyan"),
		green:  color("green+b"),
		white:  color("white"),
		yellow: color("yellow"),
		red:    color("red+b"),
	}
}

// Result writes a parsed value. A non-empty label prefixes the value with
// the input it came from, and a non-empty long form trails it in
// parentheses.
func (o *Output) Result(label, value, long string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	line := o.green(value)
	if long != "" {
		line = fmt.Sprintf("%s (%s)", line, o.white(long))
	}
	if label != "" {
		line = fmt.Sprintf("%s: %s", o.cyan(label), line)
	}
	fmt.Fprintf(o.stdout, "%s\n", line)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Errorf writes a formatted error message to stderr.
func (o *Output) Errorf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.red("Error: ")+format+"\n", args...)
}
