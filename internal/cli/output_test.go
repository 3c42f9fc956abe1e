package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestNewOutput(t *testing.T) {
	tests := []struct {
		name     string
		colorize bool
	}{
		{name: "with colors", colorize: true},
		{name: "without colors", colorize: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			output := NewOutput(stdout, stderr, tt.colorize)
			colorFuncs := []struct {
				name string
				fn   func(string) string
			}{
				{"cyan", output.cyan},
				{"green", output.green},
				{"white", output.white},
				{"yellow", output.yellow},
				{"red", output.red},
			}
			for _, cf := range colorFuncs {
				if cf.fn == nil {
					t.Errorf("NewOutput() %s color func is nil", cf.name)
				}
				s := cf.fn("test")
				if tt.colorize {
					if s == "test" {
						t.Errorf("NewOutput() expected %s color func to return ANSI codes", cf.name)
					}
				} else {
					if s != "test" {
						t.Errorf("NewOutput() expected %s color func to return plain string, got %q", cf.name, s)
					}
				}
			}
		})
	}
}

func TestResult(t *testing.T) {
	tests := []struct {
		name  string
		label string
		value string
		long  string
		want  string
	}{
		{
			name:  "value only",
			value: "5400",
			want:  "5400\n",
		},
		{
			name:  "labeled",
			label: "1h30m",
			value: "5400",
			want:  "1h30m: 5400\n",
		},
		{
			name:  "with long form",
			value: "5400",
			long:  "1 hour 30 minutes",
			want:  "5400 (1 hour 30 minutes)\n",
		},
		{
			name:  "labeled with long form",
			label: "1h30m",
			value: "5400",
			long:  "1 hour 30 minutes",
			want:  "1h30m: 5400 (1 hour 30 minutes)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			output := NewOutput(stdout, stderr, false)

			output.Result(tt.label, tt.value, tt.long)

			if got := stdout.String(); got != tt.want {
				t.Errorf("Result() output = %q, want %q", got, tt.want)
			}
			if stderr.Len() != 0 {
				t.Errorf("Result() wrote to stderr: %q", stderr.String())
			}
		})
	}
}

func TestWarningf(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	output := NewOutput(stdout, stderr, false)

	output.Warningf("alias %q is shadowed", "min")

	if got, want := stderr.String(), "Warning: alias \"min\" is shadowed\n"; got != want {
		t.Errorf("Warningf() output = %q, want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("Warningf() wrote to stdout: %q", stdout.String())
	}
}

func TestErrorf(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	output := NewOutput(stdout, stderr, false)

	output.Errorf("%s: bad input", "1xyz")

	if got, want := stderr.String(), "Error: 1xyz: bad input\n"; got != want {
		t.Errorf("Errorf() output = %q, want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("Errorf() wrote to stdout: %q", stdout.String())
	}
}

func TestOutputThreadSafety(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	output := NewOutput(stdout, stderr, false)

	const numGoroutines = 10
	const numCalls = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 3)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numCalls {
				output.Result("1h", "3600", "")
			}
		}()
		go func() {
			defer wg.Done()
			for range numCalls {
				output.Warningf("warning")
			}
		}()
		go func() {
			defer wg.Done()
			for range numCalls {
				output.Errorf("error")
			}
		}()
	}

	wg.Wait()

	stdoutLines := strings.Count(stdout.String(), "\n")
	stderrLines := strings.Count(stderr.String(), "\n")

	if want := numGoroutines * numCalls; stdoutLines != want {
		t.Errorf("stdout lines = %d, want %d", stdoutLines, want)
	}
	if want := numGoroutines * numCalls * 2; stderrLines != want {
		t.Errorf("stderr lines = %d, want %d (Warningf + Errorf)", stderrLines, want)
	}
}
