package display

import (
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin and MSYS ptys
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled combines the configured preference with terminal detection.
// NO_COLOR always wins.
func ColorEnabled(want bool, f *os.File) bool {
	if !want {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(f)
}

type palette struct {
	enabled bool
}

func (p palette) wrap(code, s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return code + s + ansiReset
}

func (p palette) bold(s string) string { return p.wrap(ansiBold, s) }
func (p palette) dim(s string) string  { return p.wrap(ansiDim, s) }
func (p palette) cyan(s string) string { return p.wrap(ansiCyan, s) }
