package inspect

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities describes what the output stream can display.
type Capabilities struct {
	Terminal bool
	// Formatter is the chroma formatter matching the color profile, or
	// empty when the stream has no color support.
	Formatter string
}

// Probe inspects f once and reports its capabilities.
func Probe(f *os.File) Capabilities {
	if f == nil {
		return Capabilities{}
	}
	fd := f.Fd()
	return Capabilities{
		Terminal:  isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Formatter: formatterFor(termenv.NewOutput(f).EnvColorProfile()),
	}
}

func formatterFor(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return ""
	}
}
