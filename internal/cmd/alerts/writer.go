package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Writer prints alerts one per line with details indented below.
type Writer struct {
	out   io.Writer
	color bool
}

// NewWriter colors output only when out is a terminal and noColor is unset.
func NewWriter(out io.Writer, noColor bool) *Writer {
	color := false
	if f, ok := out.(*os.File); ok && !noColor {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Writer{out: out, color: color}
}

func (w *Writer) Write(alerts ...*Alert) error {
	for _, a := range alerts {
		line := a.String()
		if w.color {
			line = a.Level.Color() + line + resetColor
		}
		if _, err := fmt.Fprintln(w.out, line); err != nil {
			return err
		}
		for _, d := range a.Details {
			if _, err := fmt.Fprintln(w.out, "   "+d); err != nil {
				return err
			}
		}
	}
	return nil
}
