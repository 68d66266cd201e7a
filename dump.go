package cowset

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette configures the colors used by Dump. A nil entry falls back to
// uncolored output for that part.
type Palette struct {
	Meta *color.Color // set size and bound annotations
	Elem *color.Color // elements
}

func defaultPalette() Palette {
	return Palette{
		Meta: color.New(color.FgBlue),
		Elem: color.New(color.FgRed),
	}
}

// Dump writes a human-readable rendering of one snapshot of nav to w (for
// debugging purposes). Elements appear in the order of nav, wrapped to the
// terminal width if w is an interactive terminal, to 80 columns otherwise.
func Dump[E any](w io.Writer, nav Navigable[E]) {
	DumpPalette(w, nav, defaultPalette())
}

// DumpPalette is Dump with a caller-supplied color palette.
func DumpPalette[E any](w io.Writer, nav Navigable[E], pal Palette) {
	width := 80
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	arr := nav.Snapshot()
	line := colorize(pal.Meta, fmt.Sprintf("cowset(%d){", len(arr)))
	col := visibleLen(line)
	for i, e := range arr {
		frag := colorize(pal.Elem, fmt.Sprintf("%v", e))
		if i < len(arr)-1 {
			frag += ", "
		}
		if col+visibleLen(frag) > width {
			fmt.Fprintln(w, line)
			line, col = "  ", 2
		}
		line += frag
		col += visibleLen(frag)
	}
	line += colorize(pal.Meta, "}")
	fmt.Fprintln(w, line)
}

func colorize(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// visibleLen approximates printed width, ignoring SGR escape sequences.
func visibleLen(s string) int {
	n, esc := 0, false
	for _, r := range s {
		switch {
		case esc:
			if r == 'm' {
				esc = false
			}
		case r == '\x1b':
			esc = true
		default:
			n++
		}
	}
	return n
}
