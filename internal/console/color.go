package console

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// ColorPalette names the colors used when reporting to the terminal.
type ColorPalette map[string]*color.Color

var (
	// Palette is the palette used by the command line tools.
	Palette = ColorPalette{
		"base":  color.New(color.FgHiBlack),
		"meh":   color.New(color.FgHiBlack),
		"fail":  color.New(color.FgHiRed),
		"warn":  color.New(color.FgHiYellow),
		"pass":  color.New(color.FgHiGreen),
		"label": color.New(color.FgBlue),
		"value": color.New(color.FgCyan),
		"file":  color.New(color.FgWhite),

		"book":      color.New(color.FgHiMagenta),
		"code":      color.New(color.FgHiCyan),
		"citation":  color.New(color.FgHiYellow),
		"reference": color.New(color.FgHiGreen),
		"url":       color.New(color.FgBlue, color.Underline),
	}
)

// Join joins the args with the delimiter d printed in the named color.
func (cp ColorPalette) Join(color string, args []string, d string) string {
	if c, ok := cp[color]; ok {
		return strings.Join(args, c.Sprint(d))
	}
	panic("unknown color " + color)
}

// Fcolor writes alternating color names and strings to out. It starts with
// the "base" color if the first argument is not a color name.
//
//	cp.Fcolor(os.Stderr, "label", "Book: ", "book", "Genesis")
func (cp ColorPalette) Fcolor(out io.Writer, args ...string) {
	color := "base"
	for i, v := range args {
		if i%2 == 0 {
			color = v
		} else {
			if c, ok := cp[color]; ok {
				c.Fprint(out, v)
			} else {
				panic("unknown color " + color)
			}
		}
	}
}

// Scolor is like Fcolor, but returns the string.
func (cp ColorPalette) Scolor(args ...string) string {
	var out strings.Builder
	cp.Fcolor(&out, args...)
	return out.String()
}

func (cp ColorPalette) Fprintf(color string, out io.Writer, fmt string, args ...interface{}) {
	if c, ok := cp[color]; ok {
		c.Fprintf(out, fmt, args...)
		return
	}
	panic("unknown color " + color)
}

func (cp ColorPalette) Sprintf(color string, fmt string, args ...interface{}) string {
	if c, ok := cp[color]; ok {
		return c.Sprintf(fmt, args...)
	}
	panic("unknown color " + color)
}
