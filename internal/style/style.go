package style

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// SGR attributes used by the CLI.
const (
	Reset = 0
	Bold  = 1
	Faint = 2
	Red   = 31
	Green = 32
)

var ErrInvalidColor = errors.New("style: invalid hex color")

// Stdout and Stderr translate ANSI sequences on Windows consoles and are the
// plain os streams elsewhere.
func Stdout() io.Writer { return colorable.NewColorableStdout() }
func Stderr() io.Writer { return colorable.NewColorableStderr() }

// NoColor reports whether NO_COLOR is set. See https://no-color.org/.
func NoColor() bool { return os.Getenv("NO_COLOR") != "" }

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SupportsColor reports whether colored output should be written to w.
func SupportsColor(w io.Writer) bool {
	return !NoColor() && IsTTY(w)
}

// Painter wraps strings in SGR sequences when enabled and returns them
// untouched otherwise.
type Painter struct {
	enabled bool
}

func NewPainter(enabled bool) Painter { return Painter{enabled: enabled} }

// For returns a Painter enabled only when w supports color and useColors
// is set.
func For(w io.Writer, useColors bool) Painter {
	return Painter{enabled: useColors && SupportsColor(w)}
}

func (p Painter) Enabled() bool { return p.enabled }

func (p Painter) S(ms ...int) string {
	if p.enabled {
		return doS(ms)
	}
	return ""
}

func (p Painter) With(s string, ms ...int) string {
	if !p.enabled {
		return s
	}
	return doS(ms) + s + doS(nil)
}

// Hex paints s in the 24-bit color given as "#rgb" or "#rrggbb".
func (p Painter) Hex(s, hex string) (string, error) {
	ms, err := Truecolor(hex)
	if err != nil {
		return "", err
	}
	return p.With(s, ms...), nil
}

// Truecolor converts a hex color into the SGR parameters of a 24-bit
// foreground color.
func Truecolor(hex string) ([]int, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, errors.Join(ErrInvalidColor, err)
	}
	r, g, b := c.RGB255()
	return []int{38, 2, int(r), int(g), int(b)}, nil
}

func doS(ms []int) string {
	if len(ms) == 0 {
		return "\033[0m"
	}
	var b strings.Builder
	_, _ = b.WriteString("\033[")
	for i, m := range ms {
		if i != 0 {
			_ = b.WriteByte(';')
		}
		_, _ = b.WriteString(strconv.FormatInt(int64(m), 10))
	}
	_ = b.WriteByte('m')
	return b.String()
}
