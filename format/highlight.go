package format

import (
	"strings"

	"github.com/labstack/gommon/color"

	"github.com/robomillo/sql-formatter/token"
)

// SetColor forces ANSI color output on or off for Highlight. The
// default follows gommon's terminal detection on stdout.
func SetColor(enabled bool) {
	if enabled {
		color.Enable()
	} else {
		color.Disable()
	}
}

// Highlight returns sql with ANSI color applied per token kind. The
// layout, whitespace and comments included, is preserved exactly.
func (f *Formatter) Highlight(sql string) (string, error) {
	tokens, err := f.tok.Tokenize(sql)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(sql) * 2)
	for _, tk := range tokens {
		b.WriteString(colorize(tk))
	}
	return b.String(), nil
}

func colorize(tk token.Token) string {
	switch tk.Kind {
	case token.QUOTED_STRING:
		return color.Green(tk.Text)
	case token.BACKTICK_QUOTED:
		return color.Cyan(tk.Text)
	case token.VARIABLE:
		return color.Magenta(tk.Text)
	case token.NUMBER:
		return color.Yellow(tk.Text)
	case token.RESERVED, token.RESERVED_TOPLEVEL, token.RESERVED_NEWLINE:
		return color.Blue(tk.Text)
	case token.LINE_COMMENT, token.BLOCK_COMMENT:
		return color.Grey(tk.Text)
	default:
		return tk.Text
	}
}
