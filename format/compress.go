package format

import (
	"strings"

	"github.com/robomillo/sql-formatter/internal/normalize"
	"github.com/robomillo/sql-formatter/token"
)

// Compress renders sql on a single line: comments are dropped,
// whitespace runs collapse to one space and multi-word keywords lose
// their extra internal whitespace.
func (f *Formatter) Compress(sql string) (string, error) {
	tokens, err := f.tok.Tokenize(sql)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(sql))
	wsLast := true
	for _, tk := range tokens {
		text := tk.Text
		switch {
		case tk.Kind == token.BLOCK_COMMENT:
			continue
		case tk.Kind == token.LINE_COMMENT:
			// A line comment that swallowed its newline still has to
			// separate what was around it.
			if !strings.HasSuffix(text, "\n") || wsLast {
				continue
			}
			wsLast = true
			text = " "
		case tk.Kind == token.WHITESPACE:
			if wsLast {
				continue
			}
			wsLast = true
			text = " "
		default:
			if tk.Kind.IsReserved() {
				text = normalize.Whitespace(text)
			}
			wsLast = false
		}
		b.WriteString(text)
	}
	return strings.TrimRight(b.String(), " "), nil
}

// StripComments removes comment tokens and nothing else. A line comment
// leaves behind the newline it swallowed so the surrounding lines do
// not run together.
func (f *Formatter) StripComments(sql string) (string, error) {
	tokens, err := f.tok.Tokenize(sql)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(sql))
	for _, tk := range tokens {
		switch tk.Kind {
		case token.LINE_COMMENT:
			if strings.HasSuffix(tk.Text, "\n") {
				b.WriteByte('\n')
			}
		case token.BLOCK_COMMENT:
		default:
			b.WriteString(tk.Text)
		}
	}
	return b.String(), nil
}
