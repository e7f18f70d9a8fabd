package format

import (
	"strings"

	"github.com/muir/list"

	"github.com/robomillo/sql-formatter/token"
)

// Split cuts sql into individual statements on semicolon boundaries.
// Semicolons inside strings and comments are already classified by the
// tokenizer and never split. Comments and the semicolons themselves are
// dropped, leading whitespace is skipped and statements with no content
// are discarded.
func (f *Formatter) Split(sql string) ([]string, error) {
	tokens, err := f.tok.Tokenize(sql)
	if err != nil {
		return nil, err
	}

	var (
		stmts   []token.Tokens
		current token.Tokens
	)
	for _, tk := range tokens {
		switch {
		case tk.Text == ";" && tk.Kind == token.BOUNDARY:
			stmts = append(stmts, current)
			current = nil
		case tk.Kind.IsComment():
		case tk.Kind == token.WHITESPACE && len(current) == 0:
		default:
			current = append(current, tk)
		}
	}
	stmts = append(stmts, current)
	stmts = list.FilterEmptySlices(stmts)

	out := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		if s := strings.TrimRight(stmt.String(), " \t\r\n"); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
