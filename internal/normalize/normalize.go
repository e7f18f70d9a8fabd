// Package normalize provides comparison forms for SQL text, used by
// tests to check that two renderings of a statement carry the same
// content.
package normalize

import (
	"regexp"
	"strings"

	"github.com/robomillo/sql-formatter/token"
	"github.com/robomillo/sql-formatter/tokenizer"
)

// Pre-compiled regexes for performance
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Whitespace collapses all whitespace sequences to a single space
// and trims leading/trailing whitespace.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Canonical reduces sql to a spacing- and comment-independent form:
// whitespace and comment tokens are dropped, multi-word keywords have
// their internal whitespace collapsed, and the remaining token texts
// are joined with single spaces. Reformatting a statement must never
// change its canonical form.
func Canonical(t *tokenizer.Tokenizer, sql string) (string, error) {
	tokens, err := t.Tokenize(sql)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok.Kind == token.WHITESPACE || tok.Kind.IsComment():
			continue
		case tok.Kind.IsReserved():
			// Multi-word keywords may carry arbitrary internal
			// whitespace ("GROUP \t BY").
			parts = append(parts, Whitespace(tok.Text))
		default:
			parts = append(parts, tok.Text)
		}
	}
	return strings.Join(parts, " "), nil
}
