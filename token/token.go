// Package token defines the token kinds produced by SQL tokenization.
package token

import (
	"strconv"
	"strings"
)

// Kind classifies a token. The set is closed: every token a tokenizer
// emits carries exactly one of the kinds below.
type Kind int

const (
	// Layout
	WHITESPACE Kind = iota
	LINE_COMMENT
	BLOCK_COMMENT

	// Literals
	QUOTED_STRING   // 'string' or "string"
	BACKTICK_QUOTED // `identifier` or [identifier]
	VARIABLE        // @name, :name, @'quoted name'
	NUMBER          // 10, -3.5, 0xFF, 0b01

	// Structure
	BOUNDARY // single punctuation character

	// Keywords
	RESERVED          // plain reserved word or function call name
	RESERVED_TOPLEVEL // starts a top-level clause (SELECT, FROM, ...)
	RESERVED_NEWLINE  // starts a new line within a clause (AND, OR, ...)

	// Everything else
	WORD
)

var kinds = [...]string{
	WHITESPACE:    "WHITESPACE",
	LINE_COMMENT:  "LINE_COMMENT",
	BLOCK_COMMENT: "BLOCK_COMMENT",

	QUOTED_STRING:   "QUOTED_STRING",
	BACKTICK_QUOTED: "BACKTICK_QUOTED",
	VARIABLE:        "VARIABLE",
	NUMBER:          "NUMBER",

	BOUNDARY: "BOUNDARY",

	RESERVED:          "RESERVED",
	RESERVED_TOPLEVEL: "RESERVED_TOPLEVEL",
	RESERVED_NEWLINE:  "RESERVED_NEWLINE",

	WORD: "WORD",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kinds) {
		return kinds[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsReserved returns true for the three reserved-word kinds.
func (k Kind) IsReserved() bool {
	return k >= RESERVED && k <= RESERVED_NEWLINE
}

// IsComment returns true for the two comment kinds.
func (k Kind) IsComment() bool {
	return k == LINE_COMMENT || k == BLOCK_COMMENT
}

// Token is one classified span of input text. Text is always a
// non-empty, contiguous slice of the input it was scanned from; the
// tokenizer never normalizes case or spacing inside it.
type Token struct {
	Kind Kind
	Text string
}

// Tokens is an ordered token sequence covering an input exactly.
type Tokens []Token

// String reassembles the input the tokens were produced from.
// Concatenating in order restores it byte for byte.
func (ts Tokens) String() string {
	n := 0
	for _, t := range ts {
		n += len(t.Text)
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, t := range ts {
		sb.WriteString(t.Text)
	}
	return sb.String()
}
