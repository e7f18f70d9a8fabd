// Package format pretty-prints, highlights, compresses and splits SQL.
// It works from the token stream alone: tokens are emitted verbatim and
// only the whitespace between them is rewritten, so formatting never
// changes what a statement says. Malformed SQL comes back formatted as
// far as it goes, never as an error.
package format

import (
	"bytes"
	"strings"

	"github.com/robomillo/sql-formatter/internal/normalize"
	"github.com/robomillo/sql-formatter/token"
	"github.com/robomillo/sql-formatter/tokenizer"
)

// Inline parentheses hold at most this many characters of token text;
// longer runs are indented and wrapped at commas.
const maxInlineLength = 30

// How many tokens ahead to look for the closing parenthesis before
// giving up on inlining.
const maxInlineLookahead = 250

// Options configures a Formatter.
type Options struct {
	// Indent is the indentation unit. Two spaces when empty.
	Indent string
}

// Formatter renders token streams produced by a single tokenizer. It is
// immutable and safe for concurrent use.
type Formatter struct {
	tok  *tokenizer.Tokenizer
	opts Options
}

// New returns a Formatter that tokenizes with tok.
func New(tok *tokenizer.Tokenizer, opts Options) *Formatter {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return &Formatter{tok: tok, opts: opts}
}

// ftoken is a non-whitespace token plus its index in the unfiltered
// stream, which the layout rules need to see the original spacing.
type ftoken struct {
	token.Token
	orig int
}

type indentKind int

const (
	// indentSpecial is opened after a toplevel keyword and closed by
	// the next toplevel keyword or an enclosing closing parenthesis.
	indentSpecial indentKind = iota
	// indentBlock is opened by a parenthesis and closed by its pair.
	indentBlock
)

// Format re-indents sql onto multiple lines. The result carries no
// trailing newline.
func (f *Formatter) Format(sql string) (string, error) {
	original, err := f.tok.Tokenize(sql)
	if err != nil {
		return "", err
	}

	tokens := make([]ftoken, 0, len(original))
	for i, tk := range original {
		if tk.Kind != token.WHITESPACE {
			tokens = append(tokens, ftoken{Token: tk, orig: i})
		}
	}

	wsBefore := func(ft ftoken) bool {
		return ft.orig > 0 && original[ft.orig-1].Kind == token.WHITESPACE
	}

	var (
		out             []byte
		level           int
		stack           []indentKind
		newline         bool
		addedNewline    bool
		increaseSpecial bool
		increaseBlock   bool
		inlineParens    bool
		inlineIndented  bool
		inlineCount     int
		clauseLimit     bool
	)

	for i, tk := range tokens {
		text := tk.Text
		if tk.Kind.IsReserved() {
			// Multi-word keywords keep their original spacing in the
			// token text; the output uses single spaces.
			text = normalize.Whitespace(text)
		}

		if increaseSpecial {
			level++
			increaseSpecial = false
			stack = append(stack, indentSpecial)
		}
		if increaseBlock {
			level++
			increaseBlock = false
			stack = append(stack, indentBlock)
		}

		if newline {
			out = f.newlineIndent(out, level)
			newline = false
			addedNewline = true
		} else {
			addedNewline = false
		}

		// Comments stay where they appeared; a line break follows.
		if tk.Kind.IsComment() {
			if tk.Kind == token.LINE_COMMENT {
				// The token swallowed its terminating newline; the
				// layout adds its own.
				text = strings.TrimRight(text, "\r\n")
			} else {
				indent := strings.Repeat(f.opts.Indent, level)
				if !addedNewline {
					out = bytes.TrimRight(out, " \t")
					out = append(out, '\n')
					out = append(out, indent...)
				}
				text = strings.ReplaceAll(text, "\n", "\n"+indent)
			}
			out = append(out, text...)
			newline = true
			continue
		}

		if inlineParens {
			if tk.Text == ")" {
				out = trimTrailingSpaces(out)
				if inlineIndented {
					if len(stack) > 0 {
						stack = stack[:len(stack)-1]
					}
					level--
					out = f.newlineIndent(out, level)
				}
				inlineParens = false
				out = append(out, text...)
				out = append(out, ' ')
				continue
			}
			if tk.Text == "," && inlineCount >= maxInlineLength {
				inlineCount = 0
				newline = true
			}
			inlineCount += len(tk.Text)
		}

		switch {
		case tk.Text == "(":
			// Short parenthesized runs with no structure of their own
			// stay on one line.
			length := 0
			for j := 1; j <= maxInlineLookahead && i+j < len(tokens); j++ {
				next := tokens[i+j]
				if next.Text == ")" {
					inlineParens = true
					inlineCount = 0
					inlineIndented = false
					break
				}
				if next.Text == ";" || next.Text == "(" {
					break
				}
				if next.Kind == token.RESERVED_TOPLEVEL ||
					next.Kind == token.RESERVED_NEWLINE ||
					next.Kind.IsComment() {
					break
				}
				length += len(next.Text)
			}
			if inlineParens && length > maxInlineLength {
				increaseBlock = true
				inlineIndented = true
				newline = true
			}
			if !wsBefore(tk) {
				out = trimTrailingSpaces(out)
			}
			if !inlineParens {
				increaseBlock = true
				newline = true
			}

		case tk.Text == ")":
			out = trimTrailingSpaces(out)
			level--
			// Close the block and any clause indents opened inside it.
			for len(stack) > 0 {
				popped := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if popped == indentSpecial {
					level--
					continue
				}
				break
			}
			if level < 0 {
				level = 0
			}
			if !addedNewline {
				out = f.newlineIndent(out, level)
			}

		case tk.Kind == token.RESERVED_TOPLEVEL:
			increaseSpecial = true
			if len(stack) > 0 && stack[len(stack)-1] == indentSpecial {
				level--
				stack = stack[:len(stack)-1]
			}
			newline = true
			if !addedNewline {
				out = f.newlineIndent(out, level)
			} else {
				// The indent was written for the old level.
				out = bytes.TrimRight(out, f.opts.Indent)
				out = append(out, strings.Repeat(f.opts.Indent, level)...)
			}
			if strings.EqualFold(text, "LIMIT") && !inlineParens {
				clauseLimit = true
			}

		case clauseLimit && tk.Text != "," && tk.Kind != token.NUMBER:
			clauseLimit = false

		case tk.Text == "," && !inlineParens:
			// The first comma of a LIMIT clause stays inline
			// ("LIMIT 10, 20"); every other comma ends the line.
			if clauseLimit {
				newline = false
				clauseLimit = false
			} else {
				newline = true
			}

		case tk.Kind == token.RESERVED_NEWLINE:
			if !addedNewline {
				out = f.newlineIndent(out, level)
			}

		case tk.Kind == token.BOUNDARY:
			// Boundary runs that were adjacent in the source stay
			// glued ("!=", "||").
			if i > 0 && tokens[i-1].Kind == token.BOUNDARY && !wsBefore(tk) {
				out = trimTrailingSpaces(out)
			}
		}

		if tk.Text == "." || tk.Text == "," || tk.Text == ";" {
			out = trimTrailingSpaces(out)
		}
		out = append(out, text...)
		out = append(out, ' ')
		if tk.Text == "(" || tk.Text == "." {
			out = trimTrailingSpaces(out)
		}
		if tk.Text == "-" && i+1 < len(tokens) && tokens[i+1].Kind == token.NUMBER && i > 0 {
			switch tokens[i-1].Kind {
			case token.QUOTED_STRING, token.BACKTICK_QUOTED, token.WORD, token.NUMBER:
			default:
				out = trimTrailingSpaces(out)
			}
		}
	}

	for _, kind := range stack {
		if kind == indentBlock {
			out = bytes.TrimRight(out, " \t")
			out = append(out, "\n-- WARNING: unclosed parentheses or section"...)
			break
		}
	}

	return strings.TrimSpace(string(out)), nil
}

// newlineIndent ends the current line and opens one at the given level.
// Trailing separator spaces never survive a line break.
func (f *Formatter) newlineIndent(out []byte, level int) []byte {
	out = bytes.TrimRight(out, " \t")
	out = append(out, '\n')
	for i := 0; i < level; i++ {
		out = append(out, f.opts.Indent...)
	}
	return out
}

func trimTrailingSpaces(out []byte) []byte {
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	return out
}
