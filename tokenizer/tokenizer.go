// Package tokenizer splits raw SQL text into classified tokens.
//
// A Tokenizer is compiled once from a Config of keyword lists and then
// applied to any number of inputs. Tokenization is lossless: the
// concatenated texts of the returned tokens reproduce the input byte
// for byte, including whitespace and comments. Malformed SQL is never
// an error at this layer; unterminated strings and comments simply run
// to the end of the input.
package tokenizer

import (
	"fmt"

	"github.com/robomillo/sql-formatter/token"
)

// Config holds the four keyword lists a Tokenizer is compiled from.
// Matching against every list is case-insensitive and entries may be
// multi-word phrases joined by single spaces ("GROUP BY"). A nil or
// empty list means that category never matches; a blank entry is a
// construction error.
type Config struct {
	ReservedWords         []string
	ReservedToplevelWords []string
	ReservedNewlineWords  []string
	FunctionWords         []string
}

// Tokenizer is an immutable, compiled rule chain. It holds no per-call
// state and is safe for concurrent use.
type Tokenizer struct {
	rules []matcher
}

// New compiles cfg into a Tokenizer.
func New(cfg Config) (*Tokenizer, error) {
	toplevel, err := keywordPattern("reserved toplevel words", cfg.ReservedToplevelWords, wordEnd)
	if err != nil {
		return nil, err
	}
	newline, err := keywordPattern("reserved newline words", cfg.ReservedNewlineWords, wordEnd)
	if err != nil {
		return nil, err
	}
	reserved, err := keywordPattern("reserved words", cfg.ReservedWords, wordEnd)
	if err != nil {
		return nil, err
	}
	functions, err := keywordPattern("function words", cfg.FunctionWords, `\(`)
	if err != nil {
		return nil, err
	}

	// Chain order is the contract: each rule only ever sees input
	// every rule above it declined.
	return &Tokenizer{rules: []matcher{
		regexpMatcher{token.WHITESPACE, whitespaceRe},
		commentMatcher{lineCommentRe, blockCommentRe},
		quoteMatcher{quotedRe},
		variableMatcher{quotedRe, variableNameRe},
		regexpMatcher{token.NUMBER, numberRe},
		regexpMatcher{token.BOUNDARY, boundaryRe},
		reservedMatcher{toplevel, newline, reserved},
		functionMatcher{functions},
		regexpMatcher{token.WORD, wordRe},
	}}, nil
}

// Tokenize scans input left to right and returns its covering token
// sequence. The result is empty exactly when input is empty.
func (t *Tokenizer) Tokenize(input string) (token.Tokens, error) {
	var (
		tokens token.Tokens
		prev   token.Token
	)
	for rest := input; rest != ""; {
		tok, ok := t.next(rest, prev)
		if !ok {
			return nil, &LexError{Offset: len(input) - len(rest), Near: near(rest)}
		}
		tokens = append(tokens, tok)
		prev = tok
		rest = rest[len(tok.Text):]
	}
	return tokens, nil
}

// next runs the rule chain; the first rule to produce a non-empty
// match wins.
func (t *Tokenizer) next(rest string, prev token.Token) (token.Token, bool) {
	for _, m := range t.rules {
		if tok, ok := m.match(rest, prev); ok {
			return tok, true
		}
	}
	return token.Token{}, false
}

// LexError reports that the scan stalled with input left over. Every
// remainder is claimed by some rule: quote openers by the quote rule,
// which runs an unterminated string to end of input, and everything
// else by the fallback word at the latest. This is a guard against a
// miscompiled chain; the scanner checks rather than loop forever.
type LexError struct {
	Offset int    // byte offset at which the scan stalled
	Near   string // the input just past Offset
}

func (e *LexError) Error() string {
	return fmt.Sprintf("tokenize: no rule matched at offset %d near %q", e.Offset, e.Near)
}

// near caps the remaining-input excerpt carried by a LexError.
func near(rest string) string {
	const max = 10
	if len(rest) > max {
		return rest[:max]
	}
	return rest
}
