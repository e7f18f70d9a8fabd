package tokenizer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/robomillo/sql-formatter/token"
)

// A matcher recognizes one token class at the start of the remaining
// input. Matchers hold nothing but compiled patterns; the transient
// scan context travels in the arguments, so a chain can be shared
// freely across goroutines. prev is the most recently emitted token
// (whitespace included), for the rules that care what came before.
type matcher interface {
	match(rest string, prev token.Token) (token.Token, bool)
}

// Character classes shared by several rules. The quote class holds the
// four characters that can open a quoted string; the boundary class is
// the fixed punctuation set.
const (
	quoteClass    = "[`\"'\\[]"
	boundaryClass = `[,;:)(.=<>+\-*/!^%|&#]`

	// wordEnd bounds a keyword; tokenEnd additionally stops at quote
	// openers and bounds numbers and fallback words.
	wordEnd  = `(?:$|\s|` + boundaryClass + `)`
	tokenEnd = `(?:$|\s|` + quoteClass + `|` + boundaryClass + `)`

	// The four quoting styles. Doubling a closing delimiter escapes it,
	// which the patterns express by gluing adjacent delimited segments
	// into one match; backslash escapes are honored inside ' and "
	// strings; a missing closing delimiter runs to end of input, even
	// when the input ends in the middle of a backslash escape.
	backtickQuote = "(?:`[^`]*(?:`|$))+"
	bracketQuote  = `\[[^\]]*(?:\]|$)(?:\][^\]]*(?:\]|$))*`
	doubleQuote   = `(?:"[^"\\]*(?:\\.[^"\\]*)*(?:"|\\?$))+`
	singleQuote   = `(?:'[^'\\]*(?:\\.[^'\\]*)*(?:'|\\?$))+`
)

// Pre-compiled patterns for the fixed rules; only the keyword rules
// depend on configuration. Each anchors at the start and captures the
// token text as group 1, matching but not capturing any terminator
// context after it.
var (
	whitespaceRe   = regexp.MustCompile(`^(\s+)`)
	lineCommentRe  = regexp.MustCompile(`^((?:--|#)[^\n]*(?:\n|$))`)
	blockCommentRe = regexp.MustCompile(`(?s)^(/\*.*?(?:\*/|$))`)
	quotedRe       = regexp.MustCompile(`(?s)^(` + backtickQuote + `|` + bracketQuote + `|` + doubleQuote + `|` + singleQuote + `)`)
	variableNameRe = regexp.MustCompile(`^[A-Za-z0-9._$]+`)
	numberRe       = regexp.MustCompile(`^((?:-\s*)?[0-9]+(?:\.[0-9]+)?|0x[0-9a-fA-F]+|0b[01]+)` + tokenEnd)
	boundaryRe     = regexp.MustCompile(`^(` + boundaryClass + `)`)
	wordRe         = regexp.MustCompile(`^(.*?)` + tokenEnd)
)

// regexpMatcher emits capture group 1 of its pattern as a token of a
// fixed kind. An empty group is treated as no match; a rule must
// consume input to win.
type regexpMatcher struct {
	kind token.Kind
	re   *regexp.Regexp
}

func (m regexpMatcher) match(rest string, _ token.Token) (token.Token, bool) {
	loc := m.re.FindStringSubmatchIndex(rest)
	if loc == nil || loc[2] == loc[3] {
		return token.Token{}, false
	}
	return token.Token{Kind: m.kind, Text: rest[loc[2]:loc[3]]}, true
}

// commentMatcher handles both comment forms. A line comment starts
// with # or -- and includes its terminating newline; a block comment
// runs to the first */ or to end of input.
type commentMatcher struct {
	line  *regexp.Regexp
	block *regexp.Regexp
}

func (m commentMatcher) match(rest string, _ token.Token) (token.Token, bool) {
	if c := m.line.FindString(rest); c != "" {
		return token.Token{Kind: token.LINE_COMMENT, Text: c}, true
	}
	if c := m.block.FindString(rest); c != "" {
		return token.Token{Kind: token.BLOCK_COMMENT, Text: c}, true
	}
	return token.Token{}, false
}

// quoteMatcher matches all four quoting styles; the opening character
// decides the kind.
type quoteMatcher struct {
	re *regexp.Regexp
}

func (m quoteMatcher) match(rest string, _ token.Token) (token.Token, bool) {
	q := m.re.FindString(rest)
	if q == "" {
		return token.Token{}, false
	}
	kind := token.QUOTED_STRING
	if rest[0] == '`' || rest[0] == '[' {
		kind = token.BACKTICK_QUOTED
	}
	return token.Token{Kind: kind, Text: q}, true
}

// variableMatcher matches an @ or : sigil followed by either a quoted
// string or a run of identifier characters. A bare sigil with nothing
// usable after it is left for later rules.
type variableMatcher struct {
	quoted *regexp.Regexp
	ident  *regexp.Regexp
}

func (m variableMatcher) match(rest string, _ token.Token) (token.Token, bool) {
	if len(rest) < 2 || (rest[0] != '@' && rest[0] != ':') {
		return token.Token{}, false
	}
	name := m.quoted.FindString(rest[1:])
	if name == "" {
		name = m.ident.FindString(rest[1:])
	}
	if name == "" {
		return token.Token{}, false
	}
	return token.Token{Kind: token.VARIABLE, Text: rest[:1+len(name)]}, true
}

// reservedMatcher tries the three keyword categories in priority
// order. A keyword straight after a "." is a member of a dotted name,
// never a keyword, so the whole matcher steps aside there.
type reservedMatcher struct {
	toplevel *regexp.Regexp
	newline  *regexp.Regexp
	plain    *regexp.Regexp
}

func (m reservedMatcher) match(rest string, prev token.Token) (token.Token, bool) {
	if prev.Text == "." {
		return token.Token{}, false
	}
	if tok, ok := matchKeyword(m.toplevel, token.RESERVED_TOPLEVEL, rest); ok {
		return tok, true
	}
	if tok, ok := matchKeyword(m.newline, token.RESERVED_NEWLINE, rest); ok {
		return tok, true
	}
	return matchKeyword(m.plain, token.RESERVED, rest)
}

// functionMatcher matches a configured function name only when an
// opening parenthesis follows immediately. The parenthesis is not
// consumed; it becomes the next BOUNDARY token.
type functionMatcher struct {
	re *regexp.Regexp
}

func (m functionMatcher) match(rest string, _ token.Token) (token.Token, bool) {
	return matchKeyword(m.re, token.RESERVED, rest)
}

// matchKeyword emits group 1 of a keyword pattern. A nil pattern means
// the word list was empty and the category never matches.
func matchKeyword(re *regexp.Regexp, kind token.Kind, rest string) (token.Token, bool) {
	if re == nil {
		return token.Token{}, false
	}
	loc := re.FindStringSubmatchIndex(rest)
	if loc == nil || loc[2] == loc[3] {
		return token.Token{}, false
	}
	return token.Token{Kind: kind, Text: rest[loc[2]:loc[3]]}, true
}

// keywordPattern compiles a word list into a case-insensitive
// alternation anchored at the start of input and bounded by
// terminator, with the matched word as group 1. Spaces inside a phrase
// match any whitespace run. Longer alternatives are placed first:
// regexp alternation takes the first branch that fits, and "GROUP BY"
// must win over "GROUP". Returns nil for an empty list.
func keywordPattern(name string, words []string, terminator string) (*regexp.Regexp, error) {
	if len(words) == 0 {
		return nil, nil
	}
	alts := make([]string, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			return nil, fmt.Errorf("tokenizer: %s contain a blank entry", name)
		}
		alts = append(alts, strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`))
	}
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	return regexp.Compile(`(?i)^(` + strings.Join(alts, `|`) + `)` + terminator)
}
