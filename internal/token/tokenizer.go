package token

import (
	"github.com/vk/kconfgo/internal/diag"
)

// Newline is the token produced for every line break in the input.
const Newline = "\n"

// EOF is the token returned once the input is exhausted.
const EOF = ""

// Tokenizer turns one input stream into a left-to-right token sequence.
// Tokens are plain strings: words (letters, digits, '_', '-'), quoted strings
// inclusive of their quotes, the newline token, or a single punctuation
// character. A '#' starts a comment running to end of line; the comment is
// discarded but its terminating newline is still produced.
type Tokenizer struct {
	name  string
	input string
	pos   int
	line  int

	current string
	curLine int

	pending     string
	pendingLine int
	hasPending  bool

	diags *diag.List
}

// New creates a Tokenizer over input. The name is used for diagnostics only.
// The diagnostic list may be shared with other phases of the same run.
func New(name, input string, diags *diag.List) *Tokenizer {
	if diags == nil {
		diags = &diag.List{}
	}
	return &Tokenizer{
		name:    name,
		input:   input,
		line:    1,
		curLine: 1,
		diags:   diags,
	}
}

// Next returns the next token, or EOF at end of input. It never fails.
func (t *Tokenizer) Next() string {
	if t.hasPending {
		t.hasPending = false
		t.current = t.pending
		t.curLine = t.pendingLine
		return t.current
	}
	t.current, t.curLine = t.scan()
	return t.current
}

// Current returns the last token produced by Next. Pushing a token back does
// not change it.
func (t *Tokenizer) Current() string {
	return t.current
}

// PushBack buffers tok so the next call to Next returns it again. Only one
// token may be pending; pushing back twice without an intervening Next is a
// programmer error and panics.
func (t *Tokenizer) PushBack(tok string) {
	if t.hasPending {
		panic("token: PushBack called twice without an intervening Next")
	}
	t.pending = tok
	t.pendingLine = t.curLine
	t.hasPending = true
}

// AtNewline reports whether the next token is the newline token, without
// consuming it.
func (t *Tokenizer) AtNewline() bool {
	if t.hasPending {
		return t.pending == Newline
	}
	tok, line := t.scan()
	t.pending = tok
	t.pendingLine = line
	t.hasPending = true
	return tok == Newline
}

// AtEOF reports whether the last token produced was EOF.
func (t *Tokenizer) AtEOF() bool {
	return t.current == EOF && !t.hasPending && t.pos >= len(t.input)
}

// FileName returns the name the tokenizer was created with.
func (t *Tokenizer) FileName() string {
	return t.name
}

// Line returns the 1-based line number of the current token.
func (t *Tokenizer) Line() int {
	return t.curLine
}

// Errorf records a diagnostic anchored at the current token's position.
// It does not print and does not stop tokenizing.
func (t *Tokenizer) Errorf(format string, args ...any) {
	t.diags.Addf(t.name, t.curLine, format, args...)
}

// Diags returns the diagnostic list the tokenizer reports into.
func (t *Tokenizer) Diags() *diag.List {
	return t.diags
}

// scan produces the next raw token from the input.
func (t *Tokenizer) scan() (string, int) {
	// Skip insignificant whitespace and comments. Newlines stop the skip:
	// they are tokens in their own right.
	for t.pos < len(t.input) {
		switch c := t.input[t.pos]; {
		case c == ' ' || c == '\t' || c == '\r':
			t.pos++
		case c == '#':
			for t.pos < len(t.input) && t.input[t.pos] != '\n' {
				t.pos++
			}
		default:
			goto scanToken
		}
	}
	return EOF, t.line

scanToken:
	line := t.line
	c := t.input[t.pos]

	switch {
	case c == '\n':
		t.pos++
		t.line++
		return Newline, line
	case c == '\'' || c == '"':
		return t.scanQuoted(c), line
	case isWordChar(c):
		start := t.pos
		for t.pos < len(t.input) && isWordChar(t.input[t.pos]) {
			t.pos++
		}
		return t.input[start:t.pos], line
	default:
		// Any other character stands alone, the way shell lexers treat
		// punctuation. The selection-list reader relies on ',' and ';'
		// surfacing as tokens.
		t.pos++
		return string(c), line
	}
}

// scanQuoted reads a quoted string inclusive of its delimiters. An
// unterminated string stops at end of line without consuming the newline;
// the parser's string validation reports it.
func (t *Tokenizer) scanQuoted(quote byte) string {
	start := t.pos
	t.pos++ // opening quote
	for t.pos < len(t.input) && t.input[t.pos] != quote && t.input[t.pos] != '\n' {
		t.pos++
	}
	if t.pos < len(t.input) && t.input[t.pos] == quote {
		t.pos++
	}
	return t.input[start:t.pos]
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}
