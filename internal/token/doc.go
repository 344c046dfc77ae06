// Package token lexes Kconfig input into a stream of shell-like tokens.
// Newlines are significant and surface as tokens of their own; all other
// whitespace only separates tokens. The stream supports exactly one token of
// pushback, which is what the recursive-descent parser needs to stop an
// option block on the first token that does not belong to it.
package token
