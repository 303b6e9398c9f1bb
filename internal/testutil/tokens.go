// Package testutil provides small helpers for building token slices by
// hand in tests across internal/parser, internal/ast, and
// internal/printer, without leaning on internal/fixture's YAML decoding
// for every hand-written case.
package testutil

import "github.com/cpp2alt/parsecore/internal/token"

// Tok is one token.Kind/text pair, lifted to a position by Tokens.
type Tok struct {
	Kind token.Kind
	Text string
}

// Tokens lays out a sequence of (kind, text) pairs on line 1, one
// column per entry. No trailing EOF marker is appended: the cursor's
// at_end() (spec §4.1) is a pure "no tokens left" check, so a token
// slice carries only real content, exactly like internal/fixture's
// output. Column values are arbitrary but strictly increasing, which
// is all the position monotonicity property in spec.md §8 requires of
// test fixtures.
func Tokens(toks ...Tok) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for i, t := range toks {
		out = append(out, token.Token{
			Kind: t.Kind,
			Text: t.Text,
			Pos:  token.Position{Line: 1, Column: i + 1},
		})
	}
	return out
}

// Ident builds an identifier Tok.
func Ident(text string) Tok { return Tok{Kind: token.Identifier, Text: text} }

// Kw builds a keyword Tok (used for contextual keywords recognized by
// text comparison, e.g. "if", "out", "is").
func Kw(text string) Tok { return Tok{Kind: token.Keyword, Text: text} }

// Int builds an integer-literal Tok.
func Int(text string) Tok { return Tok{Kind: token.IntegerLiteral, Text: text} }

// Punct builds a Tok for a fixed-kind punctuation/operator token,
// using that kind's canonical spelling as its text.
func Punct(kind token.Kind) Tok { return Tok{Kind: kind, Text: kind.String()} }
