// Package fixture loads pre-lexed token batches from YAML files. It
// exists purely as test and demo tooling: the parser core never reads
// source text or files itself (that's the upstream lexer's job), but
// exercising the grammar by hand is much easier against a short YAML
// token list than against a full lexer run, so both the test suite
// and the cmd/cpp2parse demo share this loader.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpp2alt/parsecore/internal/token"
)

// entry mirrors one token in the YAML document.
type entry struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
	Line int    `yaml:"line"`
	Col  int    `yaml:"col"`
}

// document is the top-level YAML shape: a flat, ordered token list.
type document struct {
	Tokens []entry `yaml:"tokens"`
}

var kindByName = map[string]token.Kind{
	"eof":               token.EOF,
	"identifier":        token.Identifier,
	"integer-literal":   token.IntegerLiteral,
	"float-literal":     token.FloatLiteral,
	"string-literal":    token.StringLiteral,
	"char-literal":      token.CharLiteral,
	"keyword":           token.Keyword,
	"(":                 token.LeftParen,
	")":                 token.RightParen,
	"[":                 token.LeftBracket,
	"]":                 token.RightBracket,
	"{":                 token.LeftBrace,
	"}":                 token.RightBrace,
	",":                 token.Comma,
	";":                 token.Semicolon,
	":":                 token.Colon,
	"::":                token.ColonColon,
	"=":                 token.Assign,
	"*=":                token.MultiplyAssign,
	"/=":                token.DivideAssign,
	"%=":                token.ModuloAssign,
	"+=":                token.PlusAssign,
	"-=":                token.MinusAssign,
	">>=":               token.RightShiftAssign,
	"<<=":               token.LeftShiftAssign,
	"==":                token.Equal,
	"!=":                token.NotEqual,
	"<":                 token.Less,
	"<=":                token.LessEqual,
	">":                 token.Greater,
	">=":                token.GreaterEqual,
	"<=>":               token.Compare,
	"||":                token.LogicalOr,
	"&&":                token.LogicalAnd,
	"!":                 token.Not,
	"<<":                token.LeftShift,
	">>":                token.RightShift,
	"+":                 token.Plus,
	"-":                 token.Minus,
	"*":                 token.Star,
	"/":                 token.Slash,
	"%":                 token.Percent,
	"++":                token.PlusPlus,
	"--":                token.MinusMinus,
	"^":                 token.Caret,
	"&":                 token.Ampersand,
	"~":                 token.Tilde,
	"$":                 token.Dollar,
	".":                 token.Dot,
}

// Parse decodes a YAML document's bytes into a token slice suitable
// for Parser.Parse. The cursor (internal/parser) treats end-of-input
// as "no tokens left in the slice" (spec §4.1's at_end() is a pure
// index check), so a fixture carries only real content tokens; an
// explicit "eof" entry is accepted for a document author who wants one
// on the page for symmetry with the lexer's token-kind enum, but it is
// never synthesized here.
func Parse(data []byte) ([]token.Token, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}

	tokens := make([]token.Token, 0, len(doc.Tokens))
	for i, e := range doc.Tokens {
		kind, ok := kindByName[e.Kind]
		if !ok {
			return nil, fmt.Errorf("fixture: token %d: unknown kind %q", i, e.Kind)
		}
		if kind == token.EOF {
			continue
		}
		tokens = append(tokens, token.Token{
			Kind: kind,
			Text: e.Text,
			Pos:  token.Position{Line: e.Line, Column: e.Col},
		})
	}

	return tokens, nil
}

// Load reads and decodes a YAML token fixture from path.
func Load(path string) ([]token.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return Parse(data)
}
