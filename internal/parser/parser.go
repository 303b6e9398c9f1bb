// Package parser implements the recursive-descent grammar driver
// over the layered expression precedence chain described in the
// package's design documentation: a token cursor, a family of
// mutually recursive production methods, and the tagged-sum-typed
// tree they build (internal/ast).
//
// A Parser is single-threaded and synchronous. It owns its parse tree
// and its cursor state; the cursor's token borrow is reset at the
// start of every Parse call and is invalid once that call returns.
package parser

import (
	"fmt"

	"github.com/cpp2alt/parsecore/internal/ast"
	"github.com/cpp2alt/parsecore/internal/grammarver"
	"github.com/cpp2alt/parsecore/internal/token"
)

// Parser drives the grammar over one token batch at a time,
// accumulating every batch's declarations into one persistent
// translation unit root.
type Parser struct {
	sink token.Sink
	root *ast.TranslationUnit
	cur  *cursor
}

// New constructs a parser that reports diagnostics to sink.
func New(sink token.Sink) *Parser {
	return &Parser{
		sink: sink,
		root: &ast.TranslationUnit{},
	}
}

// Parse consumes tokens as a sequence of top-level declarations and
// splices them into the persistent root. It returns false if the
// cursor did not reach end-of-input after the last declaration
// parsed, or if any production along the way reported an error.
//
// The cursor over tokens is only used during this call. Tree nodes
// keep pointers into the slice's backing array rather than copies, so
// the tree stays usable after the call and reflects any later change
// a caller makes to that array.
func (p *Parser) Parse(tokens []token.Token) bool {
	p.cur = newCursor(tokens, p.sink)

	for {
		decl := p.parseDeclaration(true)
		if decl == nil {
			break
		}
		p.root.Declarations = append(p.root.Declarations, decl)
	}

	if !p.cur.atEnd() {
		p.cur.error("unexpected text at end")
		return false
	}

	return !p.cur.reported
}

// Tree returns the accumulated translation unit root. It is always
// non-nil, even before the first successful Parse call.
func (p *Parser) Tree() *ast.TranslationUnit {
	return p.root
}

// NewForLexerVersion constructs a parser after checking that
// lexerVersion (the grammar revision the upstream lexer advertises)
// is one this parser core still understands. Use New directly when
// the caller has already established compatibility out of band.
func NewForLexerVersion(sink token.Sink, lexerVersion string) (*Parser, error) {
	if err := grammarver.CheckCompatible(lexerVersion); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return New(sink), nil
}

// Walk drives a full traversal of the accumulated tree from the root
// at depth 0.
func (p *Parser) Walk(v ast.Visitor) {
	p.root.Visit(v, 0)
}
