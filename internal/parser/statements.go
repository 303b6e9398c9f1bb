package parser

import (
	"github.com/cpp2alt/parsecore/internal/ast"
	"github.com/cpp2alt/parsecore/internal/token"
)

// parseStatement dispatches in a fixed order: selection, compound,
// declaration, expression-statement. The first one to match wins; if
// none do, it returns nil.
func (p *Parser) parseStatement(semicolonRequired bool) ast.Statement {
	if s := p.parseSelectionStatement(); s != nil {
		return s
	}
	if s := p.parseCompoundStatement(); s != nil {
		return s
	}
	if s := p.parseDeclaration(semicolonRequired); s != nil {
		return s
	}
	if s := p.parseExpressionStatement(semicolonRequired); s != nil {
		return s
	}
	return nil
}

// parseExpressionStatement parses one expression. A present trailing
// ';' is consumed regardless; a missing one is only an error when the
// caller requires it.
func (p *Parser) parseExpressionStatement(semicolonRequired bool) *ast.ExpressionStatement {
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}

	stmt := &ast.ExpressionStatement{Expr: expr}

	if p.cur.current().Kind == token.Semicolon {
		p.cur.advance(1)
	} else if semicolonRequired {
		p.cur.error("missing semicolon at end of statement")
	}

	return stmt
}

// parseCompoundStatement requires '{', then zero or more
// statement(true) until '}'. Any inner statement that fails to parse
// reports an error and aborts the whole compound, returning nil.
func (p *Parser) parseCompoundStatement() *ast.CompoundStatement {
	if p.cur.current().Kind != token.LeftBrace {
		return nil
	}

	node := &ast.CompoundStatement{BraceOpen: p.cur.current().Pos}
	p.cur.advance(1)

	for p.cur.current().Kind != token.RightBrace {
		if p.cur.atEnd() {
			p.cur.error("expected '}'")
			return nil
		}

		stmt := p.parseStatement(true)
		if stmt == nil {
			p.cur.error("invalid statement in compound-statement")
			return nil
		}

		node.Statements = append(node.Statements, stmt)
	}

	p.cur.advance(1) // consume '}'

	return node
}

// parseSelectionStatement matches `if [constexpr] ( cond ) { ... }
// [else { ... }]`. The false-branch is always present: when the
// source omits the else, it's the synthetic empty compound at
// position (0,0).
func (p *Parser) parseSelectionStatement() *ast.SelectionStatement {
	if !isWord(p.cur.current(), kwIf) {
		return nil
	}

	ifPtr := p.cur.currentPtr()
	p.cur.advance(1)

	isConstexpr := false
	if isWord(p.cur.current(), kwConstexpr) {
		isConstexpr = true
		p.cur.advance(1)
	}

	cond := p.parseExpression()
	if cond == nil {
		p.cur.error("expected condition expression after 'if'")
	}

	trueBranch := p.parseCompoundStatement()
	if trueBranch == nil {
		p.cur.error("expected compound statement after if-condition")
		trueBranch = ast.EmptyCompoundStatement()
	}

	falseBranch := ast.EmptyCompoundStatement()
	if isWord(p.cur.current(), kwElse) {
		p.cur.advance(1)

		if fb := p.parseCompoundStatement(); fb != nil {
			falseBranch = fb
		} else {
			p.cur.error("expected compound statement after 'else'")
		}
	}

	return &ast.SelectionStatement{
		If:          ifPtr,
		IsConstexpr: isConstexpr,
		Condition:   cond,
		TrueBranch:  trueBranch,
		FalseBranch: falseBranch,
	}
}
