package parser

import (
	"github.com/cpp2alt/parsecore/internal/ast"
	"github.com/cpp2alt/parsecore/internal/token"
)

// parseExpression is the thin top-level carrier: it parses one
// assignment-level binary expression and wraps it.
func (p *Parser) parseExpression() *ast.Expression {
	assign := p.parseBinaryLevel(ast.LevelAssignment)
	if assign == nil {
		return nil
	}
	return &ast.Expression{Assignment: assign}
}

// termBelow dispatches to the next-lower-precedence production for a
// given level, completing the ladder from §4.2. This single function
// plus the per-level operator predicates in matchOperator is the
// "one enum, one generic node type, one table" decomposition of the
// ten binary layers (design note §9a) rather than one hand-written
// type per layer.
func (p *Parser) termBelow(level ast.Level) ast.Expr {
	switch level {
	case ast.LevelAssignment:
		return p.levelExpr(ast.LevelLogicalOr)
	case ast.LevelLogicalOr:
		return p.levelExpr(ast.LevelLogicalAnd)
	case ast.LevelLogicalAnd:
		// Skips the commented-out bitwise layers in the upstream
		// grammar's source and falls straight through to equality,
		// matching its active (not its aspirational) behavior.
		return p.levelExpr(ast.LevelEquality)
	case ast.LevelEquality:
		return p.levelExpr(ast.LevelRelational)
	case ast.LevelRelational:
		return p.levelExpr(ast.LevelCompare)
	case ast.LevelCompare:
		return p.levelExpr(ast.LevelShift)
	case ast.LevelShift:
		return p.levelExpr(ast.LevelAdditive)
	case ast.LevelAdditive:
		return p.levelExpr(ast.LevelMultiplicative)
	case ast.LevelMultiplicative:
		return p.levelExpr(ast.LevelIsAs)
	case ast.LevelIsAs:
		if pre := p.parsePrefixExpression(); pre != nil {
			return pre
		}
		return nil
	default:
		return nil
	}
}

// levelExpr wraps parseBinaryLevel's *ast.BinaryExpression result as
// the ast.Expr interface, or returns a true nil interface value when
// there was no match (a bare *T nil would not compare equal to nil
// once boxed).
func (p *Parser) levelExpr(level ast.Level) ast.Expr {
	node := p.parseBinaryLevel(level)
	if node == nil {
		return nil
	}
	return node
}

// parseBinaryLevel implements one rung of the ladder: match one term
// at the next-lower level, then greedily fold (operator, term) pairs
// for as long as the level's operator predicate matches. If the head
// term fails, the whole level fails; this consumes nothing, except
// that prefix operators whose operand is missing stay consumed (and
// are reported by parsePrefixExpression). If a
// trailing term fails after an operator was consumed, the operator
// is reported as dangling and the fold stops; the partial node (head
// plus whatever terms did parse) is still returned.
func (p *Parser) parseBinaryLevel(level ast.Level) *ast.BinaryExpression {
	head := p.termBelow(level)
	if head == nil {
		return nil
	}

	node := &ast.BinaryExpression{Level: level, Head: head}

	for !p.cur.atEnd() && matchOperator(level, p.cur.current()) {
		opPtr := p.cur.currentPtr()
		p.cur.advance(1)

		term := p.termBelow(level)
		if term == nil {
			p.cur.error("expected operand after operator")
			break
		}

		node.Terms = append(node.Terms, ast.BinaryTerm{Op: opPtr, Expr: term})
	}

	return node
}

// parsePrefixExpression matches zero or more prefix operators (just
// `!`) followed by a postfix expression.
func (p *Parser) parsePrefixExpression() *ast.PrefixExpression {
	var ops []*token.Token

	for !p.cur.atEnd() && isPrefixOperator(p.cur.current()) {
		ops = append(ops, p.cur.currentPtr())
		p.cur.advance(1)
	}

	postfix := p.parsePostfixExpression()
	if postfix == nil {
		if len(ops) > 0 {
			p.cur.error("expected operand after prefix operator")
		}
		return nil
	}

	return &ast.PrefixExpression{Ops: ops, Expr: postfix}
}

// parsePostfixExpression extends a primary expression with any mix of
// postfix unary operators, [expression-list] subscripts, and
// (expression-list?) calls.
func (p *Parser) parsePostfixExpression() *ast.PostfixExpression {
	primary := p.parsePrimaryExpression()
	if primary == nil {
		return nil
	}

	node := &ast.PostfixExpression{Primary: primary}

	for !p.cur.atEnd() {
		cur := p.cur.current()

		switch {
		case isPostfixUnaryOperator(cur):
			opPtr := p.cur.currentPtr()
			p.cur.advance(1)
			node.Ops = append(node.Ops, ast.PostfixOp{Operator: opPtr})

		case cur.Kind == token.LeftBracket:
			opPtr := p.cur.currentPtr()
			p.cur.advance(1)

			list := p.parseExpressionList()
			if list == nil {
				p.cur.error("empty subscript")
				list = &ast.ExpressionList{}
			}

			if p.cur.current().Kind == token.RightBracket {
				p.cur.advance(1)
			} else {
				p.cur.error("expected ']'")
			}

			node.Ops = append(node.Ops, ast.PostfixOp{Operator: opPtr, Args: list})

		case cur.Kind == token.LeftParen:
			opPtr := p.cur.currentPtr()
			p.cur.advance(1)

			var list *ast.ExpressionList
			if p.cur.current().Kind != token.RightParen {
				list = p.parseExpressionList()
				if list == nil {
					p.cur.error("ill-formed argument list")
					list = &ast.ExpressionList{}
				}
			} else {
				list = &ast.ExpressionList{}
			}

			if p.cur.current().Kind == token.RightParen {
				p.cur.advance(1)
			} else {
				p.cur.error("expected ')'")
			}

			node.Ops = append(node.Ops, ast.PostfixOp{Operator: opPtr, Args: list})

		default:
			return node
		}
	}

	return node
}

// parsePrimaryExpression matches exactly one of a literal-or-identifier
// token, or a mandatory parenthesized expression list.
func (p *Parser) parsePrimaryExpression() *ast.PrimaryExpression {
	if p.cur.atEnd() {
		return nil
	}

	cur := p.cur.current()

	switch cur.Kind {
	case token.LeftParen:
		p.cur.advance(1)

		list := p.parseExpressionList()
		if list == nil {
			p.cur.error("expected expression list")
			list = &ast.ExpressionList{}
		}

		if p.cur.current().Kind == token.RightParen {
			p.cur.advance(1)
		} else {
			p.cur.error("expected ')'")
		}

		return &ast.PrimaryExpression{Kind: ast.PrimaryParenthesized, List: list}

	case token.Identifier, token.Keyword, token.IntegerLiteral, token.FloatLiteral, token.StringLiteral, token.CharLiteral:
		ptr := p.cur.currentPtr()
		p.cur.advance(1)

		return &ast.PrimaryExpression{Kind: ast.PrimaryIdentifier, Identifier: ptr}

	default:
		return nil
	}
}

// parseExpressionList parses one or more comma-separated expressions,
// each optionally marked `out`. This is one of the grammar's three
// rewind sites: if the first element fails, the cursor is restored to
// the list's entry position.
func (p *Parser) parseExpressionList() *ast.ExpressionList {
	mark := p.cur.mark()

	first, ok := p.parseExpressionListElement()
	if !ok {
		p.cur.reset(mark)
		return nil
	}

	list := &ast.ExpressionList{Elements: []ast.ExpressionListElement{first}}

	for p.cur.current().Kind == token.Comma {
		p.cur.advance(1)

		el, ok := p.parseExpressionListElement()
		if !ok {
			p.cur.error("expected expression after ','")
			break
		}

		list.Elements = append(list.Elements, el)
	}

	return list
}

func (p *Parser) parseExpressionListElement() (ast.ExpressionListElement, bool) {
	style := ast.PassIn
	if isWord(p.cur.current(), kwOut) {
		style = ast.PassOut
		p.cur.advance(1)
	}

	expr := p.parseExpression()
	if expr == nil {
		return ast.ExpressionListElement{}, false
	}

	return ast.ExpressionListElement{Style: style, Expr: expr}, true
}
