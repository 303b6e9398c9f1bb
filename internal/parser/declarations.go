package parser

import (
	"github.com/cpp2alt/parsecore/internal/ast"
	"github.com/cpp2alt/parsecore/internal/token"
)

// parseDeclaration implements `identifier ':' type? ('=' initializer)?
// ';'?`. Step 1 is the statement/declaration disambiguation point: a
// speculative name followed by anything other than ':' rewinds and
// reports no match, letting parseStatement fall through to
// expression-statement instead.
func (p *Parser) parseDeclaration(semicolonRequired bool) *ast.Declaration {
	mark := p.cur.mark()

	name := p.parseUnqualifiedId()
	if name == nil {
		p.cur.reset(mark)
		return nil
	}

	if p.cur.current().Kind != token.Colon {
		p.cur.reset(mark)
		return nil
	}
	p.cur.advance(1) // consume ':'

	decl := &ast.Declaration{Name: name}

	if params := p.parseParameterDeclarationList(); params != nil {
		decl.Kind = ast.DeclFunction
		decl.Parameters = params
	} else {
		decl.Kind = ast.DeclObject
		decl.ObjectType = p.parseIdExpression() // never nil; Empty on elided type
	}

	if p.cur.current().Kind != token.Assign {
		if p.cur.current().Kind == token.Semicolon {
			p.cur.advance(1)
			return decl
		}

		if semicolonRequired {
			p.cur.error("missing semicolon at end of declaration")
			return nil
		}

		return decl
	}

	p.cur.advance(1) // consume '='

	init := p.parseStatement(semicolonRequired)
	if init == nil {
		p.cur.error("ill-formed initializer")
		return nil
	}

	decl.Initializer = init

	return decl
}

// parseParameterDeclaration optionally consumes one passing-style
// word and one this-specifier word, then a nested declaration with
// no semicolon expected.
func (p *Parser) parseParameterDeclaration() *ast.ParameterDeclaration {
	pos := p.cur.current().Pos

	style := ast.PassIn
	if isPassingStyleWord(p.cur.current()) {
		style = passingStyleFromText(p.cur.current().Text)
		p.cur.advance(1)
	}

	this := ast.ThisNone
	if isThisSpecifierWord(p.cur.current()) {
		this = thisSpecifierFromText(p.cur.current().Text)
		p.cur.advance(1)
	}

	decl := p.parseDeclaration(false)
	if decl == nil {
		return nil
	}

	return &ast.ParameterDeclaration{Pos: pos, Style: style, This: this, Decl: decl}
}

// parseParameterDeclarationList requires '(', a comma-separated
// (possibly empty) sequence of parameter declarations, then ')'. A
// parameter that fails to parse is a hard error: the loop stops
// trying further parameters rather than spinning on the same
// unparsable token (§9, "likely source bug" note on the upstream
// grammar), but the enclosing parens are still recorded when present.
func (p *Parser) parseParameterDeclarationList() *ast.ParameterDeclarationList {
	if p.cur.current().Kind != token.LeftParen {
		return nil
	}

	list := &ast.ParameterDeclarationList{Open: p.cur.current().Pos}
	p.cur.advance(1)

	if p.cur.current().Kind != token.RightParen {
		for {
			param := p.parseParameterDeclaration()
			if param == nil {
				p.cur.error("expected parameter declaration")
				break
			}

			list.Parameters = append(list.Parameters, param)

			if p.cur.current().Kind == token.Comma {
				p.cur.advance(1)
				continue
			}
			break
		}
	}

	if p.cur.current().Kind == token.RightParen {
		list.Close = p.cur.current().Pos
		p.cur.advance(1)
	} else {
		p.cur.error("expected ')'")
	}

	return list
}
