// Package ast defines the syntax-tree node family the parser builds
// and the visitor protocol external stages use to walk it.
//
// Every node is owned by exactly one parent (or by the caller, for the
// translation unit root); there is no sharing and no cycles. Tokens
// are borrowed back-references into the slice the parser was given
// and must outlive any tree built from them.
package ast

import "github.com/cpp2alt/parsecore/internal/token"

// Node is satisfied by every tree element, including the leaf name
// nodes but excluding raw tokens (which the visitor sees through
// Visitor.StartToken instead of a Node method).
type Node interface {
	// Position returns the position of the node's first source-derived
	// token, or the zero Position for a synthetic node.
	Position() token.Position

	// Visit drives visitor.Start, the node's children in declaration
	// order, and visitor.End, in that sequence.
	Visit(v Visitor, depth int)
}

// Statement is implemented by every alternative of the statement
// variant: expression statements, compound statements, selection
// statements, and (nested) declarations.
type Statement interface {
	Node
	isStatement()
}

// Expr is implemented by every expression-tree node, from the
// assignment-level carrier down through the primary expression.
type Expr interface {
	Node
	isExpr()
}

// Visitor is the structural consumer protocol: any type providing
// these methods can walk a tree without the parser knowing what it
// does with it. BaseVisitor gives a no-op implementation to embed
// when a visitor only cares about a handful of node kinds.
type Visitor interface {
	StartTranslationUnit(n *TranslationUnit, depth int)
	EndTranslationUnit(n *TranslationUnit, depth int)

	StartDeclaration(n *Declaration, depth int)
	EndDeclaration(n *Declaration, depth int)

	StartParameterDeclarationList(n *ParameterDeclarationList, depth int)
	EndParameterDeclarationList(n *ParameterDeclarationList, depth int)

	StartParameterDeclaration(n *ParameterDeclaration, depth int)
	EndParameterDeclaration(n *ParameterDeclaration, depth int)

	StartExpressionStatement(n *ExpressionStatement, depth int)
	EndExpressionStatement(n *ExpressionStatement, depth int)

	StartCompoundStatement(n *CompoundStatement, depth int)
	EndCompoundStatement(n *CompoundStatement, depth int)

	StartSelectionStatement(n *SelectionStatement, depth int)
	EndSelectionStatement(n *SelectionStatement, depth int)

	StartExpression(n *Expression, depth int)
	EndExpression(n *Expression, depth int)

	StartBinaryExpression(n *BinaryExpression, depth int)
	EndBinaryExpression(n *BinaryExpression, depth int)

	StartPrefixExpression(n *PrefixExpression, depth int)
	EndPrefixExpression(n *PrefixExpression, depth int)

	StartPostfixExpression(n *PostfixExpression, depth int)
	EndPostfixExpression(n *PostfixExpression, depth int)

	StartPrimaryExpression(n *PrimaryExpression, depth int)
	EndPrimaryExpression(n *PrimaryExpression, depth int)

	StartExpressionList(n *ExpressionList, depth int)
	EndExpressionList(n *ExpressionList, depth int)

	StartIdExpression(n *IdExpression, depth int)
	EndIdExpression(n *IdExpression, depth int)

	StartQualifiedId(n *QualifiedId, depth int)
	EndQualifiedId(n *QualifiedId, depth int)

	StartUnqualifiedId(n *UnqualifiedId, depth int)
	EndUnqualifiedId(n *UnqualifiedId, depth int)

	// StartToken is invoked for every borrowed token visited as a
	// child (operators, the if keyword, ...). There is no matching
	// End: tokens are leaves.
	StartToken(t *token.Token, depth int)
}

// BaseVisitor implements Visitor with no-op methods. Embed it and
// override only the node kinds a concrete visitor cares about.
type BaseVisitor struct{}

func (BaseVisitor) StartTranslationUnit(*TranslationUnit, int)                       {}
func (BaseVisitor) EndTranslationUnit(*TranslationUnit, int)                         {}
func (BaseVisitor) StartDeclaration(*Declaration, int)                              {}
func (BaseVisitor) EndDeclaration(*Declaration, int)                                {}
func (BaseVisitor) StartParameterDeclarationList(*ParameterDeclarationList, int)     {}
func (BaseVisitor) EndParameterDeclarationList(*ParameterDeclarationList, int)       {}
func (BaseVisitor) StartParameterDeclaration(*ParameterDeclaration, int)             {}
func (BaseVisitor) EndParameterDeclaration(*ParameterDeclaration, int)               {}
func (BaseVisitor) StartExpressionStatement(*ExpressionStatement, int)               {}
func (BaseVisitor) EndExpressionStatement(*ExpressionStatement, int)                 {}
func (BaseVisitor) StartCompoundStatement(*CompoundStatement, int)                   {}
func (BaseVisitor) EndCompoundStatement(*CompoundStatement, int)                     {}
func (BaseVisitor) StartSelectionStatement(*SelectionStatement, int)                 {}
func (BaseVisitor) EndSelectionStatement(*SelectionStatement, int)                   {}
func (BaseVisitor) StartExpression(*Expression, int)                                 {}
func (BaseVisitor) EndExpression(*Expression, int)                                   {}
func (BaseVisitor) StartBinaryExpression(*BinaryExpression, int)                     {}
func (BaseVisitor) EndBinaryExpression(*BinaryExpression, int)                       {}
func (BaseVisitor) StartPrefixExpression(*PrefixExpression, int)                     {}
func (BaseVisitor) EndPrefixExpression(*PrefixExpression, int)                       {}
func (BaseVisitor) StartPostfixExpression(*PostfixExpression, int)                   {}
func (BaseVisitor) EndPostfixExpression(*PostfixExpression, int)                     {}
func (BaseVisitor) StartPrimaryExpression(*PrimaryExpression, int)                   {}
func (BaseVisitor) EndPrimaryExpression(*PrimaryExpression, int)                     {}
func (BaseVisitor) StartExpressionList(*ExpressionList, int)                         {}
func (BaseVisitor) EndExpressionList(*ExpressionList, int)                           {}
func (BaseVisitor) StartIdExpression(*IdExpression, int)                             {}
func (BaseVisitor) EndIdExpression(*IdExpression, int)                               {}
func (BaseVisitor) StartQualifiedId(*QualifiedId, int)                               {}
func (BaseVisitor) EndQualifiedId(*QualifiedId, int)                                 {}
func (BaseVisitor) StartUnqualifiedId(*UnqualifiedId, int)                           {}
func (BaseVisitor) EndUnqualifiedId(*UnqualifiedId, int)                             {}
func (BaseVisitor) StartToken(*token.Token, int)                                     {}

// synthetic is the (0,0) position marking a node absent from source.
var synthetic = token.Position{}
