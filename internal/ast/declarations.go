package ast

import "github.com/cpp2alt/parsecore/internal/token"

func (*Declaration) isStatement() {}

// DeclKind discriminates a declaration's type variant: a function
// (owns a parameter list) or an object (owns an id-expression naming
// its type, possibly elided).
type DeclKind int

const (
	DeclFunction DeclKind = iota
	DeclObject
)

// Declaration is `name ':' type? ('=' initializer)? ';'?`. Top-level
// declarations and the nested ones inside a parameter_declaration
// share this one node type.
type Declaration struct {
	Name        *UnqualifiedId
	Kind        DeclKind
	Parameters  *ParameterDeclarationList // non-nil when Kind == DeclFunction
	ObjectType  *IdExpression             // non-nil when Kind == DeclObject
	Initializer Statement                 // nil when no `= ...` is present
}

func (n *Declaration) Position() token.Position {
	if n.Name == nil {
		return synthetic
	}
	return n.Name.Position()
}

func (n *Declaration) Visit(v Visitor, depth int) {
	v.StartDeclaration(n, depth)
	if n.Name != nil {
		n.Name.Visit(v, depth+1)
	}
	switch n.Kind {
	case DeclFunction:
		if n.Parameters != nil {
			n.Parameters.Visit(v, depth+1)
		}
	case DeclObject:
		if n.ObjectType != nil {
			n.ObjectType.Visit(v, depth+1)
		}
	}
	if n.Initializer != nil {
		n.Initializer.Visit(v, depth+1)
	}
	v.EndDeclaration(n, depth)
}

// ParameterDeclaration optionally names a passing style and a
// this-specifier before a nested declaration.
type ParameterDeclaration struct {
	Pos   token.Position
	Style PassingStyle
	This  ThisSpecifier
	Decl  *Declaration
}

func (n *ParameterDeclaration) Position() token.Position {
	return n.Pos
}

func (n *ParameterDeclaration) Visit(v Visitor, depth int) {
	v.StartParameterDeclaration(n, depth)
	if n.Decl != nil {
		n.Decl.Visit(v, depth+1)
	}
	v.EndParameterDeclaration(n, depth)
}

// ParameterDeclarationList is the parenthesized, comma-separated
// parameter list of a function declaration. The enclosing parens are
// always recorded, even when Parameters is empty.
type ParameterDeclarationList struct {
	Open       token.Position
	Close      token.Position
	Parameters []*ParameterDeclaration
}

func (n *ParameterDeclarationList) Position() token.Position {
	return n.Open
}

func (n *ParameterDeclarationList) Visit(v Visitor, depth int) {
	v.StartParameterDeclarationList(n, depth)
	for _, p := range n.Parameters {
		if p != nil {
			p.Visit(v, depth+1)
		}
	}
	v.EndParameterDeclarationList(n, depth)
}
