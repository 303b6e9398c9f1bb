package ast

import "github.com/cpp2alt/parsecore/internal/token"

// UnqualifiedId is a single identifier-or-keyword token. Keywords are
// accepted here because fundamental type names are lexed as keywords
// in the upstream lexer.
type UnqualifiedId struct {
	Name *token.Token
}

func (n *UnqualifiedId) Position() token.Position {
	if n.Name == nil {
		return synthetic
	}
	return n.Name.Pos
}

func (n *UnqualifiedId) Visit(v Visitor, depth int) {
	v.StartUnqualifiedId(n, depth)
	if n.Name != nil {
		v.StartToken(n.Name, depth+1)
	}
	v.EndUnqualifiedId(n, depth)
}

// QualifiedId is a non-empty chain of unqualified ids joined by ::.
type QualifiedId struct {
	Ids []*UnqualifiedId
}

func (n *QualifiedId) Position() token.Position {
	if len(n.Ids) == 0 {
		return synthetic
	}
	return n.Ids[0].Position()
}

func (n *QualifiedId) Visit(v Visitor, depth int) {
	v.StartQualifiedId(n, depth)
	for _, id := range n.Ids {
		id.Visit(v, depth+1)
	}
	v.EndQualifiedId(n, depth)
}

// IdKind discriminates the IdExpression variant.
type IdKind int

const (
	IdEmpty IdKind = iota
	IdQualified
	IdUnqualified
)

// IdExpression is the empty/qualified/unqualified variant that stands
// in for a type name or a declaration's elided type.
type IdExpression struct {
	Kind        IdKind
	Qualified   *QualifiedId
	Unqualified *UnqualifiedId
}

func (n *IdExpression) Position() token.Position {
	switch n.Kind {
	case IdQualified:
		return n.Qualified.Position()
	case IdUnqualified:
		return n.Unqualified.Position()
	default:
		return synthetic
	}
}

func (n *IdExpression) Visit(v Visitor, depth int) {
	v.StartIdExpression(n, depth)
	switch n.Kind {
	case IdQualified:
		n.Qualified.Visit(v, depth+1)
	case IdUnqualified:
		n.Unqualified.Visit(v, depth+1)
	}
	v.EndIdExpression(n, depth)
}

// PassingStyle is the declared calling convention for a formal
// parameter or an expression-list element.
type PassingStyle int

const (
	PassIn PassingStyle = iota // default
	PassInout
	PassOut
	PassMove
	PassForward
)

func (p PassingStyle) String() string {
	switch p {
	case PassInout:
		return "inout"
	case PassOut:
		return "out"
	case PassMove:
		return "move"
	case PassForward:
		return "forward"
	default:
		return "in"
	}
}

// ThisSpecifier modifies a first (implicit receiver) parameter
// declaration.
type ThisSpecifier int

const (
	ThisNone ThisSpecifier = iota
	ThisImplicit
	ThisVirtual
	ThisOverride
	ThisFinal
)

func (t ThisSpecifier) String() string {
	switch t {
	case ThisImplicit:
		return "implicit"
	case ThisVirtual:
		return "virtual"
	case ThisOverride:
		return "override"
	case ThisFinal:
		return "final"
	default:
		return "none"
	}
}
