package ast

import "github.com/cpp2alt/parsecore/internal/token"

// TranslationUnit is the root of a parse. Across repeated Parser.Parse
// calls, new declarations are appended to the one persistent root
// rather than replacing it.
type TranslationUnit struct {
	Declarations []*Declaration
}

func (n *TranslationUnit) Position() token.Position {
	if len(n.Declarations) == 0 {
		return synthetic
	}
	return n.Declarations[0].Position()
}

func (n *TranslationUnit) Visit(v Visitor, depth int) {
	v.StartTranslationUnit(n, depth)
	for _, d := range n.Declarations {
		if d != nil {
			d.Visit(v, depth+1)
		}
	}
	v.EndTranslationUnit(n, depth)
}
