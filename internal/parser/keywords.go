package parser

import (
	"github.com/cpp2alt/parsecore/internal/ast"
	"github.com/cpp2alt/parsecore/internal/token"
)

// The passing-style and this-specifier words, and the statement
// keywords, are not reserved lexemes upstream: they are identifiers
// or keywords distinguished from ordinary names by textual comparison
// only in the specific grammar positions below. Centralizing the
// literal spellings here keeps that comparison from being repeated
// ad hoc across the productions.
const (
	kwIn       = "in"
	kwInout    = "inout"
	kwOut      = "out"
	kwMove     = "move"
	kwForward  = "forward"
	kwImplicit = "implicit"
	kwVirtual  = "virtual"
	kwOverride = "override"
	kwFinal    = "final"
	kwIf       = "if"
	kwElse     = "else"
	kwConstexpr = "constexpr"
	kwIs       = "is"
	kwAs       = "as"
)

func isWordToken(t token.Token) bool {
	return t.Kind == token.Identifier || t.Kind == token.Keyword
}

func isWord(t token.Token, text string) bool {
	return isWordToken(t) && t.Is(text)
}

func isPassingStyleWord(t token.Token) bool {
	return isWordToken(t) && (t.Is(kwIn) || t.Is(kwInout) || t.Is(kwOut) || t.Is(kwMove) || t.Is(kwForward))
}

func passingStyleFromText(text string) ast.PassingStyle {
	switch text {
	case kwInout:
		return ast.PassInout
	case kwOut:
		return ast.PassOut
	case kwMove:
		return ast.PassMove
	case kwForward:
		return ast.PassForward
	default:
		return ast.PassIn
	}
}

func isThisSpecifierWord(t token.Token) bool {
	return isWordToken(t) && (t.Is(kwImplicit) || t.Is(kwVirtual) || t.Is(kwOverride) || t.Is(kwFinal))
}

func thisSpecifierFromText(text string) ast.ThisSpecifier {
	switch text {
	case kwImplicit:
		return ast.ThisImplicit
	case kwVirtual:
		return ast.ThisVirtual
	case kwOverride:
		return ast.ThisOverride
	case kwFinal:
		return ast.ThisFinal
	default:
		return ast.ThisNone
	}
}

func isPrefixOperator(t token.Token) bool {
	return t.Kind == token.Not
}

func isPostfixUnaryOperator(t token.Token) bool {
	switch t.Kind {
	case token.PlusPlus, token.MinusMinus, token.Caret, token.Ampersand, token.Tilde, token.Dollar:
		return true
	default:
		return false
	}
}

func isAssignmentOperator(t token.Token) bool {
	switch t.Kind {
	case token.Assign, token.MultiplyAssign, token.DivideAssign, token.ModuloAssign,
		token.PlusAssign, token.MinusAssign, token.RightShiftAssign, token.LeftShiftAssign:
		return true
	default:
		return false
	}
}

// matchOperator reports whether t is an operator of the given
// precedence level, completing the table §4.2 describes: one
// predicate per rung of the ladder.
func matchOperator(level ast.Level, t token.Token) bool {
	switch level {
	case ast.LevelAssignment:
		return isAssignmentOperator(t)
	case ast.LevelLogicalOr:
		return t.Kind == token.LogicalOr
	case ast.LevelLogicalAnd:
		return t.Kind == token.LogicalAnd
	case ast.LevelEquality:
		return t.Kind == token.Equal || t.Kind == token.NotEqual
	case ast.LevelRelational:
		switch t.Kind {
		case token.Less, token.Greater, token.LessEqual, token.GreaterEqual:
			return true
		}
		return false
	case ast.LevelCompare:
		return t.Kind == token.Compare
	case ast.LevelShift:
		return t.Kind == token.LeftShift || t.Kind == token.RightShift
	case ast.LevelAdditive:
		return t.Kind == token.Plus || t.Kind == token.Minus
	case ast.LevelMultiplicative:
		switch t.Kind {
		case token.Star, token.Slash, token.Percent:
			return true
		}
		return false
	case ast.LevelIsAs:
		return isWord(t, kwIs) || isWord(t, kwAs)
	default:
		return false
	}
}
