// Package printer implements the bundled reference visitor: it walks
// a parsed tree and renders it as an indented outline, one line per
// Visitor.Start call. It exists to exercise the visitor protocol end
// to end and to give embedders a worked example to copy, not as a
// pretty-printer back to source (that is explicitly out of scope for
// the parser core).
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cpp2alt/parsecore/internal/ast"
	"github.com/cpp2alt/parsecore/internal/token"
)

// renderer is pinned to a true-color profile so styled output carries
// ANSI sequences whether or not standard output is a terminal; the
// Visitor.Color field alone decides whether styles are applied.
var renderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}()

var (
	kindStyle  = renderer.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	tokenStyle = renderer.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	dimStyle   = renderer.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Visitor renders every node it visits as one line: an indentation
// guide sized to depth, the node kind, and (for leaves that carry a
// token) that token's text. Every line corresponds to exactly one
// Visitor.Start call — End never emits anything — so a caller can
// recover the number of nodes visited by counting output lines.
type Visitor struct {
	b     strings.Builder
	Color bool // when false, styles are not applied (useful for non-terminal output)
}

// New creates a printing visitor with ANSI styling enabled.
func New() *Visitor {
	return &Visitor{Color: true}
}

// String returns everything rendered so far.
func (pv *Visitor) String() string {
	return pv.b.String()
}

func (pv *Visitor) line(depth int, label string) {
	indent := dimStyle.Render(strings.Repeat("  ", depth))
	if !pv.Color {
		indent = strings.Repeat("  ", depth)
	}
	pv.b.WriteString(indent)
	pv.b.WriteString(label)
	pv.b.WriteByte('\n')
}

func (pv *Visitor) kind(depth int, name string, extra ...string) {
	label := name
	if pv.Color {
		label = kindStyle.Render(name)
	}
	if len(extra) > 0 {
		label = label + " " + strings.Join(extra, " ")
	}
	pv.line(depth, label)
}

func (pv *Visitor) StartToken(t *token.Token, depth int) {
	text := t.Text
	if pv.Color {
		text = tokenStyle.Render(text)
	}
	pv.line(depth, text)
}

func (pv *Visitor) StartTranslationUnit(n *ast.TranslationUnit, depth int) { pv.kind(depth, "translation_unit") }
func (pv *Visitor) EndTranslationUnit(*ast.TranslationUnit, int)          {}

func (pv *Visitor) StartDeclaration(n *ast.Declaration, depth int) {
	name := "<anon>"
	if n.Name != nil && n.Name.Name != nil {
		name = n.Name.Name.Text
	}
	pv.kind(depth, "declaration", fmt.Sprintf("name=%s kind=%s", name, declKindName(n.Kind)))
}
func (pv *Visitor) EndDeclaration(*ast.Declaration, int) {}

func declKindName(k ast.DeclKind) string {
	if k == ast.DeclFunction {
		return "function"
	}
	return "object"
}

func (pv *Visitor) StartParameterDeclarationList(n *ast.ParameterDeclarationList, depth int) {
	pv.kind(depth, "parameter_declaration_list", fmt.Sprintf("n=%d", len(n.Parameters)))
}
func (pv *Visitor) EndParameterDeclarationList(*ast.ParameterDeclarationList, int) {}

func (pv *Visitor) StartParameterDeclaration(n *ast.ParameterDeclaration, depth int) {
	pv.kind(depth, "parameter_declaration", fmt.Sprintf("style=%s this=%s", n.Style, n.This))
}
func (pv *Visitor) EndParameterDeclaration(*ast.ParameterDeclaration, int) {}

func (pv *Visitor) StartExpressionStatement(n *ast.ExpressionStatement, depth int) {
	pv.kind(depth, "expression_statement")
}
func (pv *Visitor) EndExpressionStatement(*ast.ExpressionStatement, int) {}

func (pv *Visitor) StartCompoundStatement(n *ast.CompoundStatement, depth int) {
	pv.kind(depth, "compound_statement", fmt.Sprintf("n=%d", len(n.Statements)))
}
func (pv *Visitor) EndCompoundStatement(*ast.CompoundStatement, int) {}

func (pv *Visitor) StartSelectionStatement(n *ast.SelectionStatement, depth int) {
	pv.kind(depth, "selection_statement", fmt.Sprintf("constexpr=%t", n.IsConstexpr))
}
func (pv *Visitor) EndSelectionStatement(*ast.SelectionStatement, int) {}

func (pv *Visitor) StartExpression(n *ast.Expression, depth int) { pv.kind(depth, "expression") }
func (pv *Visitor) EndExpression(*ast.Expression, int)            {}

func (pv *Visitor) StartBinaryExpression(n *ast.BinaryExpression, depth int) {
	pv.kind(depth, "binary_expression", fmt.Sprintf("level=%s terms=%d", n.Level, len(n.Terms)))
}
func (pv *Visitor) EndBinaryExpression(*ast.BinaryExpression, int) {}

func (pv *Visitor) StartPrefixExpression(n *ast.PrefixExpression, depth int) {
	pv.kind(depth, "prefix_expression", fmt.Sprintf("ops=%d", len(n.Ops)))
}
func (pv *Visitor) EndPrefixExpression(*ast.PrefixExpression, int) {}

func (pv *Visitor) StartPostfixExpression(n *ast.PostfixExpression, depth int) {
	pv.kind(depth, "postfix_expression", fmt.Sprintf("ops=%d", len(n.Ops)))
}
func (pv *Visitor) EndPostfixExpression(*ast.PostfixExpression, int) {}

func (pv *Visitor) StartPrimaryExpression(n *ast.PrimaryExpression, depth int) {
	pv.kind(depth, "primary_expression", primaryKindName(n.Kind))
}
func (pv *Visitor) EndPrimaryExpression(*ast.PrimaryExpression, int) {}

func primaryKindName(k ast.PrimaryKind) string {
	switch k {
	case ast.PrimaryIdentifier:
		return "identifier"
	case ast.PrimaryParenthesized:
		return "parenthesized"
	default:
		return "empty"
	}
}

func (pv *Visitor) StartExpressionList(n *ast.ExpressionList, depth int) {
	pv.kind(depth, "expression_list", fmt.Sprintf("n=%d", len(n.Elements)))
}
func (pv *Visitor) EndExpressionList(*ast.ExpressionList, int) {}

func (pv *Visitor) StartIdExpression(n *ast.IdExpression, depth int) {
	pv.kind(depth, "id_expression")
}
func (pv *Visitor) EndIdExpression(*ast.IdExpression, int) {}

func (pv *Visitor) StartQualifiedId(n *ast.QualifiedId, depth int) { pv.kind(depth, "qualified_id") }
func (pv *Visitor) EndQualifiedId(*ast.QualifiedId, int)           {}

func (pv *Visitor) StartUnqualifiedId(n *ast.UnqualifiedId, depth int) {
	pv.kind(depth, "unqualified_id")
}
func (pv *Visitor) EndUnqualifiedId(*ast.UnqualifiedId, int) {}
