package parser

import (
	"fmt"

	"github.com/cpp2alt/parsecore/internal/token"
)

// cursor is a read-only window over a token slice, with one
// past-the-end position. It mediates every piece of source access the
// grammar driver performs. A cursor's token borrow is only valid for
// the duration of one Parser.Parse call.
type cursor struct {
	tokens   []token.Token
	pos      int
	sink     token.Sink
	reported bool // set once any error() call has fired, for Parser.Parse's bool result
}

func newCursor(tokens []token.Token, sink token.Sink) *cursor {
	return &cursor{tokens: tokens, sink: sink}
}

// atEnd reports whether the cursor has consumed every token.
func (c *cursor) atEnd() bool {
	return c.pos >= len(c.tokens)
}

// current returns the token at the cursor. Precondition: !atEnd().
// Calling it past the end is a programming error in the grammar
// driver; rather than panic mid-parse it returns the last token so a
// caller that double-checks atEnd() defensively still sees something
// sane.
func (c *cursor) current() token.Token {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos]
	}
	if len(c.tokens) > 0 {
		return c.tokens[len(c.tokens)-1]
	}
	return token.Token{Kind: token.EOF}
}

// peek returns the token k positions ahead of current. Negative k
// inspects a recently consumed token. Out-of-range k yields the
// ok=false zero value. The productions in this package do not call
// peek; every diagnostic they report quotes the current token.
func (c *cursor) peek(k int) (token.Token, bool) {
	i := c.pos + k
	if i < 0 || i >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[i], true
}

// advance moves the cursor forward by n tokens (default 1), saturating
// at end-of-input.
func (c *cursor) advance(n int) {
	c.pos += n
	if c.pos > len(c.tokens) {
		c.pos = len(c.tokens)
	}
}

// tokenAt returns a borrowed pointer into the cursor's backing slice,
// or nil if i is out of range. Nodes store these pointers rather than
// copies so that `token const*` back-references (§3) fall out of the
// Go translation naturally.
func (c *cursor) tokenAt(i int) *token.Token {
	if i < 0 || i >= len(c.tokens) {
		return nil
	}
	return &c.tokens[i]
}

// currentPtr is tokenAt(pos): the borrowed pointer to the current
// token, used whenever a production consumes a token into a node.
func (c *cursor) currentPtr() *token.Token {
	return c.tokenAt(c.pos)
}

// mark saves the current position for a later reset. The grammar's
// three rewind sites (expression-list entry, declaration entry,
// qualified-id entry) are the only callers.
func (c *cursor) mark() int {
	return c.pos
}

// reset restores a previously marked position, undoing any tokens
// consumed since the mark.
func (c *cursor) reset(m int) {
	c.pos = m
}

// errorAt appends a diagnostic at the given position, quoting the
// given token text. Within this package its only caller is error,
// which passes the current token.
func (c *cursor) errorAt(pos token.Position, text string, message string) {
	c.reported = true
	c.sink.Add(pos, fmt.Sprintf("%s at %q", message, text))
}

// error appends a diagnostic at the current token, in the "<message>
// at <token text>" shape the upstream error sink expects.
func (c *cursor) error(message string) {
	c.errorAt(c.current().Pos, c.current().Text, message)
}
