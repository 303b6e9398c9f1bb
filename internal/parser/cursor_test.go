package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpp2alt/parsecore/internal/diag"
	"github.com/cpp2alt/parsecore/internal/token"
)

func toks(kinds ...token.Kind) []token.Token {
	out := make([]token.Token, 0, len(kinds))
	for i, k := range kinds {
		out = append(out, token.Token{Kind: k, Text: k.String(), Pos: token.Position{Line: 1, Column: i + 1}})
	}
	return out
}

func TestCursorAtEndAndCurrent(t *testing.T) {
	c := newCursor(toks(token.Identifier, token.Semicolon), diag.NewList())

	assert.False(t, c.atEnd())
	assert.Equal(t, token.Identifier, c.current().Kind)

	c.advance(1)
	assert.False(t, c.atEnd())
	assert.Equal(t, token.Semicolon, c.current().Kind)

	c.advance(1)
	assert.True(t, c.atEnd())
}

func TestCursorCurrentPastEndReturnsLastToken(t *testing.T) {
	c := newCursor(toks(token.Identifier, token.Semicolon), diag.NewList())
	c.advance(5)

	assert.True(t, c.atEnd())
	assert.Equal(t, token.Semicolon, c.current().Kind)
}

func TestCursorCurrentOnEmptyReturnsEOF(t *testing.T) {
	c := newCursor(nil, diag.NewList())
	assert.Equal(t, token.EOF, c.current().Kind)
}

func TestCursorAdvanceSaturatesAtEnd(t *testing.T) {
	c := newCursor(toks(token.Identifier), diag.NewList())
	c.advance(100)
	assert.True(t, c.atEnd())
	assert.Equal(t, len(c.tokens), c.pos)
}

func TestCursorPeekForwardAndOutOfRange(t *testing.T) {
	c := newCursor(toks(token.Identifier, token.Colon, token.Semicolon), diag.NewList())

	next, ok := c.peek(1)
	require.True(t, ok)
	assert.Equal(t, token.Colon, next.Kind)

	_, ok = c.peek(100)
	assert.False(t, ok)
}

func TestCursorPeekNegativeLookback(t *testing.T) {
	// A negative offset looks back at tokens already consumed:
	// after advancing past them, peek(-1) and peek(-2) must still
	// see them, and a look-back before the first token is out of range.
	c := newCursor(toks(token.Identifier, token.Colon, token.Semicolon), diag.NewList())

	c.advance(2)
	assert.Equal(t, token.Semicolon, c.current().Kind)

	prev, ok := c.peek(-1)
	require.True(t, ok)
	assert.Equal(t, token.Colon, prev.Kind)

	lead, ok := c.peek(-2)
	require.True(t, ok)
	assert.Equal(t, token.Identifier, lead.Kind)

	_, ok = c.peek(-3)
	assert.False(t, ok)
}

func TestCursorMarkResetUndoesConsumption(t *testing.T) {
	c := newCursor(toks(token.Identifier, token.Colon, token.Semicolon), diag.NewList())

	mark := c.mark()
	c.advance(2)
	assert.Equal(t, token.Semicolon, c.current().Kind)

	c.reset(mark)
	assert.Equal(t, token.Identifier, c.current().Kind)
	assert.Equal(t, mark, c.pos)
}

func TestCursorTokenAtBorrowsIntoBackingSlice(t *testing.T) {
	tokens := toks(token.Identifier, token.Colon)
	c := newCursor(tokens, diag.NewList())

	ptr := c.tokenAt(0)
	require.NotNil(t, ptr)
	assert.Same(t, &tokens[0], ptr)

	assert.Nil(t, c.tokenAt(-1))
	assert.Nil(t, c.tokenAt(100))
}

func TestCursorCurrentPtrMatchesPos(t *testing.T) {
	tokens := toks(token.Identifier, token.Colon)
	c := newCursor(tokens, diag.NewList())
	c.advance(1)

	assert.Same(t, &tokens[1], c.currentPtr())
}

func TestCursorErrorReportsAtCurrentToken(t *testing.T) {
	sink := diag.NewList()
	tokens := toks(token.Semicolon)
	tokens[0].Text = ";"
	c := newCursor(tokens, sink)

	c.error("unexpected text")

	require.True(t, c.reported)
	entries := sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, tokens[0].Pos, entries[0].Pos)
	assert.Contains(t, entries[0].Message, "unexpected text")
	assert.Contains(t, entries[0].Message, `";"`)
}

func TestCursorErrorAtQuotesGivenTokenNotCurrent(t *testing.T) {
	sink := diag.NewList()
	c := newCursor(toks(token.Identifier, token.Semicolon), diag.NewList())
	c.sink = sink

	c.errorAt(token.Position{Line: 9, Column: 9}, "stale-name", "missing semicolon")

	entries := sink.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, token.Position{Line: 9, Column: 9}, entries[0].Pos)
	assert.Contains(t, entries[0].Message, "stale-name")
}
