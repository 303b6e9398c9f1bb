package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpp2alt/parsecore/internal/token"
)

func TestPositionIsSynthetic(t *testing.T) {
	assert.True(t, token.Position{}.IsSynthetic())
	assert.False(t, token.Position{Line: 1, Column: 1}.IsSynthetic())
	assert.False(t, token.Position{Line: 0, Column: 1}.IsSynthetic())
}

func TestPositionBefore(t *testing.T) {
	assert.True(t, token.Position{Line: 1, Column: 1}.Before(token.Position{Line: 1, Column: 2}))
	assert.True(t, token.Position{Line: 1, Column: 9}.Before(token.Position{Line: 2, Column: 1}))
	assert.False(t, token.Position{Line: 2, Column: 1}.Before(token.Position{Line: 1, Column: 9}))
	assert.False(t, token.Position{Line: 1, Column: 1}.Before(token.Position{Line: 1, Column: 1}))
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "3:7", token.Position{Line: 3, Column: 7}.String())
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "identifier", token.Identifier.String())
	assert.Equal(t, "(", token.LeftParen.String())
	assert.Contains(t, token.Kind(9999).String(), "Kind(9999)")
}

func TestTokenIs(t *testing.T) {
	tok := token.Token{Kind: token.Keyword, Text: "out"}
	assert.True(t, tok.Is("out"))
	assert.False(t, tok.Is("in"))
}

func TestTokenString(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Text: "frobnicate"}
	assert.Equal(t, "frobnicate", tok.String())
}
