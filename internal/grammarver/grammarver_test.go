package grammarver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpp2alt/parsecore/internal/grammarver"
)

func TestCheckCompatibleAcceptsCurrent(t *testing.T) {
	require.NoError(t, grammarver.CheckCompatible(grammarver.Current))
}

func TestCheckCompatibleAcceptsMinimum(t *testing.T) {
	require.NoError(t, grammarver.CheckCompatible(grammarver.MinSupportedLexer))
}

func TestCheckCompatibleRejectsOlder(t *testing.T) {
	err := grammarver.CheckCompatible("0.9.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "older than the minimum supported")
}

func TestCheckCompatibleRejectsMalformed(t *testing.T) {
	err := grammarver.CheckCompatible("not-a-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid lexer version")
}

func TestCheckCompatibleAcceptsNewer(t *testing.T) {
	require.NoError(t, grammarver.CheckCompatible("99.0.0"))
}
