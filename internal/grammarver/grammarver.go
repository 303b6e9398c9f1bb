// Package grammarver guards the parser against being driven by a
// lexer built for an incompatible grammar revision. The parser core
// is versioned independently of the lexer it's paired with (they ship
// from separate modules in the full translator), so construction
// accepts the lexer's advertised grammar version and refuses to run
// against one older than MinSupportedLexer. Newer lexer versions are
// accepted.
package grammarver

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Current is the grammar revision this parser implements.
const Current = "1.3.0"

// MinSupportedLexer is the oldest lexer grammar version this parser
// accepts tokens from. Bumped whenever a lexeme kind the grammar
// depends on changes meaning.
const MinSupportedLexer = "1.0.0"

// CheckCompatible reports an error if lexerVersion is older than
// MinSupportedLexer or is not a valid semantic version.
func CheckCompatible(lexerVersion string) error {
	v, err := semver.NewVersion(lexerVersion)
	if err != nil {
		return fmt.Errorf("grammarver: invalid lexer version %q: %w", lexerVersion, err)
	}

	min, err := semver.NewVersion(MinSupportedLexer)
	if err != nil {
		return fmt.Errorf("grammarver: invalid minimum version %q: %w", MinSupportedLexer, err)
	}

	if v.LessThan(min) {
		return fmt.Errorf("grammarver: lexer grammar version %s is older than the minimum supported %s", v, min)
	}

	return nil
}
