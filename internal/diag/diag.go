// Package diag provides the default token.Sink implementation used by
// tests and the demo CLI. Production embedders may supply their own
// sink (a logger, an LSP diagnostic publisher, ...); the parser only
// depends on the token.Sink interface.
package diag

import (
	"fmt"
	"strings"

	"github.com/cpp2alt/parsecore/internal/token"
)

// Entry is one (position, message) diagnostic record.
type Entry struct {
	Pos     token.Position
	Message string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// List is an append-only, ordered token.Sink.
type List struct {
	entries []Entry
}

// NewList creates an empty diagnostic list.
func NewList() *List {
	return &List{}
}

// Add appends a diagnostic. It satisfies token.Sink.
func (l *List) Add(pos token.Position, message string) {
	l.entries = append(l.entries, Entry{Pos: pos, Message: message})
}

// Entries returns the diagnostics recorded so far, in report order.
func (l *List) Entries() []Entry {
	return l.entries
}

// Empty reports whether no diagnostic has been recorded.
func (l *List) Empty() bool {
	return len(l.entries) == 0
}

// String renders every entry, one per line.
func (l *List) String() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
