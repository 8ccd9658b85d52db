package theme

import (
	"sync"

	"github.com/AvianY/xi-editor/styles"
)

// Map holds the theme shared by every document session. Each resolution
// takes the lock for the duration of a single call only, so sibling
// sessions are never blocked across unrelated work.
type Map struct {
	mu    sync.Mutex
	theme *Theme
}

// NewMap returns a Map serving t.
func NewMap(t *Theme) *Map {
	return &Map{theme: t}
}

// StyleForStack resolves stack against the current theme. Map implements
// styles.Resolver.
func (m *Map) StyleForStack(stack []styles.Scope) styles.Style {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme.StyleForStack(stack)
}

// SetTheme swaps the active theme. Callers are responsible for notifying
// their document sessions so styles get recomputed.
func (m *Map) SetTheme(t *Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = t
}

// Theme returns the active theme.
func (m *Map) Theme() *Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme
}
