package styles

// Resolver turns a scope stack into a concrete style under the active
// theme. The theme is typically shared between independent document
// sessions, so implementations serialize access internally; a call
// acquires whatever it needs for its own duration only, and callers
// never hold a resolver lock across other work.
type Resolver interface {
	StyleForStack(stack []Scope) Style
}
