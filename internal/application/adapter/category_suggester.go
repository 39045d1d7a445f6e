// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CategorySuggester suggests an expense category from a free-text description.
// Implementations may call an external model; callers must treat every failure
// as "no suggestion" and never fail the expense write because of it.
type CategorySuggester interface {
	// IsAvailable reports whether the suggester is configured.
	IsAvailable() bool

	// SuggestCategory returns a category name for the description, or "" when
	// no confident suggestion exists.
	SuggestCategory(ctx context.Context, description string) (string, error)
}
