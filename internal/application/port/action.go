package port

import "context"

// Action is a named capability that can be triggered.
type Action interface {
	Perform(ctx context.Context) error
}

// ActionFunc adapts a function to Action.
type ActionFunc func(ctx context.Context) error

// Perform implements Action.
func (f ActionFunc) Perform(ctx context.Context) error {
	return f(ctx)
}

// ActionRegistry resolves actions by id at call time.
type ActionRegistry interface {
	Lookup(id string) (Action, bool)
}
