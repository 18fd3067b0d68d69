// Package actions implements the toolkit's named actions.
package actions

import (
	"context"
	"sort"

	"github.com/mityas/tk-core/internal/core/domain"
	"go.trai.ch/zerr"
)

// Action is a named toolkit operation.
type Action interface {
	Name() string
	Description() string
	// SupportsInteractive reports whether the action can be invoked from the
	// command line. API-only actions return false and are rejected by the
	// CLI dispatcher.
	SupportsInteractive() bool
	// RunInteractive executes the action from the command line. API-only
	// actions return domain.ErrInteractiveNotSupported.
	RunInteractive(ctx context.Context, args []string) error
}

// Registry holds the registered actions by name.
type Registry struct {
	actions map[string]Action
}

// NewRegistry creates a Registry containing the given actions.
func NewRegistry(actions ...Action) *Registry {
	r := &Registry{actions: make(map[string]Action, len(actions))}
	for _, a := range actions {
		r.actions[a.Name()] = a
	}
	return r
}

// Get returns the action registered under name.
func (r *Registry) Get(name string) (Action, error) {
	a, ok := r.actions[name]
	if !ok {
		return nil, zerr.With(domain.ErrActionNotFound, "action", name)
	}
	return a, nil
}

// List returns all registered actions sorted by name.
func (r *Registry) List() []Action {
	list := make([]Action, 0, len(r.actions))
	for _, a := range r.actions {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
