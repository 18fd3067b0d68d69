// Package app implements the application layer for the toolkit.
package app

import (
	"context"

	"github.com/mityas/tk-core/internal/actions"
	"github.com/mityas/tk-core/internal/core/domain"
	"github.com/mityas/tk-core/internal/core/ports"
	"github.com/mityas/tk-core/internal/hooks"
)

// App represents the main application logic.
type App struct {
	registry       *actions.Registry
	entityCommands *actions.GetEntityCommands
	configLoader   ports.ConfigLoader
}

// New creates a new App instance.
func New(registry *actions.Registry, entityCommands *actions.GetEntityCommands, loader ports.ConfigLoader) *App {
	return &App{
		registry:       registry,
		entityCommands: entityCommands,
		configLoader:   loader,
	}
}

// GetEntityCommands fetches the UI commands registered for the given
// entities in another pipeline configuration. Entities whose type group
// failed are absent from the result.
func (a *App) GetEntityCommands(ctx context.Context, pipelineConfigPath string, entities []domain.EntityRef) (map[domain.EntityRef][]domain.Command, error) {
	return a.entityCommands.Fetch(ctx, pipelineConfigPath, entities)
}

// RunAction dispatches a named action from the command line.
func (a *App) RunAction(ctx context.Context, name string, args []string) error {
	action, err := a.registry.Get(name)
	if err != nil {
		return err
	}
	return action.RunInteractive(ctx, args)
}

// Actions returns all registered actions.
func (a *App) Actions() []actions.Action {
	return a.registry.List()
}

// Describe reads the metadata of a pipeline configuration.
func (a *App) Describe(pipelineConfigPath string) (*domain.PipelineConfig, error) {
	return a.configLoader.Load(pipelineConfigPath)
}

// PublishFile copies a file to its publish location and marks it read-only.
func (a *App) PublishFile(source, target string) error {
	return hooks.CopyFileReadOnly(source, target)
}
