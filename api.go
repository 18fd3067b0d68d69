// Package tkcore exposes the toolkit's in-process API surface.
//
// The entity-command fetch operation has no command line form: it returns a
// structured mapping, so it is only reachable through this package.
//
//	tk, err := tkcore.New(ctx)
//	entities := []tkcore.EntityRef{{Type: "Task", ID: 1234}, {Type: "Task", ID: 1235}}
//	commandsByEntity, err := tk.GetEntityCommands(ctx, "/my/pc/path", entities)
package tkcore

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mityas/tk-core/internal/app"
	"github.com/mityas/tk-core/internal/core/domain"

	// Register all Graft nodes.
	_ "github.com/mityas/tk-core/internal/wiring"
)

// EntityRef identifies an entity by type and id.
type EntityRef = domain.EntityRef

// Command is a UI command registered for an entity type.
type Command = domain.Command

// PipelineConfig is the metadata of a pipeline configuration.
type PipelineConfig = domain.PipelineConfig

// Toolkit is the in-process API of the toolkit.
type Toolkit struct {
	app *app.App
}

// New initializes the toolkit with its default wiring.
func New(ctx context.Context) (*Toolkit, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, err
	}
	return &Toolkit{app: components.App}, nil
}

// GetEntityCommands returns the UI commands registered for each entity in
// the pipeline configuration at pipelineConfigPath, keyed by entity.
//
// Entities of one type share a command cache, so they all receive the same
// command list. A missing key means the commands for that entity's type
// could not be fetched; the failure is logged, not returned.
func (t *Toolkit) GetEntityCommands(ctx context.Context, pipelineConfigPath string, entities []EntityRef) (map[EntityRef][]Command, error) {
	return t.app.GetEntityCommands(ctx, pipelineConfigPath, entities)
}

// PublishFile copies a file to its publish location and marks the copy
// read-only.
func (t *Toolkit) PublishFile(source, target string) error {
	return t.app.PublishFile(source, target)
}

// DescribePipelineConfig reads the metadata of a pipeline configuration.
func (t *Toolkit) DescribePipelineConfig(pipelineConfigPath string) (*PipelineConfig, error) {
	return t.app.Describe(pipelineConfigPath)
}
