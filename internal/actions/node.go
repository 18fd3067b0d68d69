package actions

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mityas/tk-core/internal/adapters/logger"
	"github.com/mityas/tk-core/internal/adapters/shell"
	"github.com/mityas/tk-core/internal/core/ports"
)

const (
	// EntityCommandsNodeID identifies the get_entity_commands action node.
	EntityCommandsNodeID graft.ID = "action.get_entity_commands"
	// RegistryNodeID identifies the action registry node.
	RegistryNodeID graft.ID = "action.registry"
)

func init() {
	graft.Register(graft.Node[*GetEntityCommands]{
		ID:        EntityCommandsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*GetEntityCommands, error) {
			runner, err := graft.Dep[ports.ToolkitRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGetEntityCommands(runner, log), nil
		},
	})

	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EntityCommandsNodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			entityCommands, err := graft.Dep[*GetEntityCommands](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(entityCommands), nil
		},
	})
}
