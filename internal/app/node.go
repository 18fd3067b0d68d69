package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mityas/tk-core/internal/actions"
	"github.com/mityas/tk-core/internal/adapters/config"
	"github.com/mityas/tk-core/internal/adapters/logger"
	"github.com/mityas/tk-core/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			actions.RegistryNodeID,
			actions.EntityCommandsNodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			registry, err := graft.Dep[*actions.Registry](ctx)
			if err != nil {
				return nil, err
			}

			entityCommands, err := graft.Dep[*actions.GetEntityCommands](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			return New(registry, entityCommands, loader), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
