package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mityas/tk-core/internal/adapters/logger"
	"github.com/mityas/tk-core/internal/core/ports"
)

const NodeID graft.ID = "adapter.toolkit_runner"

func init() {
	graft.Register(graft.Node[ports.ToolkitRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolkitRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
