package ecs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ecswatch/internal/core/ports"
)

// NodeID is the unique identifier for the cluster client factory Graft node.
const NodeID graft.ID = "adapter.ecs"

func init() {
	graft.Register(graft.Node[ports.ClusterClientFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClusterClientFactory, error) {
			return NewFactory(), nil
		},
	})
}
