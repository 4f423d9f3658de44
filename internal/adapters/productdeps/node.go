package productdeps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deplist/internal/core/ports"
)

// NodeID is the unique identifier for the dependency reader Graft node.
const NodeID graft.ID = "adapter.dependency_reader"

func init() {
	graft.Register(graft.Node[ports.DependencyReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyReader, error) {
			return NewReader(), nil
		},
	})
}
