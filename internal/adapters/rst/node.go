package rst

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deplist/internal/core/ports"
)

// NodeID is the unique identifier for the page renderer Graft node.
const NodeID graft.ID = "adapter.page_renderer"

func init() {
	graft.Register(graft.Node[ports.PageRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PageRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
