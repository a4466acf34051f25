package port

import (
	"context"

	"github.com/bnema/paneset/internal/domain/entity"
)

// ContentSizer reports the natural extent of a pane's embedded content.
// It is owned by whatever hosts the content; the layout engine never
// measures anything itself.
type ContentSizer interface {
	NaturalContentExtent(pane *entity.Pane) entity.Extent
}

// ContentSizerFunc adapts a function to ContentSizer.
type ContentSizerFunc func(pane *entity.Pane) entity.Extent

// NaturalContentExtent implements ContentSizer.
func (f ContentSizerFunc) NaturalContentExtent(pane *entity.Pane) entity.Extent {
	return f(pane)
}

// Committer receives the final geometry of a container after every layout
// change so the host can position the underlying visual elements.
type Committer interface {
	Commit(ctx context.Context, containerID entity.ContainerID, required entity.Extent, placements []entity.Placement) error
}
