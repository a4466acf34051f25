package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/layout"
)

// BeginDragInput contains parameters for starting a handle drag.
type BeginDragInput struct {
	ContainerID entity.ContainerID
	// PaneID owns the dragged handle, which sits on its trailing edge.
	PaneID  entity.PaneID
	Pointer int
}

// BeginDrag starts dragging the handle after a pane. The pane becomes the
// anchor and the current geometry is saved for CancelDrag.
func (uc *ManagePanesUseCase) BeginDrag(ctx context.Context, input BeginDragInput) error {
	return uc.withSlot(input.ContainerID, func(s *containerSlot) error {
		c := s.container
		if c.Drag.Active {
			return ErrDragInProgress
		}
		if err := uc.flushLocked(ctx, s); err != nil {
			return err
		}

		h := c.IndexOf(input.PaneID)
		if h < 0 {
			return fmt.Errorf("%w: %s", ErrPaneNotFound, input.PaneID)
		}
		if h >= c.Last() || !c.Panes[h].HasHandle {
			return fmt.Errorf("%w: %s", ErrNoHandle, input.PaneID)
		}

		c.SaveDrag()
		s.savedFollowLast = s.followLast
		s.followLast = false

		layout.SetAnchor(c, h)
		c.Drag.Active = true
		c.Drag.Handle = h
		c.Drag.Grab = input.Pointer - c.Bearing

		uc.log(ctx).Debug().
			Str("container_id", string(c.ID)).
			Str("pane_id", string(input.PaneID)).
			Int("bearing", c.Bearing).
			Int("pointer", input.Pointer).
			Msg("drag started")
		return nil
	})
}

// DragTo moves the dragged handle so that it follows the pointer, as far
// as the container's policy allows.
func (uc *ManagePanesUseCase) DragTo(ctx context.Context, containerID entity.ContainerID, pointer int) (*DragOutput, error) {
	var out *DragOutput
	err := uc.withSlot(containerID, func(s *containerSlot) error {
		c := s.container
		if !c.Drag.Active {
			return ErrNotDragging
		}

		h := c.Drag.Handle
		delta := pointer - c.Drag.Grab - c.Bearing
		applied := 0
		if delta != 0 {
			applied = s.policy.Apply(delta, h, h+1, c.Panes)
			c.Bearing += applied
		}

		if applied != delta {
			uc.log(ctx).Debug().
				Str("container_id", string(c.ID)).
				Str("policy", string(s.policy.Kind())).
				Int("requested", delta).
				Int("applied", applied).
				Msg("handle movement limited by pane bounds")
		}

		if applied != 0 {
			if err := uc.commit(ctx, s); err != nil {
				return err
			}
		}

		out = &DragOutput{
			LayoutOutput: *snapshot(s),
			Requested:    delta,
			Applied:      applied,
		}
		return nil
	})
	return out, err
}

// EndDrag finishes a drag. The dragged sizes become the panes' nominal
// sizes and an extent reported during the drag is applied.
func (uc *ManagePanesUseCase) EndDrag(ctx context.Context, containerID entity.ContainerID) (*LayoutOutput, error) {
	var out *LayoutOutput
	err := uc.withSlot(containerID, func(s *containerSlot) error {
		c := s.container
		if !c.Drag.Active {
			return ErrNotDragging
		}

		layout.CommitNominal(c.Panes)
		c.ClearDrag()

		uc.log(ctx).Debug().
			Str("container_id", string(c.ID)).
			Int("bearing", c.Bearing).
			Msg("drag ended")

		if err := uc.settleLocked(ctx, s); err != nil {
			return err
		}
		out = snapshot(s)
		return nil
	})
	return out, err
}

// CancelDrag abandons a drag and restores the geometry from BeginDrag.
func (uc *ManagePanesUseCase) CancelDrag(ctx context.Context, containerID entity.ContainerID) (*LayoutOutput, error) {
	var out *LayoutOutput
	err := uc.withSlot(containerID, func(s *containerSlot) error {
		c := s.container
		if !c.Drag.Active {
			return ErrNotDragging
		}

		c.RestoreDrag()
		c.ClearDrag()
		s.followLast = s.savedFollowLast

		uc.log(ctx).Debug().
			Str("container_id", string(c.ID)).
			Int("bearing", c.Bearing).
			Msg("drag cancelled")

		if err := uc.settleLocked(ctx, s); err != nil {
			return err
		}
		out = snapshot(s)
		return nil
	})
	return out, err
}

// IsDragging reports whether a drag is active on the container.
func (uc *ManagePanesUseCase) IsDragging(containerID entity.ContainerID) (bool, error) {
	var active bool
	err := uc.withSlot(containerID, func(s *containerSlot) error {
		active = s.container.Drag.Active
		return nil
	})
	return active, err
}

// settleLocked applies a deferred extent after a drag, or commits the
// current geometry when there is none.
func (uc *ManagePanesUseCase) settleLocked(ctx context.Context, s *containerSlot) error {
	c := s.container
	if c.PendingExtent == entity.Unset {
		return uc.commit(ctx, s)
	}
	c.Extent = c.PendingExtent
	c.PendingExtent = entity.Unset
	return uc.reconcileLocked(ctx, s)
}
