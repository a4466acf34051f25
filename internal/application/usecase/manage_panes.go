package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/bnema/paneset/internal/application/port"
	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/layout"
	"github.com/bnema/paneset/internal/logging"
)

var (
	ErrContainerNotFound  = errors.New("container not found")
	ErrDuplicateContainer = errors.New("container already exists")
	ErrPaneNotFound       = errors.New("pane not found")
	ErrDuplicatePane      = errors.New("pane already exists")
	ErrInvalidPane        = errors.New("invalid pane configuration")
	ErrInvalidSettings    = errors.New("invalid container settings")
	ErrInvalidExtent      = errors.New("invalid container extent")
	ErrDragInProgress     = errors.New("drag in progress")
	ErrNotDragging        = errors.New("no drag in progress")
	ErrNoHandle           = errors.New("pane has no draggable handle")
)

// PaneConfig holds the user-declared properties of a pane.
type PaneConfig struct {
	Min       int
	Max       int // entity.Unbounded or more for no limit
	Fixed     int // entity.Unset for no override
	Weight    float64
	Resize    entity.ResizeMask
	HasHandle bool
}

// DefaultPaneConfig returns an unbounded, weight 1 pane with a handle.
func DefaultPaneConfig() PaneConfig {
	return PaneConfig{
		Max:       entity.Unbounded,
		Fixed:     entity.Unset,
		Weight:    1,
		Resize:    entity.ResizeBoth,
		HasHandle: true,
	}
}

func (pc PaneConfig) validate() error {
	switch {
	case pc.Min < 0:
		return fmt.Errorf("%w: min %d is negative", ErrInvalidPane, pc.Min)
	case pc.Min > entity.Unbounded:
		return fmt.Errorf("%w: min %d exceeds %d", ErrInvalidPane, pc.Min, entity.Unbounded)
	case pc.Max < pc.Min:
		return fmt.Errorf("%w: max %d below min %d", ErrInvalidPane, pc.Max, pc.Min)
	case math.IsNaN(pc.Weight) || math.IsInf(pc.Weight, 0):
		return fmt.Errorf("%w: weight %v is not finite", ErrInvalidPane, pc.Weight)
	case pc.Weight < 0:
		return fmt.Errorf("%w: weight %v is negative", ErrInvalidPane, pc.Weight)
	case pc.Fixed < entity.Unset:
		return fmt.Errorf("%w: fixed size %d is negative", ErrInvalidPane, pc.Fixed)
	case pc.Fixed > entity.Unbounded:
		return fmt.Errorf("%w: fixed size %d exceeds %d", ErrInvalidPane, pc.Fixed, entity.Unbounded)
	}
	return nil
}

func (pc PaneConfig) apply(p *entity.Pane) {
	p.RequestedMin = pc.Min
	p.RequestedMax = min(pc.Max, entity.Unbounded)
	p.Fixed = pc.Fixed
	p.Weight = pc.Weight
	p.Resize = pc.Resize
	p.HasHandle = pc.HasHandle
}

// LayoutOutput is the committed geometry of a container. Extent is 0 until
// the host reports one.
type LayoutOutput struct {
	ContainerID entity.ContainerID
	Required    entity.Extent
	Extent      int
	Placements  []entity.Placement
	Anchor      entity.PaneID
	Bearing     int
	// Residual is the space that could not be placed (underflow) or removed
	// (overflow) by the last reconciliation.
	Residual int
}

// DragOutput reports one drag sample.
type DragOutput struct {
	LayoutOutput
	Requested int
	Applied   int
}

// Dropped returns the part of the requested delta the policy did not apply.
func (o *DragOutput) Dropped() int {
	return o.Requested - o.Applied
}

// containerSlot serialises every operation on one container.
type containerSlot struct {
	mu        sync.Mutex
	container *entity.Container
	policy    layout.Policy
	// followLast keeps the anchor on the terminal pane across edits.
	followLast      bool
	savedFollowLast bool
	residual        int
}

// ManagePanesUseCase is the host-facing entry point of the layout engine.
// Each container is its own critical section; different containers may be
// used from different goroutines.
type ManagePanesUseCase struct {
	sizer     port.ContentSizer
	committer port.Committer
	log       port.LoggerFromContext

	mu         sync.RWMutex
	containers map[entity.ContainerID]*containerSlot
}

// NewManagePanesUseCase creates a new pane management use case.
// committer may be nil when the host polls Snapshot instead.
func NewManagePanesUseCase(sizer port.ContentSizer, committer port.Committer) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		sizer:      sizer,
		committer:  committer,
		log:        logging.FromContext,
		containers: make(map[entity.ContainerID]*containerSlot),
	}
}

// SetLoggerResolver replaces how the use case finds its logger.
func (uc *ManagePanesUseCase) SetLoggerResolver(resolve port.LoggerFromContext) {
	if resolve != nil {
		uc.log = resolve
	}
}

// CreateContainer registers an empty container.
func (uc *ManagePanesUseCase) CreateContainer(ctx context.Context, id entity.ContainerID, settings entity.Settings) error {
	log := uc.log(ctx)

	if id == "" {
		return fmt.Errorf("%w: container id is required", ErrInvalidSettings)
	}
	if settings.HandleSize < 0 || settings.Padding < 0 || settings.Inset < 0 {
		return fmt.Errorf("%w: handle size, padding and inset must be non-negative", ErrInvalidSettings)
	}
	policy, err := layout.PolicyFor(settings.Policy)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, exists := uc.containers[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateContainer, id)
	}
	uc.containers[id] = &containerSlot{
		container:  entity.NewContainer(id, settings),
		policy:     policy,
		followLast: true,
	}

	log.Debug().
		Str("container_id", string(id)).
		Str("orientation", settings.Orientation.String()).
		Str("policy", string(settings.Policy)).
		Msg("container created")
	return nil
}

// DeleteContainer forgets a container.
func (uc *ManagePanesUseCase) DeleteContainer(ctx context.Context, id entity.ContainerID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.containers[id]; !ok {
		return fmt.Errorf("%w: %s", ErrContainerNotFound, id)
	}
	delete(uc.containers, id)
	uc.log(ctx).Debug().Str("container_id", string(id)).Msg("container deleted")
	return nil
}

// ContainerIDs lists the registered containers.
func (uc *ManagePanesUseCase) ContainerIDs() []entity.ContainerID {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	ids := make([]entity.ContainerID, 0, len(uc.containers))
	for id := range uc.containers {
		ids = append(ids, id)
	}
	return ids
}

func (uc *ManagePanesUseCase) slot(id entity.ContainerID) (*containerSlot, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	s, ok := uc.containers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, id)
	}
	return s, nil
}

// withSlot runs fn inside the container's critical section.
func (uc *ManagePanesUseCase) withSlot(id entity.ContainerID, fn func(s *containerSlot) error) error {
	s, err := uc.slot(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// AddPaneInput contains parameters for adding a pane.
type AddPaneInput struct {
	ContainerID entity.ContainerID
	PaneID      entity.PaneID
	Config      PaneConfig
	// Index is the insertion position; negative or past-the-end appends.
	Index int
}

// AddPane inserts a pane and marks the container dirty.
func (uc *ManagePanesUseCase) AddPane(ctx context.Context, input AddPaneInput) error {
	if input.PaneID == "" {
		return fmt.Errorf("%w: pane id is required", ErrInvalidPane)
	}
	if err := input.Config.validate(); err != nil {
		return err
	}

	return uc.withSlot(input.ContainerID, func(s *containerSlot) error {
		c := s.container
		if c.Drag.Active {
			return ErrDragInProgress
		}
		if c.IndexOf(input.PaneID) >= 0 {
			return fmt.Errorf("%w: %s", ErrDuplicatePane, input.PaneID)
		}

		p := entity.NewPane(input.PaneID)
		input.Config.apply(p)

		index := input.Index
		if index < 0 || index > c.Len() {
			index = c.Len()
		}
		c.Insert(index, p)
		if !s.followLast && index <= c.Anchor {
			c.Anchor++
		}
		c.MarkDirty()

		uc.log(ctx).Debug().
			Str("container_id", string(c.ID)).
			Str("pane_id", string(p.ID)).
			Int("index", index).
			Msg("pane added")
		return nil
	})
}

// RemovePane takes a pane out of the container and marks it dirty.
// Removing the anchor pane moves the anchor to the new terminal pane.
func (uc *ManagePanesUseCase) RemovePane(ctx context.Context, containerID entity.ContainerID, paneID entity.PaneID) error {
	return uc.withSlot(containerID, func(s *containerSlot) error {
		c := s.container
		if c.Drag.Active {
			return ErrDragInProgress
		}
		i := c.IndexOf(paneID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrPaneNotFound, paneID)
		}

		c.Remove(i)
		switch {
		case i == c.Anchor || s.followLast:
			s.followLast = true
			layout.SetAnchor(c, c.Last())
		case i < c.Anchor:
			c.Anchor--
		}
		c.MarkDirty()

		uc.log(ctx).Debug().
			Str("container_id", string(c.ID)).
			Str("pane_id", string(paneID)).
			Bool("anchor_follows_last", s.followLast).
			Msg("pane removed")
		return nil
	})
}

// ConfigurePaneInput contains parameters for reconfiguring a pane.
type ConfigurePaneInput struct {
	ContainerID entity.ContainerID
	PaneID      entity.PaneID
	Config      PaneConfig
}

// ConfigurePane replaces a pane's declared properties and marks the
// container dirty.
func (uc *ManagePanesUseCase) ConfigurePane(ctx context.Context, input ConfigurePaneInput) error {
	if err := input.Config.validate(); err != nil {
		return err
	}

	return uc.withSlot(input.ContainerID, func(s *containerSlot) error {
		c := s.container
		if c.Drag.Active {
			return ErrDragInProgress
		}
		p := c.Find(input.PaneID)
		if p == nil {
			return fmt.Errorf("%w: %s", ErrPaneNotFound, input.PaneID)
		}
		input.Config.apply(p)
		c.MarkDirty()

		uc.log(ctx).Debug().
			Str("container_id", string(c.ID)).
			Str("pane_id", string(p.ID)).
			Int("min", input.Config.Min).
			Int("max", input.Config.Max).
			Float64("weight", input.Config.Weight).
			Msg("pane configured")
		return nil
	})
}

// SetPolicy selects the handle adjustment policy used by drags.
func (uc *ManagePanesUseCase) SetPolicy(ctx context.Context, containerID entity.ContainerID, kind entity.PolicyKind) error {
	policy, err := layout.PolicyFor(kind)
	if err != nil {
		return err
	}
	return uc.withSlot(containerID, func(s *containerSlot) error {
		if s.container.Drag.Active {
			return ErrDragInProgress
		}
		s.policy = policy
		s.container.Settings.Policy = kind
		uc.log(ctx).Debug().
			Str("container_id", string(containerID)).
			Str("policy", string(kind)).
			Msg("policy changed")
		return nil
	})
}

// SetAnchor makes a pane the anchor; the bearing moves to its trailing
// edge and stays there across container resizes.
func (uc *ManagePanesUseCase) SetAnchor(ctx context.Context, containerID entity.ContainerID, paneID entity.PaneID) error {
	return uc.withSlot(containerID, func(s *containerSlot) error {
		c := s.container
		if c.Drag.Active {
			return ErrDragInProgress
		}
		if err := uc.flushLocked(ctx, s); err != nil {
			return err
		}
		i := c.IndexOf(paneID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrPaneNotFound, paneID)
		}
		layout.SetAnchor(c, i)
		s.followLast = i == c.Last()
		return nil
	})
}

// Flush runs a layout pass and reconciliation if the container is dirty,
// then commits the geometry.
func (uc *ManagePanesUseCase) Flush(ctx context.Context, containerID entity.ContainerID) (*LayoutOutput, error) {
	var out *LayoutOutput
	err := uc.withSlot(containerID, func(s *containerSlot) error {
		if s.container.Drag.Active {
			return ErrDragInProgress
		}
		if err := uc.flushLocked(ctx, s); err != nil {
			return err
		}
		out = snapshot(s)
		return nil
	})
	return out, err
}

// SetExtent reports a new available extent along the container's axis and
// reconciles the panes against it. During a drag the extent is applied when
// the drag ends.
func (uc *ManagePanesUseCase) SetExtent(ctx context.Context, containerID entity.ContainerID, extent int) (*LayoutOutput, error) {
	if extent < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidExtent, extent)
	}

	var out *LayoutOutput
	err := uc.withSlot(containerID, func(s *containerSlot) error {
		c := s.container
		log := uc.log(ctx)

		if c.Drag.Active {
			c.PendingExtent = extent
			log.Debug().
				Str("container_id", string(c.ID)).
				Int("extent", extent).
				Msg("extent deferred until drag ends")
			out = snapshot(s)
			return nil
		}

		if err := uc.flushLocked(ctx, s); err != nil {
			return err
		}
		if c.Extent == extent {
			out = snapshot(s)
			return nil
		}
		c.Extent = extent
		if err := uc.reconcileLocked(ctx, s); err != nil {
			return err
		}
		out = snapshot(s)
		return nil
	})
	return out, err
}

// Snapshot returns the current geometry, flushing pending edits first.
func (uc *ManagePanesUseCase) Snapshot(ctx context.Context, containerID entity.ContainerID) (*LayoutOutput, error) {
	var out *LayoutOutput
	err := uc.withSlot(containerID, func(s *containerSlot) error {
		if !s.container.Drag.Active {
			if err := uc.flushLocked(ctx, s); err != nil {
				return err
			}
		}
		out = snapshot(s)
		return nil
	})
	return out, err
}

// IsDirty reports whether the container has edits awaiting Flush.
func (uc *ManagePanesUseCase) IsDirty(containerID entity.ContainerID) (bool, error) {
	var dirty bool
	err := uc.withSlot(containerID, func(s *containerSlot) error {
		dirty = s.container.IsDirty()
		return nil
	})
	return dirty, err
}

// flushLocked lays out a dirty container and reconciles it.
func (uc *ManagePanesUseCase) flushLocked(ctx context.Context, s *containerSlot) error {
	c := s.container
	if !c.IsDirty() {
		return nil
	}

	total := layout.LayoutAxis(c, uc.contentFunc())
	if s.followLast || c.Anchor < 0 || c.Anchor > c.Last() {
		s.followLast = true
		c.AnchorLast()
	}

	uc.log(ctx).Debug().
		Str("container_id", string(c.ID)).
		Int("panes", c.Len()).
		Int("total", total).
		Int("required_width", c.Required.Width).
		Int("required_height", c.Required.Height).
		Msg("layout pass")

	return uc.reconcileLocked(ctx, s)
}

func (uc *ManagePanesUseCase) reconcileLocked(ctx context.Context, s *containerSlot) error {
	c := s.container
	log := uc.log(ctx)

	s.residual = layout.Reconcile(c)
	if s.residual != 0 {
		log.Warn().
			Str("container_id", string(c.ID)).
			Int("extent", c.Extent).
			Int("residual", s.residual).
			Msg("panes do not fit the container extent")
	} else {
		log.Debug().
			Str("container_id", string(c.ID)).
			Int("extent", c.Extent).
			Int("bearing", c.Bearing).
			Msg("reconciled")
	}
	return uc.commit(ctx, s)
}

func (uc *ManagePanesUseCase) contentFunc() layout.ContentFunc {
	if uc.sizer == nil {
		return nil
	}
	return uc.sizer.NaturalContentExtent
}

func (uc *ManagePanesUseCase) commit(ctx context.Context, s *containerSlot) error {
	if uc.committer == nil {
		return nil
	}
	c := s.container
	if err := uc.committer.Commit(ctx, c.ID, c.Required, layout.Placements(c)); err != nil {
		return fmt.Errorf("commit geometry for %s: %w", c.ID, err)
	}
	return nil
}

func snapshot(s *containerSlot) *LayoutOutput {
	c := s.container
	out := &LayoutOutput{
		ContainerID: c.ID,
		Required:    c.Required,
		Extent:      max(c.Extent, 0),
		Placements:  layout.Placements(c),
		Bearing:     c.Bearing,
		Residual:    s.residual,
	}
	if c.Anchor >= 0 && c.Anchor < c.Len() {
		out.Anchor = c.Panes[c.Anchor].ID
	}
	return out
}
