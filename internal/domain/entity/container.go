package entity

// ContainerID uniquely identifies a pane container.
type ContainerID string

// PolicyKind names a handle adjustment policy.
type PolicyKind string

const (
	PolicySlinky      PolicyKind = "slinky"
	PolicyGiveTake    PolicyKind = "give-take"
	PolicySpreadsheet PolicyKind = "spreadsheet"
)

// Span is a contiguous [Start, End) range of a container's panes.
type Span struct {
	Start int
	End   int
}

// Len returns the number of panes in the span.
func (s Span) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Empty reports whether the span holds no panes.
func (s Span) Empty() bool {
	return s.Len() == 0
}

// Settings are the per-container layout parameters.
type Settings struct {
	Orientation Axis
	HandleSize  int
	Padding     int
	Inset       int
	// TrailingHandles shows the handle of the terminal pane as well.
	TrailingHandles bool
	Policy          PolicyKind
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		Orientation: AxisHorizontal,
		HandleSize:  4,
		Policy:      PolicySlinky,
	}
}

// DragState tracks an interactive handle drag.
type DragState struct {
	Active bool
	// Handle is the index of the pane owning the dragged handle.
	Handle int
	// Grab is the pointer offset from the bearing when the drag started.
	Grab int

	savedSizes   []int
	savedBearing int
	savedAnchor  int
}

// Container owns an ordered sequence of panes laid out along one axis, plus
// the bearing that splits them into a before and an after group.
type Container struct {
	ID       ContainerID
	Settings Settings
	Panes    []*Pane

	// Extent is the available size along the main axis, Unset until the host
	// reports one.
	Extent int
	// Required is the extent the panes need, insets included, as computed by
	// the last layout pass.
	Required Extent

	// Anchor is the index of the last pane of the before group.
	Anchor int
	// Bearing is the trailing edge of the anchor pane, measured from the
	// inner start of the container.
	Bearing int

	Drag DragState

	// PendingExtent holds an extent change received during a drag.
	PendingExtent int

	dirty bool
}

// NewContainer creates an empty container.
func NewContainer(id ContainerID, settings Settings) *Container {
	return &Container{
		ID:            id,
		Settings:      settings,
		Extent:        Unset,
		Anchor:        -1,
		PendingExtent: Unset,
	}
}

// Len returns the number of panes.
func (c *Container) Len() int {
	return len(c.Panes)
}

// IsEmpty reports whether the container holds no panes.
func (c *Container) IsEmpty() bool {
	return len(c.Panes) == 0
}

// IsDirty reports whether a structural change awaits a layout pass.
func (c *Container) IsDirty() bool {
	return c.dirty
}

// MarkDirty flags the container for relayout.
func (c *Container) MarkDirty() {
	c.dirty = true
}

// MarkClean clears the relayout flag.
func (c *Container) MarkClean() {
	c.dirty = false
}

// IndexOf returns the index of the pane with the given ID, or -1.
func (c *Container) IndexOf(id PaneID) int {
	for i, p := range c.Panes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the pane with the given ID, or nil.
func (c *Container) Find(id PaneID) *Pane {
	if i := c.IndexOf(id); i >= 0 {
		return c.Panes[i]
	}
	return nil
}

// Last returns the index of the terminal pane, or -1 when empty.
func (c *Container) Last() int {
	return len(c.Panes) - 1
}

// Slice returns the panes of a span. The result aliases the container.
func (c *Container) Slice(s Span) []*Pane {
	start := Clamp(s.Start, 0, len(c.Panes))
	end := Clamp(s.End, start, len(c.Panes))
	return c.Panes[start:end]
}

// Before returns the span up to and including the anchor.
func (c *Container) Before() Span {
	return Span{Start: 0, End: c.Anchor + 1}
}

// After returns the span following the anchor.
func (c *Container) After() Span {
	return Span{Start: c.Anchor + 1, End: len(c.Panes)}
}

// TotalSize returns the sum of current sizes of all panes.
func (c *Container) TotalSize() int {
	total := 0
	for _, p := range c.Panes {
		total += p.Size
	}
	return total
}

// EdgeOf returns the trailing edge of the pane at index i.
func (c *Container) EdgeOf(i int) int {
	edge := 0
	for j := 0; j <= i && j < len(c.Panes); j++ {
		edge += c.Panes[j].Size
	}
	return edge
}

// Insert places a pane at index i, shifting later panes. Indices past the
// end append.
func (c *Container) Insert(i int, p *Pane) {
	if i < 0 || i >= len(c.Panes) {
		c.Panes = append(c.Panes, p)
		return
	}
	c.Panes = append(c.Panes, nil)
	copy(c.Panes[i+1:], c.Panes[i:])
	c.Panes[i] = p
}

// Remove takes the pane at index i out of the sequence.
func (c *Container) Remove(i int) *Pane {
	if i < 0 || i >= len(c.Panes) {
		return nil
	}
	p := c.Panes[i]
	copy(c.Panes[i:], c.Panes[i+1:])
	c.Panes[len(c.Panes)-1] = nil
	c.Panes = c.Panes[:len(c.Panes)-1]
	return p
}

// AnchorLast makes the terminal pane the anchor and puts the bearing at its
// trailing edge.
func (c *Container) AnchorLast() {
	c.Anchor = c.Last()
	c.Bearing = c.TotalSize()
}

// SaveDrag captures the sizes and bearing restored by a cancelled drag.
func (c *Container) SaveDrag() {
	sizes := make([]int, len(c.Panes))
	for i, p := range c.Panes {
		sizes[i] = p.Size
	}
	c.Drag.savedSizes = sizes
	c.Drag.savedBearing = c.Bearing
	c.Drag.savedAnchor = c.Anchor
}

// RestoreDrag puts back the state captured by SaveDrag.
func (c *Container) RestoreDrag() {
	if len(c.Drag.savedSizes) != len(c.Panes) {
		return
	}
	for i, p := range c.Panes {
		p.Size = c.Drag.savedSizes[i]
	}
	c.Bearing = c.Drag.savedBearing
	c.Anchor = c.Drag.savedAnchor
}

// ClearDrag ends the drag and drops the saved state.
func (c *Container) ClearDrag() {
	c.Drag = DragState{}
}
