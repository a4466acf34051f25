// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "math"

// PaneID uniquely identifies a pane within its container.
type PaneID string

const (
	// Unset marks a nominal size (or a fixed size override) that has not been
	// resolved yet.
	Unset = -1

	// Unbounded is the maximum size of a pane without an upper limit.
	Unbounded = math.MaxInt32
)

// ResizeMask controls whether automatic allocation may move a pane away
// from its nominal size.
type ResizeMask struct {
	CanGrow   bool
	CanShrink bool
}

// ResizeBoth lets a pane grow and shrink.
var ResizeBoth = ResizeMask{CanGrow: true, CanShrink: true}

// Pane is one resizable region along the layout axis.
//
// RequestedMin, RequestedMax, Fixed, Weight, Resize and HasHandle are
// user-declared. Min, Max, Nominal and Size are computed by the layout
// engine; Size is the authoritative allocation.
type Pane struct {
	ID PaneID

	RequestedMin int
	RequestedMax int
	// Fixed pins the pane at this size for a layout pass when not Unset.
	Fixed     int
	Weight    float64
	Resize    ResizeMask
	HasHandle bool

	Min     int
	Max     int
	Nominal int
	Size    int

	// allowance is the padding + handle extent folded into Min/Max by the
	// last reset.
	allowance int
}

// NewPane creates a pane with no bounds, weight 1 and both resize directions
// enabled.
func NewPane(id PaneID) *Pane {
	return &Pane{
		ID:           id,
		RequestedMin: 0,
		RequestedMax: Unbounded,
		Fixed:        Unset,
		Weight:       1,
		Resize:       ResizeBoth,
		Max:          Unbounded,
		Nominal:      Unset,
	}
}

// Allowance returns the padding and handle extent included in Min/Max.
func (p *Pane) Allowance() int {
	return p.allowance
}

// SetAllowance records the padding and handle extent of the current pass.
func (p *Pane) SetAllowance(allowance int) {
	p.allowance = allowance
}

// HasNominal reports whether the nominal size has been resolved.
func (p *Pane) HasNominal() bool {
	return p.Nominal != Unset
}

// ResolvedNominal returns the nominal size, falling back to the current size
// when it is unset.
func (p *Pane) ResolvedNominal() int {
	if p.Nominal == Unset {
		return p.Size
	}
	return p.Nominal
}

// IsPinned reports whether the pane carries a fixed size override.
func (p *Pane) IsPinned() bool {
	return p.Fixed != Unset
}

// GrowRoom returns how much the pane can still grow before reaching Max.
func (p *Pane) GrowRoom() int {
	if p.Size >= p.Max {
		return 0
	}
	return p.Max - p.Size
}

// ShrinkRoom returns how much the pane can still shrink before reaching Min.
func (p *Pane) ShrinkRoom() int {
	if p.Size <= p.Min {
		return 0
	}
	return p.Size - p.Min
}

// Within reports whether Size satisfies Min <= Size <= Max.
func (p *Pane) Within() bool {
	return p.Min <= p.Size && p.Size <= p.Max
}

// AddExtent adds a non-negative extent to a bound, keeping Unbounded sticky.
func AddExtent(bound, extent int) int {
	if bound >= Unbounded || bound > Unbounded-extent {
		return Unbounded
	}
	return bound + extent
}

// Clamp bounds v into [lo, hi]. When lo > hi, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
