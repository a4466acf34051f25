// Package layout implements the one-dimensional pane layout engine: the
// constraint resolver, the weighted span allocator, the directional layout
// driver, the bearing resizer and the handle adjustment policies.
//
// Every function here runs to completion on the caller's goroutine and
// mutates the panes it is given. Callers own any locking.
package layout

import "github.com/bnema/paneset/internal/domain/entity"

// ResetPane prepares a pane for a layout pass.
//
// The candidate size is requested bounded by the pane's requested min/max.
// A pinned pane collapses min, max and nominal to candidate + allowance;
// otherwise min/max become the requested bounds plus the allowance and the
// nominal size is unset. allowance is the padding plus, when the pane shows
// its handle, the handle extent.
func ResetPane(p *entity.Pane, requested, padding, handle int) {
	allowance := padding + handle
	p.SetAllowance(allowance)

	if p.IsPinned() {
		requested = p.Fixed
	}
	candidate := entity.Clamp(requested, p.RequestedMin, p.RequestedMax)

	if p.IsPinned() {
		pinned := entity.AddExtent(candidate, allowance)
		p.Min, p.Max, p.Nominal = pinned, pinned, pinned
		return
	}

	p.Min = entity.AddExtent(p.RequestedMin, allowance)
	p.Max = entity.AddExtent(p.RequestedMax, allowance)
	p.Nominal = entity.Unset
}

// SetNominal restores the pane's true bounds, clamps its size into them and
// records the result as its nominal size, which it returns.
//
// A pane that cannot grow has max = nominal; one that cannot shrink has
// min = nominal.
func SetNominal(p *entity.Pane) int {
	allowance := p.Allowance()
	if p.IsPinned() {
		pinned := entity.AddExtent(entity.Clamp(p.Fixed, p.RequestedMin, p.RequestedMax), allowance)
		p.Min, p.Max = pinned, pinned
	} else {
		p.Min = entity.AddExtent(p.RequestedMin, allowance)
		p.Max = entity.AddExtent(p.RequestedMax, allowance)
	}

	p.Size = entity.Clamp(p.Size, p.Min, p.Max)
	p.Nominal = p.Size

	if !p.Resize.CanGrow {
		p.Max = p.Nominal
	}
	if !p.Resize.CanShrink {
		p.Min = p.Nominal
	}
	return p.Nominal
}

// CommitNominal makes each pane's current size its new nominal size.
func CommitNominal(panes []*entity.Pane) {
	for _, p := range panes {
		p.Nominal = p.Size
	}
}
