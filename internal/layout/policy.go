package layout

import (
	"errors"
	"fmt"

	"github.com/bnema/paneset/internal/domain/entity"
)

// ErrUnknownPolicy is returned when a policy name is not recognised.
var ErrUnknownPolicy = errors.New("unknown resize policy")

// Policy decides how a drag delta on one handle propagates among panes.
//
// Apply moves the boundary between panes[before] and panes[after] by delta
// (positive grows the before side) and returns the delta actually applied.
// The sum of all sizes is preserved and every pane stays within its bounds.
type Policy interface {
	Kind() entity.PolicyKind
	Apply(delta, before, after int, panes []*entity.Pane) int
}

// PolicyFor returns the policy registered under kind.
func PolicyFor(kind entity.PolicyKind) (Policy, error) {
	switch kind {
	case entity.PolicySlinky:
		return Slinky{}, nil
	case entity.PolicyGiveTake:
		return GiveTake{}, nil
	case entity.PolicySpreadsheet:
		return Spreadsheet{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, kind)
	}
}

// Policies lists every policy in cycle order.
func Policies() []entity.PolicyKind {
	return []entity.PolicyKind{entity.PolicySlinky, entity.PolicyGiveTake, entity.PolicySpreadsheet}
}

func validPair(before, after int, panes []*entity.Pane) bool {
	return before >= 0 && after > before && after < len(panes)
}

// exchange moves up to |delta| between two panes, bounded by both.
// Excess that either side cannot absorb is dropped.
func exchange(delta int, grow, shrink *entity.Pane) int {
	if delta < 0 {
		return -exchange(-delta, shrink, grow)
	}
	n := min(delta, grow.GrowRoom(), shrink.ShrinkRoom())
	grow.Size += n
	shrink.Size -= n
	return n
}

// GiveTake trades space between the two panes adjacent to the handle only.
type GiveTake struct{}

func (GiveTake) Kind() entity.PolicyKind { return entity.PolicyGiveTake }

func (GiveTake) Apply(delta, before, after int, panes []*entity.Pane) int {
	if delta == 0 || !validPair(before, after, panes) {
		return 0
	}
	return exchange(delta, panes[before], panes[after])
}

// Spreadsheet resizes the pane before the handle and lets the terminal pane
// compensate, leaving the panes in between untouched.
type Spreadsheet struct{}

func (Spreadsheet) Kind() entity.PolicyKind { return entity.PolicySpreadsheet }

func (Spreadsheet) Apply(delta, before, after int, panes []*entity.Pane) int {
	if delta == 0 || !validPair(before, after, panes) {
		return 0
	}
	return exchange(delta, panes[before], panes[len(panes)-1])
}

// Slinky spreads the delta over every pane on each side of the handle
// through the span allocator.
type Slinky struct{}

func (Slinky) Kind() entity.PolicyKind { return entity.PolicySlinky }

func (Slinky) Apply(delta, before, after int, panes []*entity.Pane) int {
	if delta == 0 || !validPair(before, after, panes) {
		return 0
	}
	head := panes[:before+1]
	tail := panes[after:]

	if delta > 0 {
		n := min(delta, GrowRoom(head), ShrinkRoom(tail))
		GrowSpan(head, n)
		ShrinkSpan(tail, n)
		return n
	}
	n := min(-delta, ShrinkRoom(head), GrowRoom(tail))
	ShrinkSpan(head, n)
	GrowSpan(tail, n)
	return -n
}
