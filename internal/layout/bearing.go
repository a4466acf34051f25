package layout

import "github.com/bnema/paneset/internal/domain/entity"

// Available returns the extent panes may occupy: the container extent less
// its insets, or the current total when the host has not reported one.
func Available(c *entity.Container) int {
	if c.Extent == entity.Unset {
		return c.TotalSize()
	}
	return max(c.Extent-2*c.Settings.Inset, 0)
}

// LeftSpanLimits returns the envelope of the panes up to the anchor.
func LeftSpanLimits(c *entity.Container) Limits {
	return SpanLimits(c.Slice(c.Before()))
}

// RightSpanLimits returns the envelope of the panes after the anchor.
func RightSpanLimits(c *entity.Container) Limits {
	return SpanLimits(c.Slice(c.After()))
}

// FeasibleBearing clamps a bearing so that neither group is forced out of
// its envelope for the given available extent. When both cannot hold, the
// before group's envelope wins.
func FeasibleBearing(c *entity.Container, bearing, available int) int {
	left := LeftSpanLimits(c)
	right := RightSpanLimits(c)

	bearing = entity.Clamp(bearing, available-right.Max, available-right.Min)
	return entity.Clamp(bearing, left.Min, left.Max)
}

// SetAnchor makes the pane at index i the anchor and moves the bearing to
// its trailing edge. Sizes are untouched.
func SetAnchor(c *entity.Container, i int) {
	if c.IsEmpty() {
		c.Anchor, c.Bearing = -1, 0
		return
	}
	c.Anchor = entity.Clamp(i, 0, c.Last())
	c.Bearing = c.EdgeOf(c.Anchor)
}

// Reconcile fits the panes to the container's available extent around the
// bearing and returns the amount that could not be placed or removed.
//
// The bearing is clamped into the feasible range, the before group is
// resized to end at the bearing and the after group to fill the rest.
// Afterwards every pane's nominal size is its new size.
func Reconcile(c *entity.Container) int {
	if c.IsEmpty() {
		return 0
	}
	if c.Anchor < 0 || c.Anchor > c.Last() {
		SetAnchor(c, c.Last())
	}

	available := Available(c)
	bearing := FeasibleBearing(c, c.Bearing, available)

	before := c.Slice(c.Before())
	after := c.Slice(c.After())

	residual := resizeSpan(before, bearing-SpanSize(before))
	residual += resizeSpan(after, available-bearing-SpanSize(after))

	c.Bearing = SpanSize(before)
	CommitNominal(c.Panes)
	return residual
}

// resizeSpan grows the panes by delta when positive, shrinks them when
// negative, and returns the unplaced magnitude.
func resizeSpan(panes []*entity.Pane, delta int) int {
	switch {
	case delta > 0:
		return GrowSpan(panes, delta)
	case delta < 0:
		return ShrinkSpan(panes, -delta)
	default:
		return 0
	}
}
