package layout

import (
	"math"

	"github.com/bnema/paneset/internal/domain/entity"
)

// weightFunc returns the share a pane takes in a distribution round.
type weightFunc func(p *entity.Pane) float64

// paneWeight treats negative and non-finite weights as zero.
func paneWeight(p *entity.Pane) float64 {
	if p.Weight < 0 || math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) {
		return 0
	}
	return p.Weight
}

func unitWeight(*entity.Pane) float64 {
	return 1
}

// GrowSpan distributes extra across the panes by weight and returns the
// amount that could not be placed.
//
// The first pass fills panes up to their nominal size, the second up to
// their max. Panes with zero weight never change.
func GrowSpan(panes []*entity.Pane, extra int) int {
	return growSpan(panes, extra, paneWeight)
}

// ShrinkSpan removes deficit from the panes by weight and returns the
// amount that could not be removed.
//
// The first pass empties panes down to their nominal size, the second down
// to their min. Panes with zero weight never change.
func ShrinkSpan(panes []*entity.Pane, deficit int) int {
	return shrinkSpan(panes, deficit, paneWeight)
}

func growSpan(panes []*entity.Pane, extra int, weight weightFunc) int {
	if extra <= 0 {
		return 0
	}
	toNominal := func(p *entity.Pane) int {
		if !p.HasNominal() || p.Size >= p.Nominal {
			return 0
		}
		return min(p.Nominal, p.Max) - p.Size
	}
	extra = distribute(panes, extra, weight, toNominal, 1)
	return distribute(panes, extra, weight, (*entity.Pane).GrowRoom, 1)
}

func shrinkSpan(panes []*entity.Pane, deficit int, weight weightFunc) int {
	if deficit <= 0 {
		return 0
	}
	toNominal := func(p *entity.Pane) int {
		if !p.HasNominal() || p.Size <= p.Nominal {
			return 0
		}
		return p.Size - max(p.Nominal, p.Min)
	}
	deficit = distribute(panes, deficit, weight, toNominal, -1)
	return distribute(panes, deficit, weight, (*entity.Pane).ShrinkRoom, -1)
}

// distribute runs one allocator pass. room reports how far a pane may move
// towards the pass target; sign is +1 to grow and -1 to shrink.
//
// Each round hands every eligible pane ration*weight (at least one unit),
// capped by its room and by what is left. Panes that run out of room drop
// out and their weight leaves the total, so the remainder re-flows to the
// others on the next round.
func distribute(panes []*entity.Pane, amount int, weight weightFunc, room func(*entity.Pane) int, sign int) int {
	for amount > 0 {
		total := 0.0
		for _, p := range panes {
			if w := weight(p); w > 0 && room(p) > 0 {
				total += w
			}
		}
		if total == 0 {
			break
		}

		ration := float64(amount) / total
		for _, p := range panes {
			if amount == 0 {
				break
			}
			w := weight(p)
			r := room(p)
			if w <= 0 || r <= 0 {
				continue
			}
			// Only a product below amount is converted to int.
			share := amount
			if f := ration * w; f < float64(amount) {
				share = max(int(f), 1)
			}
			share = min(share, r)
			p.Size += sign * share
			amount -= share
		}
	}
	return amount
}

// GrowRoom returns how much the weighted panes can grow in total.
func GrowRoom(panes []*entity.Pane) int {
	room := 0
	for _, p := range panes {
		if paneWeight(p) > 0 {
			room = entity.AddExtent(room, p.GrowRoom())
		}
	}
	return room
}

// ShrinkRoom returns how much the weighted panes can shrink in total.
func ShrinkRoom(panes []*entity.Pane) int {
	room := 0
	for _, p := range panes {
		if paneWeight(p) > 0 {
			room += p.ShrinkRoom()
		}
	}
	return room
}

// Limits is the combined min/max envelope of a span.
type Limits struct {
	Min int
	Max int
}

// SpanLimits sums the min and max of every pane.
func SpanLimits(panes []*entity.Pane) Limits {
	var l Limits
	for _, p := range panes {
		l.Min += p.Min
		l.Max = entity.AddExtent(l.Max, p.Max)
	}
	return l
}

// SpanSize sums the current sizes of the panes.
func SpanSize(panes []*entity.Pane) int {
	total := 0
	for _, p := range panes {
		total += p.Size
	}
	return total
}
