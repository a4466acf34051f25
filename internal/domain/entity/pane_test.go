package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPane_Defaults(t *testing.T) {
	p := NewPane("a")

	assert.Equal(t, PaneID("a"), p.ID)
	assert.Equal(t, Unbounded, p.RequestedMax)
	assert.Equal(t, Unbounded, p.Max)
	assert.Equal(t, Unset, p.Fixed)
	assert.Equal(t, Unset, p.Nominal)
	assert.Equal(t, 1.0, p.Weight)
	assert.Equal(t, ResizeBoth, p.Resize)
	assert.False(t, p.HasNominal())
	assert.False(t, p.IsPinned())
}

func TestPane_Rooms(t *testing.T) {
	tests := []struct {
		name   string
		pane   Pane
		grow   int
		shrink int
		within bool
	}{
		{name: "inside bounds", pane: Pane{Min: 10, Max: 50, Size: 30}, grow: 20, shrink: 20, within: true},
		{name: "at max", pane: Pane{Min: 10, Max: 50, Size: 50}, grow: 0, shrink: 40, within: true},
		{name: "below min", pane: Pane{Min: 10, Max: 50, Size: 5}, grow: 45, shrink: 0, within: false},
		{name: "above max", pane: Pane{Min: 10, Max: 50, Size: 60}, grow: 0, shrink: 50, within: false},
		{name: "unbounded", pane: Pane{Max: Unbounded, Size: 0}, grow: Unbounded, shrink: 0, within: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.grow, tt.pane.GrowRoom())
			assert.Equal(t, tt.shrink, tt.pane.ShrinkRoom())
			assert.Equal(t, tt.within, tt.pane.Within())
		})
	}
}

func TestPane_ResolvedNominal(t *testing.T) {
	p := NewPane("a")
	p.Size = 42

	assert.Equal(t, 42, p.ResolvedNominal())

	p.Nominal = 30
	assert.True(t, p.HasNominal())
	assert.Equal(t, 30, p.ResolvedNominal())
}

func TestAddExtent(t *testing.T) {
	assert.Equal(t, 14, AddExtent(10, 4))
	assert.Equal(t, Unbounded, AddExtent(Unbounded, 4))
	assert.Equal(t, Unbounded, AddExtent(Unbounded-2, 4))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(12, 0, 10))
	assert.Equal(t, 8, Clamp(3, 8, 4), "lo wins when bounds cross")
}
