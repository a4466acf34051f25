package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/layout"
)

func newPane(id string, minSize, maxSize int, weight float64) *entity.Pane {
	p := entity.NewPane(entity.PaneID(id))
	p.RequestedMin = minSize
	p.RequestedMax = maxSize
	p.Weight = weight
	return p
}

func TestResetPane_UnpinnedFoldsAllowanceIntoBounds(t *testing.T) {
	p := newPane("a", 10, 100, 1)
	p.Nominal = 42

	layout.ResetPane(p, 30, 2, 4)

	assert.Equal(t, 16, p.Min)
	assert.Equal(t, 106, p.Max)
	assert.Equal(t, entity.Unset, p.Nominal)
	assert.Equal(t, 6, p.Allowance())
}

func TestResetPane_UnboundedMaxStaysUnbounded(t *testing.T) {
	p := entity.NewPane("a")

	layout.ResetPane(p, 0, 3, 4)

	assert.Equal(t, 7, p.Min)
	assert.Equal(t, entity.Unbounded, p.Max)
}

func TestResetPane_MinNearUnboundedSaturates(t *testing.T) {
	p := newPane("a", entity.Unbounded-2, entity.Unbounded, 1)

	layout.ResetPane(p, 0, 3, 4)
	p.Size = p.Min
	layout.SetNominal(p)

	assert.Equal(t, entity.Unbounded, p.Min)
	assert.Equal(t, entity.Unbounded, p.Max)
	assert.True(t, p.Within())
}

func TestResetPane_PinnedCollapsesBounds(t *testing.T) {
	tests := []struct {
		name  string
		fixed int
		want  int
	}{
		{name: "within bounds", fixed: 40, want: 46},
		{name: "below requested min", fixed: 5, want: 16},
		{name: "above requested max", fixed: 500, want: 106},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPane("a", 10, 100, 1)
			p.Fixed = tt.fixed

			layout.ResetPane(p, 0, 2, 4)

			assert.Equal(t, tt.want, p.Min)
			assert.Equal(t, tt.want, p.Max)
			assert.Equal(t, tt.want, p.Nominal)
		})
	}
}

func TestResetPane_Idempotent(t *testing.T) {
	p := newPane("a", 10, 100, 1)

	layout.ResetPane(p, 30, 1, 4)
	first := *p
	layout.ResetPane(p, 30, 1, 4)

	assert.Equal(t, first, *p)
}

func TestSetNominal_ClampsSizeAndRecordsNominal(t *testing.T) {
	// Arrange
	p := newPane("a", 10, 100, 1)
	layout.ResetPane(p, 0, 0, 0)
	p.Size = 5

	// Act
	nominal := layout.SetNominal(p)

	// Assert
	assert.Equal(t, 10, nominal)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, 10, p.Nominal)
	assert.Equal(t, 100, p.Max)
}

func TestSetNominal_UndoesPinning(t *testing.T) {
	p := newPane("a", 0, 100, 1)
	p.Fixed = 50
	layout.ResetPane(p, 0, 0, 0)
	p.Size = 50

	layout.SetNominal(p)

	assert.Equal(t, 50, p.Min)
	assert.Equal(t, 50, p.Max)
	assert.Equal(t, 50, p.Nominal)
}

func TestSetNominal_ResizeMask(t *testing.T) {
	tests := []struct {
		name    string
		mask    entity.ResizeMask
		wantMin int
		wantMax int
	}{
		{name: "both", mask: entity.ResizeBoth, wantMin: 0, wantMax: 100},
		{name: "no grow", mask: entity.ResizeMask{CanShrink: true}, wantMin: 0, wantMax: 30},
		{name: "no shrink", mask: entity.ResizeMask{CanGrow: true}, wantMin: 30, wantMax: 100},
		{name: "frozen", mask: entity.ResizeMask{}, wantMin: 30, wantMax: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPane("a", 0, 100, 1)
			p.Resize = tt.mask
			layout.ResetPane(p, 0, 0, 0)
			p.Size = 30

			layout.SetNominal(p)

			assert.Equal(t, tt.wantMin, p.Min)
			assert.Equal(t, tt.wantMax, p.Max)
			assert.True(t, p.Within())
		})
	}
}
