package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/layout"
)

func row(n int) []*entity.Pane {
	panes := make([]*entity.Pane, n)
	for i := range panes {
		panes[i] = sized(string(rune('a'+i)), 0, 1000, 100, 100, 1)
	}
	return panes
}

func TestPolicyFor(t *testing.T) {
	for _, kind := range layout.Policies() {
		p, err := layout.PolicyFor(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, p.Kind())
	}

	_, err := layout.PolicyFor("accordion")
	assert.ErrorIs(t, err, layout.ErrUnknownPolicy)
}

func TestGiveTake_BoundedByFirstSaturatingSide(t *testing.T) {
	// Arrange
	a := sized("a", 0, 120, 100, 100, 1)
	b := sized("b", 80, 1000, 150, 150, 1)
	panes := []*entity.Pane{a, b}

	// Act
	applied := layout.GiveTake{}.Apply(40, 0, 1, panes)

	// Assert
	assert.Equal(t, 20, applied)
	assert.Equal(t, 120, a.Size)
	assert.Equal(t, 130, b.Size)
}

func TestGiveTake_DropsExcessWithoutCascading(t *testing.T) {
	panes := row(3)
	panes[1].Min = 90

	applied := layout.GiveTake{}.Apply(50, 0, 1, panes)

	assert.Equal(t, 10, applied)
	assert.Equal(t, []int{110, 90, 100}, sizes(panes))
}

func TestGiveTake_NegativeDelta(t *testing.T) {
	panes := row(3)

	applied := layout.GiveTake{}.Apply(-30, 1, 2, panes)

	assert.Equal(t, -30, applied)
	assert.Equal(t, []int{100, 70, 130}, sizes(panes))
}

func TestSpreadsheet_LastPaneCompensates(t *testing.T) {
	panes := row(4)

	applied := layout.Spreadsheet{}.Apply(30, 0, 1, panes)

	assert.Equal(t, 30, applied)
	assert.Equal(t, []int{130, 100, 100, 70}, sizes(panes))
}

func TestSpreadsheet_BoundedByLastPane(t *testing.T) {
	panes := row(3)
	panes[2].Min = 90

	applied := layout.Spreadsheet{}.Apply(30, 0, 1, panes)

	assert.Equal(t, 10, applied)
	assert.Equal(t, []int{110, 100, 90}, sizes(panes))
}

func TestSlinky_SpreadsOverBothSides(t *testing.T) {
	panes := row(4)

	applied := layout.Slinky{}.Apply(60, 1, 2, panes)

	assert.Equal(t, 60, applied)
	assert.Equal(t, []int{130, 130, 70, 70}, sizes(panes))
}

func TestSlinky_ReversingReturnsToNominal(t *testing.T) {
	panes := row(4)

	layout.Slinky{}.Apply(60, 1, 2, panes)
	applied := layout.Slinky{}.Apply(-60, 1, 2, panes)

	assert.Equal(t, -60, applied)
	assert.Equal(t, []int{100, 100, 100, 100}, sizes(panes))
}

func TestSlinky_AbsorbsWhileSlackRemains(t *testing.T) {
	panes := row(3)
	panes[1].Min = 90

	applied := layout.Slinky{}.Apply(50, 0, 1, panes)

	assert.Equal(t, 50, applied)
	assert.Equal(t, []int{90, 60}, sizes(panes[1:]))
	assert.Equal(t, 150, panes[0].Size)
}

func TestPolicies_PreserveTotalAndBounds(t *testing.T) {
	for _, kind := range layout.Policies() {
		t.Run(string(kind), func(t *testing.T) {
			policy, err := layout.PolicyFor(kind)
			require.NoError(t, err)

			panes := row(4)
			panes[0].Max = 130
			panes[3].Min = 60
			total := layout.SpanSize(panes)

			for _, delta := range []int{45, -300, 17, 500, -2} {
				policy.Apply(delta, 1, 2, panes)

				assert.Equal(t, total, layout.SpanSize(panes))
				for _, p := range panes {
					assert.True(t, p.Within(), "pane %s out of bounds", p.ID)
				}
			}
		})
	}
}

func TestPolicies_IgnoreInvalidPairs(t *testing.T) {
	for _, kind := range layout.Policies() {
		policy, err := layout.PolicyFor(kind)
		require.NoError(t, err)

		panes := row(2)
		assert.Zero(t, policy.Apply(10, 1, 2, panes))
		assert.Zero(t, policy.Apply(10, -1, 0, panes))
		assert.Equal(t, []int{100, 100}, sizes(panes))
	}
}
