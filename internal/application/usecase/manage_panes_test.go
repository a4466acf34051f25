package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneset/internal/application/port"
	"github.com/bnema/paneset/internal/application/port/mocks"
	"github.com/bnema/paneset/internal/application/usecase"
	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/layout"
)

const cid entity.ContainerID = "main"

var noContent = port.ContentSizerFunc(func(*entity.Pane) entity.Extent { return entity.Extent{} })

func bareSettings() entity.Settings {
	return entity.Settings{Orientation: entity.AxisHorizontal, Policy: entity.PolicySlinky}
}

func paneSizes(out *usecase.LayoutOutput) []int {
	sizes := make([]int, len(out.Placements))
	for i, p := range out.Placements {
		sizes[i] = p.Size
	}
	return sizes
}

// newThreePanes returns a use case holding panes a, b and c reconciled to
// an extent of 300.
func newThreePanes(t *testing.T, ctx context.Context, configs ...usecase.PaneConfig) *usecase.ManagePanesUseCase {
	t.Helper()
	uc := usecase.NewManagePanesUseCase(noContent, nil)
	require.NoError(t, uc.CreateContainer(ctx, cid, bareSettings()))

	for i, id := range []entity.PaneID{"a", "b", "c"} {
		cfg := usecase.DefaultPaneConfig()
		if i < len(configs) {
			cfg = configs[i]
		}
		require.NoError(t, uc.AddPane(ctx, usecase.AddPaneInput{ContainerID: cid, PaneID: id, Config: cfg, Index: -1}))
	}
	out, err := uc.SetExtent(ctx, cid, 300)
	require.NoError(t, err)
	require.Equal(t, []int{100, 100, 100}, paneSizes(out))
	return uc
}

func TestManagePanesUseCase_CreateContainer(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewManagePanesUseCase(noContent, nil)

	require.NoError(t, uc.CreateContainer(ctx, cid, bareSettings()))

	err := uc.CreateContainer(ctx, cid, bareSettings())
	assert.ErrorIs(t, err, usecase.ErrDuplicateContainer)

	bad := bareSettings()
	bad.Policy = "accordion"
	err = uc.CreateContainer(ctx, "other", bad)
	assert.ErrorIs(t, err, layout.ErrUnknownPolicy)

	bad = bareSettings()
	bad.HandleSize = -1
	err = uc.CreateContainer(ctx, "other", bad)
	assert.ErrorIs(t, err, usecase.ErrInvalidSettings)

	assert.Equal(t, []entity.ContainerID{cid}, uc.ContainerIDs())
	require.NoError(t, uc.DeleteContainer(ctx, cid))
	assert.ErrorIs(t, uc.DeleteContainer(ctx, cid), usecase.ErrContainerNotFound)
}

func TestManagePanesUseCase_AddPaneValidation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewManagePanesUseCase(noContent, nil)
	require.NoError(t, uc.CreateContainer(ctx, cid, bareSettings()))

	tests := []struct {
		name  string
		input usecase.AddPaneInput
		want  error
	}{
		{
			name:  "unknown container",
			input: usecase.AddPaneInput{ContainerID: "nope", PaneID: "a", Config: usecase.DefaultPaneConfig()},
			want:  usecase.ErrContainerNotFound,
		},
		{
			name:  "missing id",
			input: usecase.AddPaneInput{ContainerID: cid, Config: usecase.DefaultPaneConfig()},
			want:  usecase.ErrInvalidPane,
		},
		{
			name: "max below min",
			input: usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.PaneConfig{
				Min: 50, Max: 10, Fixed: entity.Unset, Weight: 1,
			}},
			want: usecase.ErrInvalidPane,
		},
		{
			name: "negative weight",
			input: usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.PaneConfig{
				Max: entity.Unbounded, Fixed: entity.Unset, Weight: -1,
			}},
			want: usecase.ErrInvalidPane,
		},
		{
			name: "min above unbounded",
			input: usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.PaneConfig{
				Min: entity.Unbounded + 1, Max: math.MaxInt, Fixed: entity.Unset, Weight: 1,
			}},
			want: usecase.ErrInvalidPane,
		},
		{
			name: "fixed above unbounded",
			input: usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.PaneConfig{
				Max: entity.Unbounded, Fixed: entity.Unbounded + 1, Weight: 1,
			}},
			want: usecase.ErrInvalidPane,
		},
		{
			name: "NaN weight",
			input: usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.PaneConfig{
				Max: entity.Unbounded, Fixed: entity.Unset, Weight: math.NaN(),
			}},
			want: usecase.ErrInvalidPane,
		},
		{
			name: "infinite weight",
			input: usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.PaneConfig{
				Max: entity.Unbounded, Fixed: entity.Unset, Weight: math.Inf(1),
			}},
			want: usecase.ErrInvalidPane,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, uc.AddPane(ctx, tt.input), tt.want)
		})
	}

	require.NoError(t, uc.AddPane(ctx, usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.DefaultPaneConfig()}))
	err := uc.AddPane(ctx, usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.DefaultPaneConfig()})
	assert.ErrorIs(t, err, usecase.ErrDuplicatePane)
}

func TestManagePanesUseCase_MaxAboveUnboundedKeepsBounds(t *testing.T) {
	// Arrange
	ctx := context.Background()
	uc := usecase.NewManagePanesUseCase(noContent, nil)
	settings := bareSettings()
	settings.Padding = 2
	settings.HandleSize = 4
	require.NoError(t, uc.CreateContainer(ctx, cid, settings))

	cfg := usecase.DefaultPaneConfig()
	cfg.Min = entity.Unbounded
	cfg.Max = math.MaxInt

	// Act
	require.NoError(t, uc.AddPane(ctx, usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: cfg, Index: -1}))
	out, err := uc.Flush(ctx, cid)

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Placements, 1)
	assert.Equal(t, entity.Unbounded, out.Placements[0].Size)
}

func TestManagePanesUseCase_FlushComputesRequiredExtent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sizer := mocks.NewMockContentSizer(t)
	sizer.EXPECT().NaturalContentExtent(mock.Anything).Return(entity.Extent{Width: 40, Height: 10})

	committer := mocks.NewMockCommitter(t)
	committer.EXPECT().
		Commit(mock.Anything, cid, entity.Extent{Width: 84, Height: 10}, []entity.Placement{
			{PaneID: "a", Offset: 0, Size: 44},
			{PaneID: "b", Offset: 44, Size: 40},
		}).
		Return(nil).
		Once()

	settings := bareSettings()
	settings.HandleSize = 4
	uc := usecase.NewManagePanesUseCase(sizer, committer)
	require.NoError(t, uc.CreateContainer(ctx, cid, settings))
	for _, id := range []entity.PaneID{"a", "b"} {
		require.NoError(t, uc.AddPane(ctx, usecase.AddPaneInput{ContainerID: cid, PaneID: id, Config: usecase.DefaultPaneConfig(), Index: -1}))
	}

	dirty, err := uc.IsDirty(cid)
	require.NoError(t, err)
	require.True(t, dirty)

	// Act
	out, err := uc.Flush(ctx, cid)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.Extent{Width: 84, Height: 10}, out.Required)
	assert.Equal(t, entity.PaneID("b"), out.Anchor)
	assert.Equal(t, 84, out.Bearing)
	assert.Zero(t, out.Residual)

	dirty, err = uc.IsDirty(cid)
	require.NoError(t, err)
	assert.False(t, dirty)
}

func TestManagePanesUseCase_FlushReturnsCommitError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	committer := mocks.NewMockCommitter(t)
	committer.EXPECT().Commit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(boom)

	uc := usecase.NewManagePanesUseCase(noContent, committer)
	require.NoError(t, uc.CreateContainer(ctx, cid, bareSettings()))
	require.NoError(t, uc.AddPane(ctx, usecase.AddPaneInput{ContainerID: cid, PaneID: "a", Config: usecase.DefaultPaneConfig()}))

	_, err := uc.Flush(ctx, cid)

	assert.ErrorIs(t, err, boom)
}

func TestManagePanesUseCase_AppendKeepsBearingOnLastPane(t *testing.T) {
	ctx := context.Background()
	uc := newThreePanes(t, ctx)

	require.NoError(t, uc.AddPane(ctx, usecase.AddPaneInput{ContainerID: cid, PaneID: "d", Config: usecase.DefaultPaneConfig(), Index: -1}))
	out, err := uc.Flush(ctx, cid)

	require.NoError(t, err)
	assert.Equal(t, entity.PaneID("d"), out.Anchor)
	assert.Equal(t, 300, out.Bearing)
	assert.Equal(t, 300, sum(paneSizes(out)))
	assert.Zero(t, out.Residual)
}

func TestManagePanesUseCase_RemoveAnchorMovesBearingToLastPane(t *testing.T) {
	// Arrange
	ctx := context.Background()
	uc := newThreePanes(t, ctx)
	require.NoError(t, uc.SetAnchor(ctx, cid, "b"))

	out, err := uc.Snapshot(ctx, cid)
	require.NoError(t, err)
	require.Equal(t, entity.PaneID("b"), out.Anchor)
	require.Equal(t, 200, out.Bearing)

	// Act
	require.NoError(t, uc.RemovePane(ctx, cid, "b"))
	out, err = uc.Flush(ctx, cid)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.PaneID("c"), out.Anchor)
	assert.Equal(t, 300, out.Bearing)
	assert.Equal(t, []int{150, 150}, paneSizes(out))
	assert.Zero(t, out.Residual)
}

func TestManagePanesUseCase_RemoveBeforeAnchorKeepsAnchorPane(t *testing.T) {
	ctx := context.Background()
	uc := newThreePanes(t, ctx)
	require.NoError(t, uc.SetAnchor(ctx, cid, "b"))

	require.NoError(t, uc.RemovePane(ctx, cid, "a"))
	out, err := uc.Flush(ctx, cid)

	require.NoError(t, err)
	assert.Equal(t, entity.PaneID("b"), out.Anchor)
	assert.Equal(t, 300, sum(paneSizes(out)))

	assert.ErrorIs(t, uc.RemovePane(ctx, cid, "a"), usecase.ErrPaneNotFound)
}

func TestManagePanesUseCase_AnchorHoldsAcrossExtentChange(t *testing.T) {
	ctx := context.Background()
	uc := newThreePanes(t, ctx)
	require.NoError(t, uc.SetAnchor(ctx, cid, "a"))

	out, err := uc.SetExtent(ctx, cid, 400)

	require.NoError(t, err)
	assert.Equal(t, 100, out.Bearing)
	assert.Equal(t, []int{100, 150, 150}, paneSizes(out))
}

func TestManagePanesUseCase_ConfigurePaneRelayouts(t *testing.T) {
	ctx := context.Background()
	uc := newThreePanes(t, ctx)

	cfg := usecase.DefaultPaneConfig()
	cfg.Max = 50
	require.NoError(t, uc.ConfigurePane(ctx, usecase.ConfigurePaneInput{ContainerID: cid, PaneID: "a", Config: cfg}))

	out, err := uc.Flush(ctx, cid)

	require.NoError(t, err)
	sizes := paneSizes(out)
	assert.Equal(t, 50, sizes[0])
	assert.Equal(t, 300, sum(sizes))

	err = uc.ConfigurePane(ctx, usecase.ConfigurePaneInput{ContainerID: cid, PaneID: "zz", Config: cfg})
	assert.ErrorIs(t, err, usecase.ErrPaneNotFound)
}

func TestManagePanesUseCase_InfeasibleExtentReportsResidual(t *testing.T) {
	ctx := context.Background()
	cfg := usecase.DefaultPaneConfig()
	cfg.Min = 100
	uc := newThreePanes(t, ctx, cfg, cfg, cfg)

	out, err := uc.SetExtent(ctx, cid, 250)

	require.NoError(t, err)
	assert.Equal(t, 50, out.Residual)
	assert.Equal(t, []int{100, 100, 100}, paneSizes(out))
}

func TestManagePanesUseCase_SetExtentRejectsNegative(t *testing.T) {
	ctx := context.Background()
	uc := newThreePanes(t, ctx)

	_, err := uc.SetExtent(ctx, cid, -1)

	assert.ErrorIs(t, err, usecase.ErrInvalidExtent)
}

func TestManagePanesUseCase_EmptyContainerKeepsRequired(t *testing.T) {
	ctx := context.Background()
	uc := newThreePanes(t, ctx)
	before, err := uc.Snapshot(ctx, cid)
	require.NoError(t, err)

	for _, id := range []entity.PaneID{"a", "b", "c"} {
		require.NoError(t, uc.RemovePane(ctx, cid, id))
	}
	out, err := uc.Flush(ctx, cid)

	require.NoError(t, err)
	assert.Empty(t, out.Placements)
	assert.Equal(t, before.Required, out.Required)
	assert.Empty(t, out.Anchor)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
