package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneset/internal/application/usecase"
	"github.com/bnema/paneset/internal/logging"
)

func TestManagePanes_LogsThroughContextLogger(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))
	uc := usecase.NewManagePanesUseCase(noContent, nil)

	// Act
	require.NoError(t, uc.CreateContainer(ctx, cid, bareSettings()))

	// Assert
	assert.Contains(t, buf.String(), "container created")
	assert.Contains(t, buf.String(), `"container_id":"main"`)
}

func TestManagePanes_SetLoggerResolver(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	uc := usecase.NewManagePanesUseCase(noContent, nil)
	uc.SetLoggerResolver(func(context.Context) *zerolog.Logger { return &logger })
	uc.SetLoggerResolver(nil)

	// Act
	require.NoError(t, uc.CreateContainer(context.Background(), cid, bareSettings()))

	// Assert
	assert.Contains(t, buf.String(), "container created")
}
