package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/paneset/internal/cli/styles"
	"github.com/bnema/paneset/internal/domain/build"
	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/infrastructure/config"
	"github.com/bnema/paneset/internal/infrastructure/scenario"
)

func TestConfigRenderer_RenderPath(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(config.DefaultConfig()))

	missing := r.RenderPath("/tmp/paneset/config.toml", false)
	assert.Contains(t, missing, "config.toml")
	assert.Contains(t, missing, "created on first run")

	present := r.RenderPath("/tmp/paneset/config.toml", true)
	assert.Contains(t, present, "File exists")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	assert.Contains(t, r.RenderError(errors.New("bad policy")), "bad policy")
	assert.Contains(t, r.RenderWritten("schema", "/tmp/schema.json"), "/tmp/schema.json")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))

	out := r.Render(build.Info{Version: "1.2.3", Commit: "abc123", GoVersion: "go1.25"})

	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func TestReportRenderer_Render(t *testing.T) {
	// Arrange
	out := twoPanes()
	out.Residual = 5
	report := &scenario.Report{
		Scenario: &scenario.Scenario{Name: "squeeze", Path: "testdata/squeeze.toml"},
		Settings: entity.DefaultSettings(),
		Steps: []scenario.StepResult{{
			Op:        scenario.OpDrag,
			Pane:      "a",
			Output:    out,
			Requested: 40,
			Applied:   20,
			Samples:   []scenario.DragSample{{Pointer: 140, Requested: 40, Applied: 20}},
		}},
	}
	r := styles.NewReportRenderer(styles.NewTheme(nil))

	// Act
	rendered := r.Render(report, 40, true)

	// Assert
	assert.Contains(t, rendered, "squeeze")
	assert.Contains(t, rendered, "testdata/squeeze.toml")
	assert.Contains(t, rendered, "slinky")
	assert.Contains(t, rendered, "pointer  140")
	assert.Contains(t, rendered, "dropped +20")
	assert.Contains(t, rendered, "moved 20 of 40")
	assert.Contains(t, rendered, "residual 5")
	assert.Contains(t, rendered, "Offset")
}
