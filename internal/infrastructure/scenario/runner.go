package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/paneset/internal/application/port"
	"github.com/bnema/paneset/internal/application/usecase"
	"github.com/bnema/paneset/internal/domain/entity"
	"github.com/bnema/paneset/internal/logging"
)

// StepResult is the geometry after one step.
type StepResult struct {
	Op     Op
	Pane   string
	Output *usecase.LayoutOutput
	// Requested and Applied sum the handle movement of a drag.
	Requested int
	Applied   int
	Samples   []DragSample
}

// DragSample is the handle movement for one pointer position.
type DragSample struct {
	Pointer   int
	Requested int
	Applied   int
}

// Report is the outcome of one scenario run.
type Report struct {
	Scenario *Scenario
	Settings entity.Settings
	Steps    []StepResult
}

// Final returns the geometry after the last step.
func (r *Report) Final() *usecase.LayoutOutput {
	if len(r.Steps) == 0 {
		return nil
	}
	return r.Steps[len(r.Steps)-1].Output
}

// Runner replays scenarios on a fresh use case per run.
type Runner struct {
	base entity.Settings
}

// NewRunner creates a runner whose containers start from base settings.
func NewRunner(base entity.Settings) *Runner {
	return &Runner{base: base}
}

// Run replays one scenario. The initial panes are added and laid out at
// the scenario extent before the steps run.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	ctx = logging.WithComponent(ctx, "scenario")
	log := logging.FromContext(ctx)

	content := make(map[entity.PaneID]entity.Extent, len(sc.Panes))
	settings := sc.Settings.Apply(r.base)
	sizer := port.ContentSizerFunc(func(p *entity.Pane) entity.Extent {
		return content[p.ID]
	})

	uc := usecase.NewManagePanesUseCase(sizer, nil)
	id := entity.ContainerID(sc.Name)
	if err := uc.CreateContainer(ctx, id, settings); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	report := &Report{Scenario: sc, Settings: settings}
	for _, p := range sc.Panes {
		content[entity.PaneID(p.ID)] = settings.Orientation.Extent(p.Content, p.Cross)
		if err := uc.AddPane(ctx, usecase.AddPaneInput{
			ContainerID: id,
			PaneID:      entity.PaneID(p.ID),
			Config:      p.Config(),
			Index:       -1,
		}); err != nil {
			return nil, fmt.Errorf("scenario %s: pane %s: %w", sc.Name, p.ID, err)
		}
	}

	first, err := r.initial(ctx, uc, id, sc.Extent)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	report.Steps = append(report.Steps, StepResult{Op: OpFlush, Output: first})

	for i, step := range sc.Steps {
		res, err := r.step(ctx, uc, id, content, settings.Orientation, step)
		if err != nil {
			return report, fmt.Errorf("scenario %s: steps[%d] (%s): %w", sc.Name, i, step.Op, err)
		}
		report.Steps = append(report.Steps, res)
	}

	final := report.Final()
	log.Info().
		Str("scenario", sc.Name).
		Int("steps", len(sc.Steps)).
		Int("bearing", final.Bearing).
		Int("residual", final.Residual).
		Msg("scenario complete")
	return report, nil
}

func (r *Runner) initial(ctx context.Context, uc *usecase.ManagePanesUseCase, id entity.ContainerID, extent int) (*usecase.LayoutOutput, error) {
	if extent > 0 {
		return uc.SetExtent(ctx, id, extent)
	}
	return uc.Flush(ctx, id)
}

func (r *Runner) step(
	ctx context.Context,
	uc *usecase.ManagePanesUseCase,
	id entity.ContainerID,
	content map[entity.PaneID]entity.Extent,
	axis entity.Axis,
	step Step,
) (StepResult, error) {
	res := StepResult{Op: step.Op, Pane: step.Pane}
	pane := entity.PaneID(step.Pane)

	var err error
	switch step.Op {
	case OpExtent:
		res.Output, err = uc.SetExtent(ctx, id, step.Extent)
		return res, err

	case OpAdd:
		spec := PaneSpec{ID: step.Pane}
		if step.Config != nil {
			spec = *step.Config
			if spec.ID == "" {
				spec.ID = step.Pane
			}
		}
		res.Pane = spec.ID
		index := -1
		if step.Index != nil {
			index = *step.Index
		}
		content[entity.PaneID(spec.ID)] = axis.Extent(spec.Content, spec.Cross)
		err = uc.AddPane(ctx, usecase.AddPaneInput{
			ContainerID: id,
			PaneID:      entity.PaneID(spec.ID),
			Config:      spec.Config(),
			Index:       index,
		})

	case OpRemove:
		err = uc.RemovePane(ctx, id, pane)

	case OpConfigure:
		content[pane] = axis.Extent(step.Config.Content, step.Config.Cross)
		err = uc.ConfigurePane(ctx, usecase.ConfigurePaneInput{
			ContainerID: id,
			PaneID:      pane,
			Config:      step.Config.Config(),
		})

	case OpAnchor:
		err = uc.SetAnchor(ctx, id, pane)

	case OpPolicy:
		err = uc.SetPolicy(ctx, id, entity.PolicyKind(step.Policy))

	case OpDrag:
		return r.drag(ctx, uc, id, step)

	case OpFlush:
	}
	if err != nil {
		return res, err
	}

	res.Output, err = uc.Flush(ctx, id)
	return res, err
}

func (r *Runner) drag(ctx context.Context, uc *usecase.ManagePanesUseCase, id entity.ContainerID, step Step) (StepResult, error) {
	res := StepResult{Op: step.Op, Pane: step.Pane}

	if err := uc.BeginDrag(ctx, usecase.BeginDragInput{
		ContainerID: id,
		PaneID:      entity.PaneID(step.Pane),
		Pointer:     step.Path[0],
	}); err != nil {
		return res, err
	}

	for _, pointer := range step.Path[1:] {
		out, err := uc.DragTo(ctx, id, pointer)
		if err != nil {
			_, _ = uc.CancelDrag(ctx, id)
			return res, err
		}
		res.Requested += out.Requested
		res.Applied += out.Applied
		res.Samples = append(res.Samples, DragSample{
			Pointer:   pointer,
			Requested: out.Requested,
			Applied:   out.Applied,
		})
	}

	var err error
	if step.Cancel {
		res.Output, err = uc.CancelDrag(ctx, id)
	} else {
		res.Output, err = uc.EndDrag(ctx, id)
	}
	return res, err
}

// LoadAll loads scenario files, stopping at the first error.
func LoadAll(paths []string) ([]*Scenario, error) {
	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := Load(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// RunAll replays scenarios concurrently, at most parallel at a time
// (unlimited when parallel <= 0). Reports keep the input order.
func (r *Runner) RunAll(ctx context.Context, scenarios []*Scenario, parallel int) ([]*Report, error) {
	reports := make([]*Report, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, sc := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := r.Run(gctx, sc)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
