package pipeline

import (
	"context"
	"fmt"
	"os"

	"curve-points/internal/config"
	"curve-points/internal/debug/timing"
	"curve-points/internal/export"
	"curve-points/internal/logger"
	"curve-points/internal/plot"
	"curve-points/internal/preview"
	"curve-points/internal/processing/chain"
	"curve-points/internal/processing/filters"
	"curve-points/internal/processing/threshold"
	"curve-points/internal/raster"
)

const component = "Pipeline"

// Coordinator runs load, the processing chain, export and previews for a
// single input.
type Coordinator struct {
	cfg        config.Config
	classifier raster.Classifier
	loader     Loader
	sink       preview.Sink
	logger     logger.Logger
	timing     *timing.Tracker
}

// NewCoordinator wires a run. A nil sink means no preview.
func NewCoordinator(cfg config.Config, loader Loader, sink preview.Sink, log logger.Logger) *Coordinator {
	if sink == nil {
		sink = preview.Nop()
	}
	return &Coordinator{
		cfg:        cfg,
		classifier: cfg.Classifier(),
		loader:     loader,
		sink:       sink,
		logger:     log,
		timing:     timing.NewTracker(),
	}
}

// Chain builds the processing chain for the configuration. Every step
// records its duration in the coordinator's tracker.
func (c *Coordinator) Chain() *chain.ProcessingChain {
	pc := chain.NewProcessingChain(nil)
	pc.AddStep(c.timed(threshold.NewBinarizer(c.classifier)))
	if c.cfg.RemoveIsolated {
		pc.AddStep(c.timed(filters.NewRemoveIsolated(c.classifier)))
	}
	pc.AddStep(c.timed(filters.NewRelevantPoints(c.classifier)))
	pc.AddStep(c.timed(filters.NewStripDiagonals(c.classifier, c.cfg.LineLength)))
	return pc
}

func (c *Coordinator) timed(step chain.Step) chain.Step {
	return &timedStep{Step: step, timing: c.timing}
}

// Run loads the input, processes it and writes the point file. Load and
// processing errors abort the run; export and plot failures are logged
// and recorded in the result.
func (c *Coordinator) Run(ctx context.Context) (*Result, error) {
	src, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{Rows: src.Rows(), Cols: src.Cols(), Channels: src.Channels()}
	c.logger.Info(component, "image loaded", map[string]interface{}{
		"path":     c.cfg.InputPath,
		"cols":     src.Cols(),
		"rows":     src.Rows(),
		"channels": src.Channels(),
	})
	c.show(preview.OriginalTitle, src)

	final, err := c.process(ctx, src, result)
	if err != nil {
		return nil, err
	}

	result.Points = export.Points(final, c.classifier)
	exportCtx := c.timing.StartTimingContext(ctx, "export")
	err = export.WriteFile(c.cfg.OutputPath, result.Points)
	c.timing.EndTiming(exportCtx)
	if err != nil {
		result.ExportErr = err
		c.logger.Error(component, "point export failed", err, map[string]interface{}{
			"output": c.cfg.OutputPath,
		})
	} else {
		c.logger.Info(component, "points exported", map[string]interface{}{
			"output": c.cfg.OutputPath,
			"points": len(result.Points),
		})
	}

	if c.cfg.PlotPath != "" {
		if err := c.writePlot(result); err != nil {
			result.PlotErr = err
			c.logger.Error(component, "plot rendering failed", err, map[string]interface{}{
				"plot": c.cfg.PlotPath,
			})
		}
	}

	if err := preview.Finish(c.sink); err != nil {
		c.logger.Warning(component, "preview failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	result.Timings = c.timing.Samples()
	for _, s := range result.Timings {
		c.logger.Debug(component, "timing", map[string]interface{}{
			"operation":   s.Operation,
			"duration_ms": s.Duration.Milliseconds(),
		})
	}
	c.logger.Debug(component, "run timed", map[string]interface{}{
		"total_ms": c.timing.Total().Milliseconds(),
	})

	return result, nil
}

func (c *Coordinator) load(ctx context.Context) (*raster.Buffer, error) {
	timingCtx := c.timing.StartTimingContext(ctx, "load")
	src, err := c.loader.Load(c.cfg.InputPath)
	c.timing.EndTiming(timingCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}
	if src.Empty() {
		return nil, fmt.Errorf("failed to load input: %w", raster.ErrEmptyBuffer)
	}
	return src, nil
}

func (c *Coordinator) process(ctx context.Context, src *raster.Buffer, result *Result) (*raster.Buffer, error) {
	pc := c.Chain()
	c.logger.Debug(component, "processing", map[string]interface{}{
		"steps": pc.GetStepNames(),
	})

	previous := src
	var observeErr error
	pc.Observe(chain.ObserverFunc(func(name string, output *raster.Buffer) {
		m, err := CalculateStageMetrics(name, previous, output, c.classifier)
		if err != nil {
			observeErr = err
			return
		}
		m.Duration, _ = c.timing.Latest(name)
		result.Stages = append(result.Stages, m)
		c.logger.Debug(component, "stage completed", m.fields())
		c.show(name, output)
		previous = output
	}))

	final, err := pc.Execute(ctx, src)
	if err != nil {
		return nil, err
	}
	if observeErr != nil {
		return nil, observeErr
	}
	return final, nil
}

func (c *Coordinator) show(title string, b *raster.Buffer) {
	if err := c.sink.Show(title, b); err != nil {
		c.logger.Warning(component, "preview failed", map[string]interface{}{
			"stage": title,
			"error": err.Error(),
		})
	}
}

func (c *Coordinator) writePlot(result *Result) (err error) {
	f, err := os.Create(c.cfg.PlotPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.cfg.PlotPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	opts := plot.DefaultOptions()
	opts.Rows = result.Rows
	opts.Cols = result.Cols
	return plot.Render(f, result.Points, opts)
}

// timedStep records the wrapped step's duration under its name.
type timedStep struct {
	chain.Step
	timing *timing.Tracker
}

func (t *timedStep) Apply(ctx context.Context, input *raster.Buffer) (*raster.Buffer, error) {
	timingCtx := t.timing.StartTimingContext(ctx, t.Name())
	defer t.timing.EndTiming(timingCtx)
	return t.Step.Apply(ctx, input)
}
