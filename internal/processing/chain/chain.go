package chain

import (
	"context"
	"fmt"

	"curve-points/internal/raster"
)

// Step is one buffer-to-buffer stage. Implementations must not mutate
// their input.
type Step interface {
	Apply(ctx context.Context, input *raster.Buffer) (*raster.Buffer, error)
	Name() string
}

// Observer is notified with each step's output as soon as it is produced.
type Observer interface {
	StepCompleted(name string, output *raster.Buffer)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(name string, output *raster.Buffer)

func (f ObserverFunc) StepCompleted(name string, output *raster.Buffer) {
	f(name, output)
}

type ProcessingChain struct {
	steps     []Step
	observers []Observer
}

func NewProcessingChain(steps []Step) *ProcessingChain {
	return &ProcessingChain{
		steps: steps,
	}
}

func (pc *ProcessingChain) Observe(o Observer) {
	pc.observers = append(pc.observers, o)
}

// Execute runs every step in order, feeding each output into the next step.
func (pc *ProcessingChain) Execute(ctx context.Context, input *raster.Buffer) (*raster.Buffer, error) {
	if input.Empty() {
		return nil, raster.ErrEmptyBuffer
	}

	current := input
	for _, step := range pc.steps {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := step.Apply(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("step %s failed: %w", step.Name(), err)
		}
		if !result.SameSize(input) {
			return nil, fmt.Errorf("step %s failed: %w", step.Name(), raster.ErrSizeMismatch)
		}

		for _, o := range pc.observers {
			o.StepCompleted(step.Name(), result)
		}

		current = result
	}

	return current, nil
}

func (pc *ProcessingChain) AddStep(step Step) {
	pc.steps = append(pc.steps, step)
}

func (pc *ProcessingChain) StepCount() int {
	return len(pc.steps)
}

func (pc *ProcessingChain) GetStepNames() []string {
	names := make([]string, len(pc.steps))
	for i, step := range pc.steps {
		names[i] = step.Name()
	}
	return names
}
