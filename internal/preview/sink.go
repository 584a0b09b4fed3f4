package preview

import (
	"errors"

	"curve-points/internal/raster"
)

// Sink receives a titled snapshot of every pipeline stage. Sinks observe
// only; they must not modify the buffer.
type Sink interface {
	Show(title string, b *raster.Buffer) error
}

// Finisher is implemented by sinks that do their work once the run is
// over, such as a window listing every stage.
type Finisher interface {
	Finish() error
}

type nop struct{}

func (nop) Show(string, *raster.Buffer) error { return nil }

// Nop is the default headless sink.
func Nop() Sink {
	return nop{}
}

// Multi fans every snapshot out to several sinks.
type Multi []Sink

func (m Multi) Show(title string, b *raster.Buffer) error {
	var errs []error
	for _, s := range m {
		if err := s.Show(title, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Finish() error {
	var errs []error
	for _, s := range m {
		if f, ok := s.(Finisher); ok {
			if err := f.Finish(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Finish calls s.Finish when s implements Finisher.
func Finish(s Sink) error {
	if f, ok := s.(Finisher); ok {
		return f.Finish()
	}
	return nil
}
