package config

import (
	"errors"
	"flag"
	"fmt"

	"curve-points/internal/export"
	"curve-points/internal/processing/filters"
	"curve-points/internal/raster"
)

const (
	DecoderGo     = "go"
	DecoderOpenCV = "opencv"

	PreviewNone   = "none"
	PreviewOpenCV = "opencv"
	PreviewFyne   = "fyne"
	PreviewPNG    = "png"
)

// DefaultInput is the image the tool was originally built around.
const DefaultInput = "curve4.png"

var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting of a run.
type Config struct {
	InputPath  string
	SearchDirs []string
	OutputPath string

	Decoder string

	Preview      string
	PreviewDir   string
	PreviewScale int
	OverlayPath  string
	PlotPath     string

	RemoveIsolated bool
	LineLength     int
	MaxSample      int

	LogLevel string
}

func Default() Config {
	return Config{
		InputPath:    DefaultInput,
		SearchDirs:   []string{"resources"},
		OutputPath:   export.DefaultFileName,
		Decoder:      DecoderGo,
		Preview:      PreviewNone,
		PreviewDir:   "preview",
		PreviewScale: 1,
		LineLength:   filters.DefaultLineLength,
		MaxSample:    raster.MaxSample,
	}
}

// RegisterFlags binds the fields of c to fs, using the current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.InputPath, "in", c.InputPath, "input image path")
	fs.StringVar(&c.OutputPath, "out", c.OutputPath, "output point file")
	fs.StringVar(&c.Decoder, "decoder", c.Decoder, "image decoder: go or opencv")
	fs.StringVar(&c.Preview, "preview", c.Preview, "stage preview: none, opencv, fyne or png")
	fs.StringVar(&c.PreviewDir, "preview-dir", c.PreviewDir, "directory for png previews")
	fs.IntVar(&c.PreviewScale, "preview-scale", c.PreviewScale, "integer enlargement of png previews")
	fs.StringVar(&c.OverlayPath, "overlay", c.OverlayPath, "write the surviving points drawn over the input to this png")
	fs.StringVar(&c.PlotPath, "plot", c.PlotPath, "write a scatter plot of the exported points to this png")
	fs.BoolVar(&c.RemoveIsolated, "isolated", c.RemoveIsolated, "drop pixels with fewer than two black neighbours before thinning")
	fs.IntVar(&c.LineLength, "line-length", c.LineLength, "longest diagonal run to strip")
	fs.IntVar(&c.MaxSample, "max-sample", c.MaxSample, "full-scale channel value used for the black threshold")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error (default from LOG_LEVEL)")
}

func (c Config) Classifier() raster.Classifier {
	return raster.Classifier{MaxSample: c.MaxSample}
}

func (c Config) Validate() error {
	var errs []error

	if c.InputPath == "" {
		errs = append(errs, errors.New("input path is empty"))
	}
	if c.OutputPath == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	switch c.Decoder {
	case DecoderGo, DecoderOpenCV:
	default:
		errs = append(errs, fmt.Errorf("unknown decoder %q", c.Decoder))
	}
	switch c.Preview {
	case PreviewNone, PreviewOpenCV, PreviewFyne:
	case PreviewPNG:
		if c.PreviewDir == "" {
			errs = append(errs, errors.New("png preview needs a directory"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown preview %q", c.Preview))
	}
	if c.PreviewScale < 1 {
		errs = append(errs, fmt.Errorf("preview scale must be at least 1, got %d", c.PreviewScale))
	}
	if c.LineLength < 1 {
		errs = append(errs, fmt.Errorf("line length must be at least 1, got %d", c.LineLength))
	}
	if c.MaxSample < 1 || c.MaxSample > raster.MaxSample {
		errs = append(errs, fmt.Errorf("max sample must be in 1..%d, got %d", raster.MaxSample, c.MaxSample))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
