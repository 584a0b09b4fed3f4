package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"curve-points/internal/config"
	"curve-points/internal/imageio"
	"curve-points/internal/logger"
	"curve-points/internal/pipeline"
	"curve-points/internal/preview"
	"curve-points/internal/shutdown"

	"github.com/rs/zerolog"
)

const (
	AppName    = "curve-points"
	AppVersion = "1.0.0"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Factories builds the loader and preview sink for a validated config.
// Nil members fall back to the pure-Go implementations.
type Factories struct {
	Loader func(cfg config.Config) pipeline.Loader
	Sink   func(cfg config.Config, shutdownMgr *shutdown.Manager) preview.Sink
}

// Run parses args, runs one extraction and returns the exit code. Logs
// and usage go to stderr.
func Run(args []string, stderr io.Writer, f Factories) int {
	cfg := config.Default()

	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n\nExtracts edge points from an image into an \"x y\" text file.\n\n", AppName)
		fs.PrintDefaults()
	}
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	log := logger.NewConsoleLogger(stderr, determineLogLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		log.Error("Config", "invalid configuration", err, nil)
		return ExitUsage
	}

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Listen()
	defer shutdownMgr.Shutdown()

	log.Info("Main", "starting", map[string]interface{}{
		"version": AppVersion,
		"input":   cfg.InputPath,
		"output":  cfg.OutputPath,
		"decoder": cfg.Decoder,
		"preview": cfg.Preview,
	})

	coordinator := pipeline.NewCoordinator(cfg, f.loader(cfg), f.sink(cfg, shutdownMgr), log)
	result, err := coordinator.Run(shutdownMgr.Context())
	if err != nil {
		log.Error("Main", "extraction failed", err, map[string]interface{}{
			"input":  cfg.InputPath,
			"reason": failureReason(err),
		})
		return ExitFailure
	}

	log.Info("Main", "finished", map[string]interface{}{
		"points":        len(result.Points),
		"export_failed": result.ExportErr != nil,
	})
	return ExitOK
}

// BaseSink holds the preview outputs that need no cgo: the overlay and
// png frames. The overlay comes first so it is written before any
// blocking window opens.
func BaseSink(cfg config.Config) preview.Multi {
	var sinks preview.Multi
	if cfg.OverlayPath != "" {
		sinks = append(sinks, preview.NewOverlay(cfg.OverlayPath, cfg.Classifier()))
	}
	if cfg.Preview == config.PreviewPNG {
		sinks = append(sinks, preview.NewPNGDir(cfg.PreviewDir, cfg.PreviewScale))
	}
	return sinks
}

func (f Factories) loader(cfg config.Config) pipeline.Loader {
	if f.Loader != nil {
		return f.Loader(cfg)
	}
	return imageio.NewLoader(cfg.SearchDirs...)
}

func (f Factories) sink(cfg config.Config, shutdownMgr *shutdown.Manager) preview.Sink {
	if f.Sink != nil {
		return f.Sink(cfg, shutdownMgr)
	}
	return BaseSink(cfg)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, imageio.ErrNotFound):
		return "input not found"
	case errors.Is(err, imageio.ErrMalformed):
		return "input is not a decodable image"
	case errors.Is(err, context.Canceled):
		return "interrupted"
	default:
		return "processing error"
	}
}

// determineLogLevel prefers the flag, then LOG_LEVEL and DEBUG.
func determineLogLevel(flagValue string) zerolog.Level {
	if flagValue != "" {
		if level, err := logger.ParseLevel(flagValue); err == nil {
			return level
		}
	}
	return logger.LevelFromEnv()
}
