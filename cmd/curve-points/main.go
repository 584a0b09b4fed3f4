package main

import (
	"os"

	"curve-points/internal/cli"
	"curve-points/internal/config"
	"curve-points/internal/gui"
	"curve-points/internal/imageio"
	"curve-points/internal/opencv/highgui"
	"curve-points/internal/opencv/imgcodecs"
	"curve-points/internal/pipeline"
	"curve-points/internal/preview"
	"curve-points/internal/shutdown"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stderr, cli.Factories{
		Loader: newLoader,
		Sink:   newSink,
	}))
}

func newLoader(cfg config.Config) pipeline.Loader {
	if cfg.Decoder == config.DecoderOpenCV {
		return imgcodecs.NewLoader(cfg.SearchDirs...)
	}
	return imageio.NewLoader(cfg.SearchDirs...)
}

func newSink(cfg config.Config, shutdownMgr *shutdown.Manager) preview.Sink {
	sinks := cli.BaseSink(cfg)

	switch cfg.Preview {
	case config.PreviewOpenCV:
		sinks = append(sinks, highgui.NewWindowSink())
	case config.PreviewFyne:
		gallery := gui.NewGallery(cli.AppName, cfg.Classifier())
		shutdownMgr.Register(gallery)
		sinks = append(sinks, gallery)
	}

	return sinks
}
