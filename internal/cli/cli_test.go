package cli

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"curve-points/internal/config"
	"curve-points/internal/imageio"
	"curve-points/internal/pipeline"
	"curve-points/internal/raster"
	"curve-points/internal/raster/rastertest"
)

type fixedLoader struct {
	buf  *raster.Buffer
	err  error
	path string
}

func (l *fixedLoader) Load(path string) (*raster.Buffer, error) {
	l.path = path
	return l.buf, l.err
}

func withLoader(l pipeline.Loader) Factories {
	return Factories{Loader: func(config.Config) pipeline.Loader { return l }}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 12, 12))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	for y := 2; y < 6; y++ {
		for x := 3; x < 9; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestExitCodes(t *testing.T) {
	block := rastertest.FromRows(t,
		"............",
		"............",
		"...######...",
		"...######...",
		"............",
		"............",
		"............",
		"............",
		"............",
	)

	cases := []struct {
		name    string
		args    func(dir string) []string
		factory Factories
		want    int
	}{
		{
			name:    "help",
			args:    func(string) []string { return []string{"-h"} },
			factory: withLoader(&fixedLoader{buf: block}),
			want:    ExitOK,
		},
		{
			name:    "unknown flag",
			args:    func(string) []string { return []string{"-bogus"} },
			factory: withLoader(&fixedLoader{buf: block}),
			want:    ExitUsage,
		},
		{
			name: "invalid line length",
			args: func(dir string) []string {
				return []string{"-line-length", "0", "-out", filepath.Join(dir, "export.txt")}
			},
			factory: withLoader(&fixedLoader{buf: block}),
			want:    ExitUsage,
		},
		{
			name: "unknown decoder",
			args: func(dir string) []string {
				return []string{"-decoder", "magick", "-out", filepath.Join(dir, "export.txt")}
			},
			want: ExitUsage,
		},
		{
			name: "missing input",
			args: func(dir string) []string {
				return []string{"-in", filepath.Join(dir, "absent.png"), "-out", filepath.Join(dir, "export.txt")}
			},
			want: ExitFailure,
		},
		{
			name: "loader failure",
			args: func(dir string) []string {
				return []string{"-out", filepath.Join(dir, "export.txt")}
			},
			factory: withLoader(&fixedLoader{err: fmt.Errorf("%w: bad header", imageio.ErrMalformed)}),
			want:    ExitFailure,
		},
		{
			name: "success",
			args: func(dir string) []string {
				return []string{"-out", filepath.Join(dir, "export.txt")}
			},
			factory: withLoader(&fixedLoader{buf: block}),
			want:    ExitOK,
		},
		{
			name: "export failure still succeeds",
			args: func(dir string) []string {
				return []string{"-out", filepath.Join(dir, "missing", "export.txt")}
			},
			factory: withLoader(&fixedLoader{buf: block}),
			want:    ExitOK,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var stderr bytes.Buffer
			got := Run(c.args(t.TempDir()), &stderr, c.factory)
			if got != c.want {
				t.Errorf("exit code = %d, want %d\n%s", got, c.want, stderr.String())
			}
		})
	}
}

func TestHelpPrintsUsage(t *testing.T) {
	var stderr bytes.Buffer
	Run([]string{"-h"}, &stderr, Factories{})
	if !strings.Contains(stderr.String(), "Usage: curve-points") || !strings.Contains(stderr.String(), "-line-length") {
		t.Errorf("usage output = %q", stderr.String())
	}
}

func TestRunFromPNG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "curve.png")
	writePNG(t, input)
	out := filepath.Join(dir, "export.txt")
	frames := filepath.Join(dir, "frames")

	var stderr bytes.Buffer
	code := Run([]string{"-in", input, "-out", out, "-preview", "png", "-preview-dir", frames}, &stderr, Factories{})
	if code != ExitOK {
		t.Fatalf("exit code = %d\n%s", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "3 10\n8 10\n" {
		t.Errorf("export = %q", data)
	}

	entries, err := os.ReadDir(frames)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Errorf("wrote %d preview frames, want 4", len(entries))
	}
}

func TestLoaderReceivesInputFlag(t *testing.T) {
	l := &fixedLoader{buf: rastertest.FromRows(t, "#")}
	out := filepath.Join(t.TempDir(), "export.txt")

	var stderr bytes.Buffer
	if code := Run([]string{"-in", "plot.bmp", "-out", out}, &stderr, withLoader(l)); code != ExitOK {
		t.Fatalf("exit code = %d\n%s", code, stderr.String())
	}
	if l.path != "plot.bmp" {
		t.Errorf("loader got %q", l.path)
	}
}

func TestBaseSink(t *testing.T) {
	cfg := config.Default()
	if len(BaseSink(cfg)) != 0 {
		t.Error("default config should be headless")
	}

	cfg.OverlayPath = "overlay.png"
	cfg.Preview = config.PreviewPNG
	if got := len(BaseSink(cfg)); got != 2 {
		t.Errorf("BaseSink has %d sinks, want 2", got)
	}
}
