// Package plotio provides helpers for writing gonum/plot figures to disk.
package plotio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultDPI is the raster resolution used when none is configured.
const DefaultDPI = 300

// Default canvas dimensions.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrNoFile reports that a save directory was provided without a file name.
var ErrNoFile = errors.New("plotio: no save file specified")

// An Option is passed to optionally configure a figure save.
type Option func(*config)

// WithDPI configures the raster resolution, in dots per inch, of the written image.
func WithDPI(dpi int) Option {
	return func(conf *config) {
		conf.dpi = dpi
	}
}

// WithSize configures the dimensions of the written image.
func WithSize(width, height vg.Length) Option {
	return func(conf *config) {
		conf.width = width
		conf.height = height
	}
}

type config struct {
	dpi           int
	width, height vg.Length
}

func configure(opts []Option) config {
	conf := config{dpi: DefaultDPI, width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&conf)
	}
	return conf
}

// SaveFigure renders p and writes it to file inside dir. The directory must already exist and the file name must be
// non-empty; both are checked before anything is rendered. The image format follows the file extension: .jpg/.jpeg
// and .tif/.tiff are supported, anything else is written as PNG.
func SaveFigure(p *plot.Plot, dir, file string, opts ...Option) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("plotio: save directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("plotio: save directory %s is not a directory", dir)
	}
	if file == "" {
		return ErrNoFile
	}
	conf := configure(opts)

	canvas := vgimg.NewWith(
		vgimg.UseWH(conf.width, conf.height),
		vgimg.UseDPI(conf.dpi),
	)
	p.Draw(draw.New(canvas))

	out, err := os.Create(filepath.Join(dir, file))
	if err != nil {
		return fmt.Errorf("plotio: %w", err)
	}

	var w io.WriterTo
	switch strings.ToLower(filepath.Ext(file)) {
	case ".jpg", ".jpeg":
		w = vgimg.JpegCanvas{Canvas: canvas}
	case ".tif", ".tiff":
		w = vgimg.TiffCanvas{Canvas: canvas}
	default:
		w = vgimg.PngCanvas{Canvas: canvas}
	}
	if _, err := w.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("plotio: write %s: %w", file, err)
	}
	return out.Close()
}
