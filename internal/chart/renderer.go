package chart

import (
	"fmt"
	"log/slog"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"powercli/pkg/contracts/domain"
)

// dpi fixes the raster density so the configured pixel size maps exactly to
// the output image dimensions.
const dpi = 96

// Renderer draws the chart artifacts at a fixed pixel size.
type Renderer struct {
	widthPx  int
	heightPx int
	logger   *slog.Logger
}

// NewRenderer creates a renderer for the given output size in pixels.
func NewRenderer(widthPx, heightPx int, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		widthPx:  widthPx,
		heightPx: heightPx,
		logger:   logger,
	}
}

// RenderSingle writes the single-panel active-power chart to path.
func (r *Renderer) RenderSingle(ds domain.Dataset, path string) error {
	p, err := activePowerPanel(ds.Readings)
	if err != nil {
		return err
	}

	canvas := r.newCanvas()
	p.Draw(draw.New(canvas))

	if err := r.writePNG(canvas, path); err != nil {
		return err
	}

	r.logger.Info("chart rendered",
		slog.String("path", path),
		slog.Int("panels", 1),
		slog.Int("points", len(ds.Readings)))
	return nil
}

// RenderGrid writes the four-panel chart to path. The 2x2 grid is filled
// column-first: active power and sub-metering on the left, voltage and
// reactive power on the right.
func (r *Renderer) RenderGrid(ds domain.Dataset, path string) error {
	active, err := activePowerPanel(ds.Readings)
	if err != nil {
		return err
	}
	sub, err := subMeteringPanel(ds.Readings)
	if err != nil {
		return err
	}
	voltage, err := voltagePanel(ds.Readings)
	if err != nil {
		return err
	}
	reactive, err := reactivePowerPanel(ds.Readings)
	if err != nil {
		return err
	}

	// plots[row][col]
	plots := [][]*plot.Plot{
		{active, voltage},
		{sub, reactive},
	}

	canvas := r.newCanvas()
	dc := draw.New(canvas)

	tiles := draw.Tiles{
		Rows: 2,
		Cols: 2,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	if err := r.writePNG(canvas, path); err != nil {
		return err
	}

	r.logger.Info("chart rendered",
		slog.String("path", path),
		slog.Int("panels", 4),
		slog.Int("points", len(ds.Readings)))
	return nil
}

// newCanvas allocates the raster canvas at the configured pixel size.
func (r *Renderer) newCanvas() *vgimg.Canvas {
	w := vg.Length(r.widthPx) / dpi * vg.Inch
	h := vg.Length(r.heightPx) / dpi * vg.Inch
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
}

// writePNG encodes the canvas to path, flushing and closing the file so a
// successful return implies a complete image on disk.
func (r *Renderer) writePNG(canvas *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}
