package render

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure holds the size and labeling of one output image.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// Heatmap is a time-frequency matrix together with its axis extents.
type Heatmap struct {
	// Data is indexed [frame][row]; row 0 is drawn at the bottom.
	Data [][]float64

	XMin, XMax float64
	YMin, YMax float64

	// YTicks overrides the default ticker of the vertical axis.
	YTicks plot.Ticker

	ColorMap palette.ColorMap

	// BarFormat is a fmt verb for colorbar labels, such as "%+2.0f dB".
	BarFormat string
}

var ErrEmptyData = errors.New("render: no data to draw")

// waveformPoints caps the number of vertices of a waveform line. A min/max
// pair per pixel column of a 1200 px figure is all the rasterizer can show.
const waveformPoints = 2400

var waveformColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

const colorbarWidth = 1.1 * vg.Inch

// Waveform saves an amplitude against time line plot of samples.
func Waveform(path string, samples []float64, sr int, fig Figure) error {
	if len(samples) == 0 || sr <= 0 {
		return ErrEmptyData
	}

	line, err := plotter.NewLine(envelope(samples, sr, waveformPoints))
	if err != nil {
		return fmt.Errorf("waveform line: %w", err)
	}
	line.LineStyle.Color = waveformColor
	line.LineStyle.Width = vg.Points(0.5)

	p := newPlot(fig)
	p.X.Min = 0
	p.X.Max = float64(len(samples)) / float64(sr)
	p.Add(line)

	c := vgimg.NewWith(vgimg.UseWH(fig.Width, fig.Height), vgimg.UseDPI(fig.DPI))
	p.Draw(draw.New(c))

	return save(path, c)
}

// Spectrum saves a heatmap figure with a colorbar on the right.
func Spectrum(path string, h *Heatmap, fig Figure) error {
	if len(h.Data) == 0 || len(h.Data[0]) == 0 {
		return ErrEmptyData
	}

	lo, hi := bounds(h.Data)
	h.ColorMap.SetMin(lo)
	h.ColorMap.SetMax(hi)

	img, err := raster(h.Data, h.ColorMap)
	if err != nil {
		return err
	}

	p := newPlot(fig)
	p.Add(plotter.NewImage(img, h.XMin, h.YMin, h.XMax, h.YMax))
	p.X.Min, p.X.Max = h.XMin, h.XMax
	p.Y.Min, p.Y.Max = h.YMin, h.YMax
	if h.YTicks != nil {
		p.Y.Tick.Marker = h.YTicks
	}

	bar := plot.New()
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: h.ColorMap, Vertical: true, Colors: 255})
	if h.BarFormat != "" {
		bar.Y.Tick.Marker = FormatTicks{Format: h.BarFormat}
	}

	c := vgimg.NewWith(vgimg.UseWH(fig.Width, fig.Height), vgimg.UseDPI(fig.DPI))
	dc := draw.New(c)

	titleHeight := p.Title.TextStyle.Height(p.Title.Text) + p.Title.Padding
	p.Draw(draw.Crop(dc, 0, -colorbarWidth, 0, 0))
	bar.Draw(draw.Crop(dc, fig.Width-colorbarWidth, 0, 0, -titleHeight))

	slog.Debug("spectrum rendered",
		"file", path,
		"frames", len(h.Data),
		"rows", len(h.Data[0]),
		"min", lo,
		"max", hi,
	)
	return save(path, c)
}

func newPlot(fig Figure) *plot.Plot {
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	return p
}

func save(name string, c *vgimg.Canvas) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return nil
}

// envelope reduces samples to at most max points by keeping the minimum and
// maximum of each bucket, so peaks survive the decimation.
func envelope(samples []float64, sr, max int) plotter.XYs {
	if len(samples) <= max {
		xys := make(plotter.XYs, len(samples))
		for i, v := range samples {
			xys[i].X = float64(i) / float64(sr)
			xys[i].Y = v
		}
		return xys
	}

	buckets := max / 2
	size := int(math.Ceil(float64(len(samples)) / float64(buckets)))
	xys := make(plotter.XYs, 0, 2*buckets)
	for start := 0; start < len(samples); start += size {
		end := start + size
		if end > len(samples) {
			end = len(samples)
		}
		lo, hi := start, start
		for i := start; i < end; i++ {
			if samples[i] < samples[lo] {
				lo = i
			}
			if samples[i] > samples[hi] {
				hi = i
			}
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		xys = append(xys,
			plotter.XY{X: float64(lo) / float64(sr), Y: samples[lo]},
			plotter.XY{X: float64(hi) / float64(sr), Y: samples[hi]},
		)
	}
	return xys
}

// bounds returns the finite value range of m. A flat matrix gets a unit
// range so the colormap stays well defined.
func bounds(m [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
