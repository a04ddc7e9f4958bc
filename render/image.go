package render

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// raster paints buf [frame][row] into an image one pixel per cell, with the
// first row at the bottom. Values are clamped into the colormap range.
func raster(buf [][]float64, cmap palette.ColorMap) (*image.RGBA, error) {
	stride := len(buf)
	rows := len(buf[0])

	img := image.NewRGBA(image.Rect(0, 0, stride, rows))

	lo, hi := cmap.Min(), cmap.Max()
	for x := 0; x < stride; x++ {
		for y := 0; y < rows; y++ {
			v := buf[x][y]
			if math.IsNaN(v) {
				v = lo
			}
			v = math.Max(lo, math.Min(hi, v))

			c, err := cmap.At(v)
			if err != nil {
				return nil, err
			}
			img.Set(x, rows-y-1, color.RGBAModel.Convert(c))
		}
	}

	return img, nil
}
