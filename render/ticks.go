package render

import (
	"fmt"

	"gonum.org/v1/plot"
)

// FormatTicks labels the default ticks with a fmt verb.
type FormatTicks struct {
	Format string
}

func (f FormatTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = fmt.Sprintf(f.Format, ticks[i].Value)
		}
	}
	return ticks
}

// WarpedTicks places ticks for an axis drawn in a warped unit (such as mels)
// at round values of the natural unit (such as Hz). Forward maps natural
// values onto the axis; Inverse maps axis values back.
type WarpedTicks struct {
	Forward func(float64) float64
	Inverse func(float64) float64
}

func (w WarpedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(w.Inverse(min), w.Inverse(max))
	out := ticks[:0]
	for _, t := range ticks {
		if t.Label == "" {
			// minor ticks crowd the compressed end of the axis
			continue
		}
		t.Value = w.Forward(t.Value)
		out = append(out, t)
	}
	return out
}
