package analysis

import "gonum.org/v1/plot/vg"

// Params represents the configuration for analyzing a recording.
type Params struct {
	NFFT      int
	HopLength int
	NumMels   int
	NumMFCC   int

	// TopDB clips decibel images to this range below their peak.
	TopDB float64

	WaveformWidth  vg.Length
	WaveformHeight vg.Length
	SpectrumWidth  vg.Length
	SpectrumHeight vg.Length
	DPI            int
}

// NewParams creates a new Params instance with default values.
func NewParams() *Params {
	return &Params{
		NFFT:      2048,
		HopLength: 512,
		NumMels:   128,
		NumMFCC:   13,
		TopDB:     80,

		WaveformWidth:  12 * vg.Inch,
		WaveformHeight: 3 * vg.Inch,
		SpectrumWidth:  12 * vg.Inch,
		SpectrumHeight: 4 * vg.Inch,
		DPI:            100,
	}
}
