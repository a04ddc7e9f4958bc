package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/window"
	"github.com/r9y9/gossp/stft"
)

// STFT returns the one-sided short-time transform of buf, indexed
// [frame][bin] with nfft/2+1 bins per frame. The signal is zero-padded by
// nfft/2 on both sides so frame t is centered on sample t*hop.
func STFT(buf []float64, nfft, hop int) [][]complex128 {
	buf = pad(buf, nfft/2, false)

	s := stft.New(hop, nfft)
	s.Window = PeriodicHann(nfft)

	spectrum := s.STFT(buf)
	for i := range spectrum {
		spectrum[i] = spectrum[i][:nfft/2+1]
	}
	return spectrum
}

// PeriodicHann returns the DFT-even Hann window of length n.
func PeriodicHann(n int) []float64 {
	return window.Hann(n + 1)[:n]
}

// Magnitude returns |X| for every cell of the spectrum.
func Magnitude(spectrum [][]complex128) [][]float64 {
	out := make([][]float64, len(spectrum))
	for i := range spectrum {
		out[i] = make([]float64, len(spectrum[i]))
		for j, v := range spectrum[i] {
			out[i][j] = cmplx.Abs(v)
		}
	}
	return out
}

// Power returns |X|^2 for every cell of the spectrum.
func Power(spectrum [][]complex128) [][]float64 {
	out := make([][]float64, len(spectrum))
	for i := range spectrum {
		out[i] = make([]float64, len(spectrum[i]))
		for j, v := range spectrum[i] {
			out[i][j] = real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return out
}

// FFTFrequencies returns the center frequency in Hz of each one-sided bin.
func FFTFrequencies(sr, nfft int) []float64 {
	out := make([]float64, nfft/2+1)
	for i := range out {
		out[i] = float64(i) * float64(sr) / float64(nfft)
	}
	return out
}

// pad centers buf by adding half samples on both sides. With edge set the
// boundary samples are repeated, otherwise zeros are used.
func pad(buf []float64, half int, edge bool) []float64 {
	out := make([]float64, len(buf)+2*half)
	copy(out[half:], buf)
	if edge && len(buf) > 0 {
		first, last := buf[0], buf[len(buf)-1]
		for i := 0; i < half; i++ {
			out[i] = first
			out[len(out)-1-i] = last
		}
	}
	return out
}

// frames slices buf into overlapping windows of length frameLen every hop
// samples. The windows share memory with buf.
func frames(buf []float64, frameLen, hop int) [][]float64 {
	if len(buf) < frameLen {
		return nil
	}
	n := 1 + (len(buf)-frameLen)/hop
	out := make([][]float64, n)
	for i := range out {
		out[i] = buf[i*hop : i*hop+frameLen]
	}
	return out
}
