package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// zcrThreshold is the magnitude at or below which a sample counts as zero.
const zcrThreshold = 1e-10

// CentroidBandwidth returns, per frame of a magnitude spectrogram, the
// magnitude-weighted mean frequency and the weighted standard deviation of
// frequency around it. Frames without energy yield zero for both.
func CentroidBandwidth(mag [][]float64, freqs []float64) (centroid, bandwidth []float64) {
	centroid = make([]float64, len(mag))
	bandwidth = make([]float64, len(mag))
	for t, frame := range mag {
		if floats.Sum(frame) <= 0 {
			continue
		}
		centroid[t], bandwidth[t] = stat.PopMeanStdDev(freqs, frame)
	}
	return centroid, bandwidth
}

// ZeroCrossingRate returns the fraction of sign changes in each frame of
// length frameLen taken every hop samples. The signal is centered by
// repeating its edge samples; zero counts as positive.
func ZeroCrossingRate(buf []float64, frameLen, hop int) []float64 {
	buf = pad(buf, frameLen/2, true)

	neg := make([]bool, len(buf))
	for i, v := range buf {
		neg[i] = math.Abs(v) > zcrThreshold && math.Signbit(v)
	}

	n := len(frames(buf, frameLen, hop))
	out := make([]float64, n)
	for t := range out {
		start := t * hop
		var crossings int
		for i := start + 1; i < start+frameLen; i++ {
			if neg[i] != neg[i-1] {
				crossings++
			}
		}
		out[t] = float64(crossings) / float64(frameLen)
	}
	return out
}

// RMS returns the root-mean-square amplitude of each zero-padded, centered
// frame of length frameLen taken every hop samples.
func RMS(buf []float64, frameLen, hop int) []float64 {
	buf = pad(buf, frameLen/2, false)

	fr := frames(buf, frameLen, hop)
	out := make([]float64, len(fr))
	for t, frame := range fr {
		out[t] = math.Sqrt(floats.Dot(frame, frame) / float64(frameLen))
	}
	return out
}

// MeanStd returns the mean and population standard deviation of x, or zeros
// when x is empty.
func MeanStd(x []float64) (mean, std float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(x, nil)
}
