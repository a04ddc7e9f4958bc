package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	melFSp        = 200.0 / 3
	melMinLogHz   = 1000.0
	melMinLogMel  = melMinLogHz / melFSp
	melLogStep    = 0.06875177742094912 // ln(6.4) / 27
	amplitudeAmin = 1e-5
	powerAmin     = 1e-10
)

// HzToMel converts a frequency to the Slaney mel scale: linear below 1 kHz
// and logarithmic above.
func HzToMel(hz float64) float64 {
	if hz >= melMinLogHz {
		return melMinLogMel + math.Log(hz/melMinLogHz)/melLogStep
	}
	return hz / melFSp
}

// MelToHz is the inverse of HzToMel.
func MelToHz(mel float64) float64 {
	if mel >= melMinLogMel {
		return melMinLogHz * math.Exp(melLogStep*(mel-melMinLogMel))
	}
	return melFSp * mel
}

// MelFrequencies returns n frequencies in Hz spaced evenly on the mel scale
// between fmin and fmax inclusive.
func MelFrequencies(n int, fmin, fmax float64) []float64 {
	lo, hi := HzToMel(fmin), HzToMel(fmax)
	out := make([]float64, n)
	for i := range out {
		var m = lo
		if n > 1 {
			m = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		out[i] = MelToHz(m)
	}
	return out
}

// MelFilterbank builds mels triangular filters over the one-sided bins of an
// nfft-point transform, indexed [mel][bin]. Each filter is area-normalized.
func MelFilterbank(sr, nfft, mels int, fmin, fmax float64) [][]float64 {
	fftfreqs := FFTFrequencies(sr, nfft)
	melf := MelFrequencies(mels+2, fmin, fmax)

	weights := make([][]float64, mels)
	for i := range weights {
		weights[i] = make([]float64, len(fftfreqs))
		lowerWidth := melf[i+1] - melf[i]
		upperWidth := melf[i+2] - melf[i+1]
		enorm := 2.0 / (melf[i+2] - melf[i])
		for j, f := range fftfreqs {
			lower := (f - melf[i]) / lowerWidth
			upper := (melf[i+2] - f) / upperWidth
			w := math.Min(lower, upper)
			if w > 0 {
				weights[i][j] = w * enorm
			}
		}
	}
	return weights
}

// MelSpectrogram projects a power spectrogram [frame][bin] onto the
// filterbank, returning [frame][mel].
func MelSpectrogram(power [][]float64, filterbank [][]float64) [][]float64 {
	out := make([][]float64, len(power))
	for t := range power {
		out[t] = make([]float64, len(filterbank))
		for m, filter := range filterbank {
			out[t][m] = floats.Dot(filter, power[t])
		}
	}
	return out
}

// MaxOf returns the largest value of a matrix, or 0 for an empty one.
func MaxOf(m [][]float64) float64 {
	var max = math.Inf(-1)
	for _, row := range m {
		if len(row) > 0 {
			max = math.Max(max, floats.Max(row))
		}
	}
	if math.IsInf(max, -1) {
		return 0
	}
	return max
}

// PowerToDB converts a power matrix to decibels relative to ref. Values are
// floored at amin before the logarithm, and when topDB is positive the
// output is clipped to topDB below its peak.
func PowerToDB(s [][]float64, ref, amin, topDB float64) [][]float64 {
	refDB := 10 * math.Log10(math.Max(amin, math.Abs(ref)))
	peak := math.Inf(-1)

	out := make([][]float64, len(s))
	for i := range s {
		out[i] = make([]float64, len(s[i]))
		for j, v := range s[i] {
			db := 10*math.Log10(math.Max(amin, v)) - refDB
			out[i][j] = db
			peak = math.Max(peak, db)
		}
	}
	if topDB > 0 {
		clip(out, peak-topDB)
	}
	return out
}

// PowerToDBMax is PowerToDB referenced to the peak of s.
func PowerToDBMax(s [][]float64, topDB float64) [][]float64 {
	return PowerToDB(s, MaxOf(s), powerAmin, topDB)
}

// AmplitudeToDBMax converts a magnitude matrix to decibels referenced to its
// peak.
func AmplitudeToDBMax(mag [][]float64, topDB float64) [][]float64 {
	ref := MaxOf(mag)
	power := make([][]float64, len(mag))
	for i := range mag {
		power[i] = make([]float64, len(mag[i]))
		for j, v := range mag[i] {
			power[i][j] = v * v
		}
	}
	return PowerToDB(power, ref*ref, amplitudeAmin*amplitudeAmin, topDB)
}

func clip(m [][]float64, floor float64) {
	for i := range m {
		for j := range m[i] {
			if m[i][j] < floor {
				m[i][j] = floor
			}
		}
	}
}
