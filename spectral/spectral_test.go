package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(freq float64, sr, n int, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
	}
	return out
}

func TestSTFTShape(t *testing.T) {
	tests := []struct {
		samples int
		frames  int
	}{
		{32000, 1 + 32000/512},
		{512, 2},
		{100, 1},
	}
	for _, tt := range tests {
		spec := STFT(make([]float64, tt.samples), 2048, 512)
		require.Len(t, spec, tt.frames, "samples=%d", tt.samples)
		assert.Len(t, spec[0], 1025)
	}
}

func TestSTFTPeakBin(t *testing.T) {
	const sr = 16000
	// 1000 Hz lands exactly on bin 128 of a 2048-point transform
	mag := Magnitude(STFT(sine(1000, sr, sr, 1), 2048, 512))

	frame := mag[len(mag)/2]
	var best int
	for j := range frame {
		if frame[j] > frame[best] {
			best = j
		}
	}
	assert.Equal(t, 128, best)
}

func TestPeriodicHann(t *testing.T) {
	w := PeriodicHann(8)
	require.Len(t, w, 8)
	assert.InDelta(t, 0, w[0], 1e-12)
	assert.InDelta(t, 1, w[4], 1e-12)
	assert.InDelta(t, w[1], w[7], 1e-12)
}

func TestMelScaleRoundTrip(t *testing.T) {
	for _, hz := range []float64{0, 100, 999, 1000, 4000, 8000, 22050} {
		assert.InDelta(t, hz, MelToHz(HzToMel(hz)), 1e-6, "hz=%v", hz)
	}
	assert.InDelta(t, 15, HzToMel(1000), 1e-12)
	assert.InDelta(t, 1.5, HzToMel(100), 1e-12)
}

func TestMelFilterbank(t *testing.T) {
	fb := MelFilterbank(16000, 2048, 128, 0, 8000)
	require.Len(t, fb, 128)
	for m, filter := range fb {
		require.Len(t, filter, 1025)
		for _, w := range filter {
			assert.GreaterOrEqual(t, w, 0.0, "mel %d", m)
		}
	}

	// high bands are wide enough to cover several bins
	var nonzero int
	for _, w := range fb[127] {
		if w > 0 {
			nonzero++
		}
	}
	assert.Greater(t, nonzero, 1)
}

func TestPowerToDB(t *testing.T) {
	s := [][]float64{{1, 0.1, 0}, {1e-12, 0.01, 1}}
	db := PowerToDB(s, 1, 1e-10, 80)

	assert.InDelta(t, 0, db[0][0], 1e-9)
	assert.InDelta(t, -10, db[0][1], 1e-9)
	assert.InDelta(t, -20, db[1][1], 1e-9)
	// floored at the peak minus 80 dB
	assert.InDelta(t, -80, db[0][2], 1e-9)
	assert.InDelta(t, -80, db[1][0], 1e-9)
}

func TestAmplitudeToDBMaxSilence(t *testing.T) {
	db := AmplitudeToDBMax([][]float64{{0, 0}, {0, 0}}, 80)
	for _, row := range db {
		for _, v := range row {
			assert.Zero(t, v)
		}
	}
}

func TestAmplitudeToDBMax(t *testing.T) {
	db := AmplitudeToDBMax([][]float64{{2, 0.2}}, 80)
	assert.InDelta(t, 0, db[0][0], 1e-9)
	assert.InDelta(t, -20, db[0][1], 1e-9)
}

func TestMFCCConstantSpectrum(t *testing.T) {
	// a flat log-mel frame only has energy in the zeroth coefficient
	row := make([]float64, 128)
	for i := range row {
		row[i] = -3
	}
	out := MFCC([][]float64{row}, 13)
	require.Len(t, out, 1)
	require.Len(t, out[0], 13)
	assert.InDelta(t, -3*math.Sqrt(128), out[0][0], 1e-9)
	for k := 1; k < 13; k++ {
		assert.InDelta(t, 0, out[0][k], 1e-9, "coefficient %d", k)
	}
}

func TestDCTBasisOrthonormal(t *testing.T) {
	b := dctBasis(16, 16)
	for i := range b {
		for j := range b {
			var dot float64
			for k := range b[i] {
				dot += b[i][k] * b[j][k]
			}
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, dot, 1e-9)
		}
	}
}

func TestCentroidBandwidth(t *testing.T) {
	freqs := []float64{0, 100, 200, 300}
	mag := [][]float64{
		{0, 1, 0, 0},
		{0, 1, 0, 1},
		{0, 0, 0, 0},
	}
	c, b := CentroidBandwidth(mag, freqs)

	assert.InDelta(t, 100, c[0], 1e-9)
	assert.InDelta(t, 0, b[0], 1e-9)
	assert.InDelta(t, 200, c[1], 1e-9)
	assert.InDelta(t, 100, b[1], 1e-9)
	assert.Zero(t, c[2])
	assert.Zero(t, b[2])
}

func TestZeroCrossingRate(t *testing.T) {
	const sr = 16000
	zcr := ZeroCrossingRate(sine(440, sr, 2*sr, 0.5), 2048, 512)
	require.Len(t, zcr, 1+2*sr/512)

	mean, _ := MeanStd(zcr)
	assert.InDelta(t, 2*440.0/sr, mean, 0.005)

	silent := ZeroCrossingRate(make([]float64, sr), 2048, 512)
	for _, v := range silent {
		assert.Zero(t, v)
	}
}

func TestZeroCrossingIgnoresTinyValues(t *testing.T) {
	buf := []float64{1, -1e-12, 1, -1, 1}
	zcr := ZeroCrossingRate(buf, 4, 1)
	require.NotEmpty(t, zcr)
	// -1e-12 is treated as zero, so only the 1 -> -1 -> 1 swings count
	total := 0.0
	for _, v := range zcr {
		total += v * 4
	}
	assert.Greater(t, total, 0.0)
}

func TestRMS(t *testing.T) {
	const sr = 16000
	rms := RMS(sine(440, sr, 2*sr, 0.5), 2048, 512)
	require.Len(t, rms, 1+2*sr/512)

	// interior frames of a sine sit at amp/sqrt(2)
	assert.InDelta(t, 0.5/math.Sqrt2, rms[len(rms)/2], 0.01)
	// the first frame is half padding
	assert.Less(t, rms[0], rms[len(rms)/2])

	silent := RMS(make([]float64, sr), 2048, 512)
	mean, std := MeanStd(silent)
	assert.Zero(t, mean)
	assert.Zero(t, std)
}

func TestMeanStd(t *testing.T) {
	mean, std := MeanStd([]float64{1, 2, 3, 4})
	assert.InDelta(t, 2.5, mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), std, 1e-12)

	mean, std = MeanStd(nil)
	assert.Zero(t, mean)
	assert.Zero(t, std)
}

func TestPadEdge(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1, 2, 3, 3, 3}, pad([]float64{1, 2, 3}, 2, true))
	assert.Equal(t, []float64{0, 0, 1, 2, 3, 0, 0}, pad([]float64{1, 2, 3}, 2, false))
}

func TestMelSpectrogramProjects(t *testing.T) {
	fb := [][]float64{{1, 0, 0}, {0, 0.5, 0.5}}
	out := MelSpectrogram([][]float64{{2, 4, 6}}, fb)
	assert.Equal(t, [][]float64{{2, 5}}, out)
}
