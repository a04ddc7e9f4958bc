package spectral

import "math"

// MFCC computes n cepstral coefficients per frame from a log-power mel
// spectrogram [frame][mel] using an orthonormal DCT-II over the mel axis.
// The result is indexed [frame][coefficient].
func MFCC(logMel [][]float64, n int) [][]float64 {
	if len(logMel) == 0 {
		return nil
	}
	basis := dctBasis(len(logMel[0]), n)

	out := make([][]float64, len(logMel))
	for t, row := range logMel {
		out[t] = make([]float64, len(basis))
		for k, b := range basis {
			var sum float64
			for i, v := range row {
				sum += v * b[i]
			}
			out[t][k] = sum
		}
	}
	return out
}

// dctBasis returns the first k rows of the orthonormal DCT-II matrix of
// size n.
func dctBasis(n, k int) [][]float64 {
	if k > n {
		k = n
	}
	basis := make([][]float64, k)
	for j := range basis {
		scale := math.Sqrt(2 / float64(n))
		if j == 0 {
			scale = math.Sqrt(1 / float64(n))
		}
		basis[j] = make([]float64, n)
		for i := range basis[j] {
			basis[j][i] = scale * math.Cos(math.Pi*float64(j)*(2*float64(i)+1)/(2*float64(n)))
		}
	}
	return basis
}
