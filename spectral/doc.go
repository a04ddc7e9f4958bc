// Package spectral provides the short-time transforms and frame-wise audio
// features used to compare recordings.
//
// It implements:
//   - centered STFT with a periodic Hann window
//   - Slaney-style mel filterbank and mel power spectrograms
//   - power and amplitude conversion to decibels with top-dB clipping
//   - MFCC via an orthonormal DCT-II of the log-mel spectrogram
//   - spectral centroid, spectral bandwidth, zero-crossing rate and RMS energy
//
// All time-frequency matrices are indexed [frame][bin].
package spectral
