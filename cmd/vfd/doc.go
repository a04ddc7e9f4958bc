// Command vfd compares a real and a fake voice recording.
//
// For each recording it writes a waveform, an STFT spectrogram, a mel
// spectrogram and an MFCC heatmap as PNG images, then a features.csv table
// with the sample rate, duration and mean/std of spectral centroid, spectral
// bandwidth, zero-crossing rate and RMS energy of both recordings.
//
// Usage:
//
//	vfd <real_audio> <fake_audio>
//
// All outputs go to ./results, which is created if needed. Existing files of
// the same name are overwritten.
//
// Supported input formats: .wav, .flac, .mp3
package main
