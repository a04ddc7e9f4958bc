// Package wave decodes audio recordings into mono sample vectors.
//
// Recordings are read at their native sample rate; no resampling is done.
// Multi-channel input is averaged down to a single channel. Supported inputs:
//   - WAV (PCM 8/16/24/32 bit, including WAVE_FORMAT_EXTENSIBLE)
//   - FLAC
//   - MP3
//
// The container is detected from the file header, with the file extension as
// a fallback.
package wave
