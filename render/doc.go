// Package render draws waveform and time-frequency figures to PNG files.
//
// Heatmaps are rasterized into an RGBA image, one pixel per cell, and placed
// on a gonum plot with time and frequency axes plus a colorbar.
package render
