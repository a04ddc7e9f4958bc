package analysis

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/neurlang/vfd/render"
	"github.com/neurlang/vfd/spectral"
	"github.com/neurlang/vfd/wave"
	"gonum.org/v1/plot/palette/moreland"
)

// Image kinds, in the order they are written.
const (
	KindWaveform       = "waveform"
	KindSpectrogram    = "spectrogram"
	KindMelSpectrogram = "mel_spectrogram"
	KindMFCC           = "mfcc"
)

// Kinds lists every image kind Analyze writes.
var Kinds = []string{KindWaveform, KindSpectrogram, KindMelSpectrogram, KindMFCC}

// ImageName returns the file name of one figure of a recording.
func ImageName(prefix, kind string) string {
	return prefix + "_" + kind + ".png"
}

// EnsureDir creates dir and any missing parents. An existing directory is
// not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prepare output directory: %w", err)
	}
	return nil
}

// Analyze decodes the recording at path, writes its four figures into
// outDir as {prefix}_{kind}.png and returns its summary statistics. Figures
// written before a failure are left in place.
func Analyze(path, prefix, outDir string, p *Params) (*Record, error) {
	sig, err := wave.Load(path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	sr := sig.SampleRate
	log := slog.With("file", name, "prefix", prefix)

	out := func(kind string) string {
		return filepath.Join(outDir, ImageName(prefix, kind))
	}

	err = render.Waveform(out(KindWaveform), sig.Samples, sr, render.Figure{
		Title:  fmt.Sprintf("Waveform - %s (%s)", prefix, name),
		XLabel: "Time (s)",
		YLabel: "Amplitude",
		Width:  p.WaveformWidth,
		Height: p.WaveformHeight,
		DPI:    p.DPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", prefix, KindWaveform, err)
	}

	spectrum := spectral.STFT(sig.Samples, p.NFFT, p.HopLength)
	mag := spectral.Magnitude(spectrum)
	frames := len(spectrum)
	duration := float64(frames*p.HopLength) / float64(sr)
	nyquist := float64(sr) / 2
	log.Debug("stft computed", "frames", frames, "bins", len(mag[0]))

	err = render.Spectrum(out(KindSpectrogram), &render.Heatmap{
		Data:      spectral.AmplitudeToDBMax(mag, p.TopDB),
		XMax:      duration,
		YMax:      nyquist,
		ColorMap:  moreland.ExtendedBlackBody(),
		BarFormat: "%+2.0f dB",
	}, p.spectrumFigure(fmt.Sprintf("Spectrogram (STFT) - %s", prefix), "Hz"))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", prefix, KindSpectrogram, err)
	}

	filterbank := spectral.MelFilterbank(sr, p.NFFT, p.NumMels, 0, nyquist)
	mel := spectral.MelSpectrogram(spectral.Power(spectrum), filterbank)

	err = render.Spectrum(out(KindMelSpectrogram), &render.Heatmap{
		Data: spectral.PowerToDBMax(mel, p.TopDB),
		XMax: duration,
		YMax: spectral.HzToMel(nyquist),
		YTicks: render.WarpedTicks{
			Forward: spectral.HzToMel,
			Inverse: spectral.MelToHz,
		},
		ColorMap:  moreland.ExtendedBlackBody(),
		BarFormat: "%+2.0f dB",
	}, p.spectrumFigure(fmt.Sprintf("Mel-Spectrogram - %s", prefix), "Hz"))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", prefix, KindMelSpectrogram, err)
	}

	// cepstra are taken from the log-mel spectrum referenced to unit power
	mfcc := spectral.MFCC(spectral.PowerToDB(mel, 1, 1e-10, p.TopDB), p.NumMFCC)

	err = render.Spectrum(out(KindMFCC), &render.Heatmap{
		Data:     mfcc,
		XMax:     duration,
		YMax:     float64(p.NumMFCC),
		ColorMap: moreland.SmoothBlueRed(),
	}, p.spectrumFigure(fmt.Sprintf("MFCC (%d) - %s", p.NumMFCC, prefix), ""))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", prefix, KindMFCC, err)
	}

	centroid, bandwidth := spectral.CentroidBandwidth(mag, spectral.FFTFrequencies(sr, p.NFFT))
	zcr := spectral.ZeroCrossingRate(sig.Samples, p.NFFT, p.HopLength)
	rms := spectral.RMS(sig.Samples, p.NFFT, p.HopLength)

	r := &Record{
		File:       name,
		Prefix:     prefix,
		SampleRate: sr,
		Duration:   sig.Duration(),
	}
	r.CentroidMean, r.CentroidStd = spectral.MeanStd(centroid)
	r.BandwidthMean, r.BandwidthStd = spectral.MeanStd(bandwidth)
	r.ZCRMean, r.ZCRStd = spectral.MeanStd(zcr)
	r.RMSMean, r.RMSStd = spectral.MeanStd(rms)

	log.Debug("features computed",
		"sampleRate", r.SampleRate,
		"duration", r.Duration,
		"centroidMean", r.CentroidMean,
		"zcrMean", r.ZCRMean,
		"rmsMean", r.RMSMean,
	)
	return r, nil
}

func (p *Params) spectrumFigure(title, ylabel string) render.Figure {
	return render.Figure{
		Title:  title,
		XLabel: "Time",
		YLabel: ylabel,
		Width:  p.SpectrumWidth,
		Height: p.SpectrumHeight,
		DPI:    p.DPI,
	}
}
