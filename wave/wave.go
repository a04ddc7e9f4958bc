package wave

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Signal is a decoded mono recording.
type Signal struct {
	// Samples in [-1, 1].
	Samples []float64
	// SampleRate is the native rate of the source file in Hz.
	SampleRate int
	// Channels is the channel count of the source before down-mixing.
	Channels int
}

// Duration returns the length of the signal in seconds.
func (s *Signal) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

var ErrFileNotLoaded = errors.New("wave: file not loaded")
var ErrUnsupportedFormat = errors.New("wave: unsupported audio format")

type container int

const (
	unknown container = iota
	riffWave
	flacStream
	mpegAudio
)

func (c container) String() string {
	switch c {
	case riffWave:
		return "wav"
	case flacStream:
		return "flac"
	case mpegAudio:
		return "mp3"
	}
	return "unknown"
}

// Load decodes the audio file at path into a mono Signal.
func Load(path string) (*Signal, error) {
	kind, err := detect(path)
	if err != nil {
		return nil, err
	}

	var sig *Signal
	switch kind {
	case riffWave:
		sig, err = loadwav(path)
	case flacStream:
		sig, err = loadflac(path)
	case mpegAudio:
		sig, err = loadmp3(path)
	default:
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", kind, filepath.Base(path), err)
	}
	if len(sig.Samples) == 0 || sig.SampleRate <= 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrFileNotLoaded)
	}

	slog.Debug("audio decoded",
		"file", path,
		"format", kind.String(),
		"sampleRate", sig.SampleRate,
		"channels", sig.Channels,
		"samples", len(sig.Samples),
	)
	return sig, nil
}

// detect sniffs the file header and falls back to the extension.
func detect(path string) (container, error) {
	f, err := os.Open(path)
	if err != nil {
		return unknown, err
	}
	defer f.Close()

	head := make([]byte, 12)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return unknown, err
	}
	if kind := sniff(head[:n]); kind != unknown {
		return kind, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return riffWave, nil
	case ".flac":
		return flacStream, nil
	case ".mp3":
		return mpegAudio, nil
	}
	return unknown, nil
}

func sniff(head []byte) container {
	switch {
	case len(head) >= 12 && bytes.Equal(head[0:4], []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WAVE")):
		return riffWave
	case bytes.HasPrefix(head, []byte("fLaC")):
		return flacStream
	case bytes.HasPrefix(head, []byte("ID3")):
		return mpegAudio
	case len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0:
		return mpegAudio
	}
	return unknown
}
