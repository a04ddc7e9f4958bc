package wave

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	gowav "github.com/go-audio/wav"
)

func loadwav(name string) (*Signal, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// beep closes any io.Closer it is handed when decoding fails, which would
	// leave nothing to rewind for the fallback decoder
	stream, format, err := wav.Decode(struct{ io.ReadSeeker }{file})
	if err != nil {
		// beep only knows 8/16/24-bit PCM mono/stereo headers
		slog.Debug("beep wav decoder rejected file, retrying with go-audio", "file", name, "err", err)
		if _, serr := file.Seek(0, io.SeekStart); serr != nil {
			return nil, serr
		}
		return loadwavExtensible(file)
	}

	scale := beepScale(format.Precision)
	var out = make([]float64, 0, stream.Len())
	var samples = make([][2]float64, 4096)
	for {
		n, ok := stream.Stream(samples)
		for i := 0; i < n; i++ {
			// mono streams carry the same value in both slots
			out = append(out, (samples[i][0]+samples[i][1])/2*scale)
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}

	return &Signal{
		Samples:    out,
		SampleRate: int(format.SampleRate),
		Channels:   format.NumChannels,
	}, nil
}

// beepScale undoes beep's normalization of 16 and 24-bit PCM by 2^bits-1,
// mapping full scale back onto 2^(bits-1).
func beepScale(precision int) float64 {
	switch precision {
	case 2, 3:
		bits := float64(8 * precision)
		return (math.Exp2(bits) - 1) / math.Exp2(bits-1)
	}
	return 1
}

func loadwavExtensible(r io.ReadSeeker) (*Signal, error) {
	d := gowav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrUnsupportedFormat
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	channels := int(d.NumChans)
	if channels == 0 {
		return nil, fmt.Errorf("wav header declares zero channels: %w", ErrUnsupportedFormat)
	}

	scale := math.Exp2(float64(d.BitDepth) - 1)
	offset := 0.0
	if d.BitDepth == 8 {
		// 8-bit PCM is unsigned
		offset = 128
	}

	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := range out {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += (float64(buf.Data[i*channels+c]) - offset) / scale
		}
		out[i] = sum / float64(channels)
	}

	return &Signal{
		Samples:    out,
		SampleRate: int(d.SampleRate),
		Channels:   channels,
	}, nil
}

// SaveWav saves mono 16-bit wav file from sample vector
func SaveWav(outputFile string, vec []float64, sr int) error {
	return dumpwav(outputFile, vec, sr, 1)
}

// SaveWavStereo saves a 16-bit wav file carrying vec on both channels.
func SaveWavStereo(outputFile string, vec []float64, sr int) error {
	return dumpwav(outputFile, vec, sr, 2)
}

func dumpwav(name string, vec []float64, sr, channels int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	var pos int
	streamer := beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= len(vec) {
			return 0, false
		}
		for n = 0; n < len(samples) && pos < len(vec); n++ {
			samples[n][0] = vec[pos]
			samples[n][1] = vec[pos]
			pos++
		}
		return n, true
	})

	format := beep.Format{
		SampleRate:  beep.SampleRate(sr),
		NumChannels: channels,
		Precision:   2,
	}
	if err := wav.Encode(f, streamer, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
