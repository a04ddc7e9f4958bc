package wave

import (
	"errors"
	"io"
	"math"

	"github.com/mewkiz/flac"
)

func loadflac(name string) (*Signal, error) {
	stream, err := flac.ParseFile(name)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	channels := int(stream.Info.NChannels)
	scale := math.Exp2(float64(stream.Info.BitsPerSample) - 1)

	var out = make([]float64, 0, stream.Info.NSamples)
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		n := len(frame.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			var sum float64
			for c := 0; c < channels; c++ {
				sum += float64(frame.Subframes[c].Samples[i])
			}
			out = append(out, sum/float64(channels)/scale)
		}
	}

	return &Signal{
		Samples:    out,
		SampleRate: int(stream.Info.SampleRate),
		Channels:   channels,
	}, nil
}
