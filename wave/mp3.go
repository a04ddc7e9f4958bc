package wave

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// go-mp3 always yields interleaved 16-bit little-endian stereo.
const mp3FrameBytes = 4

func loadmp3(name string) (*Signal, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d, err := mp3.NewDecoder(file)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(d)
	if err != nil {
		return nil, err
	}

	return &Signal{
		Samples:    mixStereo16(pcm),
		SampleRate: d.SampleRate(),
		Channels:   2,
	}, nil
}

// mixStereo16 averages interleaved 16-bit little-endian stereo into mono.
func mixStereo16(pcm []byte) []float64 {
	out := make([]float64, len(pcm)/mp3FrameBytes)
	for i := range out {
		l := int16(binary.LittleEndian.Uint16(pcm[i*mp3FrameBytes:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*mp3FrameBytes+2:]))
		out[i] = (float64(l) + float64(r)) / 2 / 32768
	}
	return out
}
