package test

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Fixtures are mono 16-bit PCM.
const (
	bitDepth  = 16
	numChans  = 1
	fullScale = math.MaxInt16
)

var errInvalidWAV = errors.New("test: invalid WAV fixture")

// ReadWAV loads a mono 16-bit fixture as samples in [-1, 1].
func ReadWAV(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	switch {
	case !d.IsValidFile():
		return nil, 0, errInvalidWAV
	case d.NumChans != numChans:
		return nil, 0, fmt.Errorf("%w: %d channels", errInvalidWAV, d.NumChans)
	case d.BitDepth != bitDepth:
		return nil, 0, fmt.Errorf("%w: %d-bit samples", errInvalidWAV, d.BitDepth)
	}

	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return fromPCM(pcm.Data), int(d.SampleRate), nil
}

// WriteWAV stores samples as a mono 16-bit file. Samples outside [-1, 1] clip.
func WriteWAV(path string, data []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	e := wav.NewEncoder(f, sampleRate, bitDepth, numChans, 1)
	pcm := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		Data:           toPCM(data),
		SourceBitDepth: bitDepth,
	}
	if err = e.Write(pcm); err != nil {
		return err
	}

	return e.Close()
}

func fromPCM(in []int) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v) / fullScale
	}

	return out
}

func toPCM(in []float32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(min(max(v, -1), 1) * fullScale)
	}

	return out
}

// Tones returns seconds of two tones over a quiet noise-like dither.
func Tones(sampleRate int, seconds float64) []float32 {
	n := int(float64(sampleRate) * seconds)
	data := make([]float32, n)
	for i := range data {
		t := float64(i) / float64(sampleRate)
		dither := 0.02 * math.Sin(2*math.Pi*7919*t+3*math.Sin(2*math.Pi*13*t))
		data[i] = float32(0.4*math.Sin(2*math.Pi*220*t) + 0.25*math.Sin(2*math.Pi*660*t) + dither)
	}

	return data
}
