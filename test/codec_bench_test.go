package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomr-ninja/lpc"
)

func benchFrame(b *testing.B) ([]float32, int) {
	b.Helper()

	frameSize := SyntheticRate * FrameMilliseconds / 1000
	data := Tones(SyntheticRate, 1)
	skipFrames := 10
	start := frameSize * skipFrames

	return data[start : start+frameSize], SyntheticRate
}

func BenchmarkCodecs(b *testing.B) {
	dataFrame, sampleRate := benchFrame(b)
	frameSize := len(dataFrame)

	codecs := []codec{
		prepareLPC(b, frameSize),
		prepareOpus(b, sampleRate),
	}

	for _, c := range codecs {
		b.Run(c.name, func(b *testing.B) {
			b.Run("encode", func(b *testing.B) {
				b.ReportAllocs()

				buf := make([]byte, 1024)
				for b.Loop() {
					_, _ = c.enc(dataFrame, buf)
				}
			})

			b.Run("decode", func(b *testing.B) {
				b.ReportAllocs()

				res := make([]float32, len(dataFrame))
				buf := make([]byte, 1024)
				n, err := c.enc(dataFrame, buf)
				require.NoError(b, err)
				buf = buf[:n]

				for b.Loop() {
					_ = c.dec(buf, res)
				}
			})
		})
	}
}

func BenchmarkAnalyzer(b *testing.B) {
	dataFrame, _ := benchFrame(b)

	a, err := lpc.New[float32](LPCOrder, lpc.WithRecursion(lpc.Guarded))
	require.NoError(b, err)
	res := make([]float32, len(dataFrame))

	b.Run("calc", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_ = a.Calc(dataFrame)
		}
	})

	b.Run("residual", func(b *testing.B) {
		require.NoError(b, a.Calc(dataFrame))
		b.ReportAllocs()
		for b.Loop() {
			_ = a.Residual(dataFrame, res)
		}
	})

	b.Run("synthesize", func(b *testing.B) {
		require.NoError(b, a.Calc(dataFrame))
		require.NoError(b, a.Residual(dataFrame, res))
		out := make([]float32, len(res))
		b.ReportAllocs()
		for b.Loop() {
			_ = a.Synthesize(res, out)
		}
	})
}
