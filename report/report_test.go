package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	var r Recorder

	ys := []float64{1, 2, 3}
	require.NoError(t, r.Report("first", map[string][]float64{"ys": ys}))
	ys[0] = 100 // recorder must hold its own copy

	require.ErrorIs(t, r.Report("empty", nil), ErrNoSeries)

	entries := r.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "first", entries[0].Title)
	require.Equal(t, []float64{1, 2, 3}, entries[0].Series["ys"])
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.Report("lpc", map[string][]float64{
		"residual": {0.5},
		"original": {1, -2.25},
	})
	require.NoError(t, err)

	want := "lpc\n" +
		"index,original,residual\n" +
		"0,1,0.5\n" +
		"1,-2.25,\n"
	require.Equal(t, want, buf.String())

	require.ErrorIs(t, w.Report("empty", map[string][]float64{}), ErrNoSeries)
}

func TestReporterInterface(t *testing.T) {
	var _ Reporter = (*Recorder)(nil)
	var _ Reporter = (*Writer)(nil)
}
