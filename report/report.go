// Package report hands named series to whatever displays them.
package report

import (
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strconv"
	"sync"
)

// ErrNoSeries indicates a report without any series.
var ErrNoSeries = errors.New("report: no series")

// Reporter accepts a titled set of named, ordered series.
type Reporter interface {
	Report(title string, series map[string][]float64) error
}

// Entry is one recorded report.
type Entry struct {
	Title  string
	Series map[string][]float64
}

// Recorder keeps reports in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Report(title string, series map[string][]float64) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	cp := make(map[string][]float64, len(series))
	for name, ys := range series {
		cp[name] = slices.Clone(ys)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Title: title, Series: cp})

	return nil
}

// Entries returns the reports recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.entries)
}

// Writer writes each report as a CSV table: a title row, a header row
// ("index" followed by series names in sorted order), then one row per
// sample index. Shorter series leave their cells empty.
type Writer struct {
	w *csv.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

func (w *Writer) Report(title string, series map[string][]float64) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	names := make([]string, 0, len(series))
	rows := 0
	for name, ys := range series {
		names = append(names, name)
		rows = max(rows, len(ys))
	}
	slices.Sort(names)

	if err := w.w.Write([]string{title}); err != nil {
		return err
	}
	if err := w.w.Write(append([]string{"index"}, names...)); err != nil {
		return err
	}

	record := make([]string, len(names)+1)
	for i := range rows {
		record[0] = strconv.Itoa(i)
		for j, name := range names {
			ys := series[name]
			if i < len(ys) {
				record[j+1] = strconv.FormatFloat(ys[i], 'g', -1, 64)
			} else {
				record[j+1] = ""
			}
		}
		if err := w.w.Write(record); err != nil {
			return err
		}
	}
	w.w.Flush()

	return w.w.Error()
}
