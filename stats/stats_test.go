package stats_test

import (
	"math"
	"testing"

	"github.com/nozzle/noise/stats"
)

func TestSummarize(t *testing.T) {
	s := stats.Summarize([]float64{1, 2, 3, 4})
	if s.Count != 4 {
		t.Errorf("Count: got %d, expected 4", s.Count)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("Min/Max: got %v/%v, expected 1/4", s.Min, s.Max)
	}
	if s.Mean != 2.5 {
		t.Errorf("Mean: got %v, expected 2.5", s.Mean)
	}
	// Sample standard deviation of {1,2,3,4}.
	if want := math.Sqrt(5.0 / 3.0); math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("StdDev: got %v, expected %v", s.StdDev, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := stats.Summarize(nil); s != (stats.Summary{}) {
		t.Errorf("expected zero summary for empty input, got %+v", s)
	}
}

func TestOutOfRange(t *testing.T) {
	values := []float64{-2, -1, -0.5, 0, 0.5, 1, 2, 3}
	if got := stats.OutOfRange(values, -1, 1); got != 0.25 {
		t.Errorf("got %v, expected 0.25", got)
	}
	if got := stats.OutOfRange(values, -10, 10); got != 0 {
		t.Errorf("got %v, expected 0", got)
	}
	if got := stats.OutOfRange(nil, -1, 1); got != 0 {
		t.Errorf("empty input: got %v, expected 0", got)
	}
}

func TestHistogram(t *testing.T) {
	values := []float64{0, 0.1, 0.2, 0.45, 0.55, 0.8, 0.9, 1.0}

	dividers, counts, err := stats.Histogram(values, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(dividers) != 5 || len(counts) != 4 {
		t.Fatalf("got %d dividers and %d counts, expected 5 and 4", len(dividers), len(counts))
	}

	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != float64(len(values)) {
		t.Errorf("counts sum to %v, expected %d", total, len(values))
	}
	// The maximum lands in the last bucket rather than falling off the edge.
	if counts[3] == 0 {
		t.Error("last bucket is empty, boundary value was dropped")
	}
}

func TestHistogramAllEqual(t *testing.T) {
	_, counts, err := stats.Histogram([]float64{0.5, 0.5, 0.5}, 2)
	if err != nil {
		t.Fatal(err)
	}
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Errorf("counts sum to %v, expected 3", total)
	}
}

func TestHistogramErrors(t *testing.T) {
	if _, _, err := stats.Histogram([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for zero bins")
	}
	if _, _, err := stats.Histogram(nil, 4); err == nil {
		t.Error("expected error for empty input")
	}
}
