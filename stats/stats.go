// Package stats summarizes sampled noise fields: distribution summaries,
// out-of-range fractions for calibration checks, and histograms.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a sampled field.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Summarize computes a Summary of values. An empty input yields a zero
// Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	return Summary{
		Count:  len(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   stat.Mean(values, nil),
		StdDev: stat.StdDev(values, nil),
	}
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%.6f max=%.6f mean=%.6f stddev=%.6f",
		s.Count, s.Min, s.Max, s.Mean, s.StdDev)
}

// OutOfRange returns the fraction of values outside [lo, hi].
func OutOfRange(values []float64, lo, hi float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := 0
	for _, v := range values {
		if v < lo || v > hi {
			n++
		}
	}
	return float64(n) / float64(len(values))
}

// Histogram bins values into bins equal-width buckets spanning the data.
// It returns the bins+1 bucket dividers and the per-bucket counts.
func Histogram(values []float64, bins int) (dividers, counts []float64, err error) {
	if bins < 1 {
		return nil, nil, fmt.Errorf("stats: bins must be at least 1, got %d", bins)
	}
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("stats: no values to bin")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	if hi == lo {
		hi = lo + 1
	}

	dividers = floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram requires every value strictly below the last divider.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts = stat.Histogram(nil, dividers, sorted, nil)
	return dividers, counts, nil
}
