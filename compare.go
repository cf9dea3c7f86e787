package approx

import "time"

// Comparison reports the exact and approximate distinct counts observed over
// the same ordered item sequence, with the elapsed wall time of each pass.
// It is a snapshot, not persisted anywhere.
type Comparison struct {
	ExactCount      int
	EstimatedCount  float64
	ExactElapsed    time.Duration
	EstimateElapsed time.Duration
}

// Compare runs an exact set-based distinct count and a Sketch with the given
// error rate over the identical item sequence, in the same order, and
// reports both counts and timings. The sketch pass is read-only from the
// caller's point of view: Compare owns the sketch for the duration of the
// pass and discards it afterwards.
func Compare(items []string, errorRate float64) (Comparison, error) {
	sketch, err := NewSketch(errorRate)
	if err != nil {
		return Comparison{}, err
	}

	start := time.Now()
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item] = struct{}{}
	}
	exact := len(seen)
	exactElapsed := time.Since(start)

	start = time.Now()
	for _, item := range items {
		sketch.Add(item)
	}
	estimate := sketch.Estimate()
	estimateElapsed := time.Since(start)

	return Comparison{
		ExactCount:      exact,
		EstimatedCount:  estimate,
		ExactElapsed:    exactElapsed,
		EstimateElapsed: estimateElapsed,
	}, nil
}
