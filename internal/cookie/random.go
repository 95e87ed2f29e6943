package cookie

// Picker is the randomness source used for sampling. *math/rand/v2.Rand
// satisfies it; tests can substitute a deterministic implementation.
type Picker interface {
	// IntN returns a uniform draw from [0, n). n must be > 0.
	IntN(n int) int

	// Float64 returns a uniform draw from [0.0, 1.0).
	Float64() float64
}

// weightedIndex draws an index with probability proportional to its
// weight. Returns -1 when the weights are empty or sum to zero or less.
func weightedIndex(p Picker, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	x := p.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	// Floating-point remainder lands on the last positive weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
