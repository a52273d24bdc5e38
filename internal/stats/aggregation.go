package stats

import "math"

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Sum returns the sum of all values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Variance calculates the sample variance
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}

	return sumSquaredDiff / float64(len(values)-1)
}

// StdDev calculates the sample standard deviation
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Moments accumulates count, sum and sum of squares for a stream of
// values. Two Moments computed over disjoint partitions combine with
// Merge into the Moments of the union, which is how partitioned
// aggregation must derive spread: from combined moments, never by
// averaging per-partition deviations.
type Moments struct {
	Count int64
	Sum   float64
	SumSq float64
}

// Add accumulates one value
func (m *Moments) Add(v float64) {
	m.Count++
	m.Sum += v
	m.SumSq += v * v
}

// Merge combines another partition's moments into m
func (m *Moments) Merge(other Moments) {
	m.Count += other.Count
	m.Sum += other.Sum
	m.SumSq += other.SumSq
}

// Mean returns the mean of the accumulated values
func (m Moments) Mean() float64 {
	if m.Count == 0 {
		return 0
	}
	return m.Sum / float64(m.Count)
}

// SampleVariance returns the sample variance of the accumulated
// values. Defined only for Count >= 2; returns 0 otherwise. The
// sum-of-squares form can go marginally negative from floating point
// cancellation, so the result is clamped at zero.
func (m Moments) SampleVariance() float64 {
	if m.Count < 2 {
		return 0
	}

	n := float64(m.Count)
	variance := (m.SumSq - m.Sum*m.Sum/n) / (n - 1)
	if variance < 0 {
		return 0
	}
	return variance
}

// SampleStdDev returns the sample standard deviation of the
// accumulated values
func (m Moments) SampleStdDev() float64 {
	return math.Sqrt(m.SampleVariance())
}

// Round2 rounds to 2 decimal places. All metric rounding happens at
// presentation time; internal accumulation keeps full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
