// sim/stats.go
package sim

import "math"

// zCrit95 is the two-sided 95% normal critical value.
const zCrit95 = 1.96

// Mean is a util function that calculates the arithmetic mean of a data
// list; it returns 0 for an empty list.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// SampleStdDev calculates the sample (n-1 denominator) standard deviation
// of a data list; it returns 0 for fewer than two samples.
func SampleStdDev(data []float64) float64 {
	n := len(data)
	if n < 2 {
		return 0.0
	}
	mean := Mean(data)
	ss := 0.0
	for _, v := range data {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// HalfWidth95 calculates the 95% confidence half-width of the sample mean:
// 1.96 * s / sqrt(n), with s the sample standard deviation.
func HalfWidth95(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return zCrit95 * SampleStdDev(data) / math.Sqrt(float64(len(data)))
}
