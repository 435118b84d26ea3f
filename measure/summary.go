package measure

import (
	"math"
	"slices"
)

// Statistics holds a statistical summary of a series of values.
type Statistics struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// Summary aggregates the reports of many geometries.
type Summary struct {
	Geometries    int
	Points        int
	EncodedSize   int
	WKBSize       int
	FixedSize     int
	MaxErrorM     float64
	BytesPerPoint Statistics // over geometries with at least one point
}

// RatioToWKB returns the total encoded size divided by the total WKB size.
func (s Summary) RatioToWKB() float64 {
	if s.WKBSize == 0 {
		return 0
	}

	return float64(s.EncodedSize) / float64(s.WKBSize)
}

// RatioToFixed returns the total encoded size divided by the total fixed-width size.
func (s Summary) RatioToFixed() float64 {
	if s.FixedSize == 0 {
		return 0
	}

	return float64(s.EncodedSize) / float64(s.FixedSize)
}

// Summarize aggregates reports.
func Summarize(reports []Report) Summary {
	s := Summary{Geometries: len(reports)}

	bpp := make([]float64, 0, len(reports))
	for _, r := range reports {
		s.Points += r.Points
		s.EncodedSize += r.EncodedSize
		s.WKBSize += r.WKBSize
		s.FixedSize += r.FixedSize
		s.MaxErrorM = max(s.MaxErrorM, r.MaxErrorM)

		if r.Points > 0 {
			bpp = append(bpp, r.BytesPerPoint())
		}
	}

	s.BytesPerPoint = Describe(bpp)

	return s
}

// Describe computes min, max, mean, median and population standard deviation of values.
func Describe(values []float64) Statistics {
	if len(values) == 0 {
		return Statistics{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	sumSq := 0.0
	for _, v := range sorted {
		diff := v - mean
		sumSq += diff * diff
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Statistics{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(sumSq / float64(n)),
	}
}
