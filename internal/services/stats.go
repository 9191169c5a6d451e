package services

import "math"

// Small statistics helpers shared by the forecast and anomaly services.
// All of them operate on plain float64 samples; decimal amounts are
// converted at the call site and results rounded back into decimals there.

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationVariance is the biased variance (divide by n, not n-1). The
// sample sizes here are whole lookback windows, not samples of them.
func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}

func populationStdDev(values []float64) float64 {
	return math.Sqrt(populationVariance(values))
}

// olsSlope fits amount against a 0-based index by ordinary least squares
// and returns the slope. Fewer than 2 points have no trend.
func olsSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denominator := float64(n)*sumXX - sumX*sumX
	if denominator == 0 {
		return 0
	}
	return (float64(n)*sumXY - sumX*sumY) / denominator
}

func clampFloat(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
