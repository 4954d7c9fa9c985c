package authorship

import (
	"errors"
	"fmt"
	"math"
)

// ErrMalformedWeights is returned for a weight vector that isn't exactly
// NumFeatures non-negative numbers.
var ErrMalformedWeights = errors.New("authorship: malformed weights")

// Weights scales the difference of each Signature feature when scoring.
type Weights [NumFeatures]float64

// DefaultWeights returns the weights used when none are configured.
func DefaultWeights() Weights {
	return Weights{11, 33, 50, 0.4, 4}
}

// ParseWeights converts values to Weights.
func ParseWeights(values []float64) (Weights, error) {
	var w Weights
	if len(values) != NumFeatures {
		return w, fmt.Errorf("%w: got %d values, want %d", ErrMalformedWeights, len(values), NumFeatures)
	}
	for i, v := range values {
		if math.IsNaN(v) || v < 0 {
			return Weights{}, fmt.Errorf("%w: %s weight is %g", ErrMalformedWeights, FeatureNames[i], v)
		}
		w[i] = v
	}
	return w, nil
}

// Score returns the weighted distance between two signatures. Lower means
// more alike; identical signatures score 0.
func Score(a, b Signature, w Weights) float64 {
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i]-b[i]) * w[i]
	}
	return sum
}
