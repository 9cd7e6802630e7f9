//
// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package stats

import (
	"fmt"
	"math"

	"github.com/google/statstoolkit/go/checks"
	"github.com/google/statstoolkit/go/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the mean and dispersion of a sample.
type Summary struct {
	Mean                float64
	SumSquaredDeviation float64 // Σ(x - Mean)²
	StandardDeviation   float64 // sqrt(SumSquaredDeviation / n)
}

// SampleStatistics computes statistics over a fixed sample of float64 values.
//
// Standard deviation and variance use the population formula, i.e. they
// divide by the number of values n rather than by n-1.
//
// Not thread-safe if the configured Source is not.
type SampleStatistics struct {
	values []float64
	src    rand.Source
}

// Options contains the options used to initialize a SampleStatistics.
type Options struct {
	// Source used for drawing random subsamples in ConfidenceInterval.
	// Defaults to rand.Secure(). Use rand.NewSource for reproducible results.
	Source rand.Source
}

// NewSampleStatistics returns a SampleStatistics over a copy of values.
func NewSampleStatistics(values []float64, opt *Options) (*SampleStatistics, error) {
	if opt == nil {
		opt = &Options{} // Prevents panicking due to a nil pointer dereference.
	}
	if err := checks.CheckNonEmpty(values); err != nil {
		return nil, fmt.Errorf("NewSampleStatistics: %w", err)
	}
	src := opt.Source
	if src == nil {
		src = rand.Secure()
	}
	v := make([]float64, len(values))
	copy(v, values)
	return &SampleStatistics{values: v, src: src}, nil
}

// Size returns the number of values in the sample.
func (s *SampleStatistics) Size() int {
	return len(s.values)
}

// Values returns a copy of the sample.
func (s *SampleStatistics) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// Mean returns the arithmetic mean of the sample.
func (s *SampleStatistics) Mean() (float64, error) {
	if err := checks.CheckNonEmpty(s.values); err != nil {
		return 0, fmt.Errorf("Mean: %w", err)
	}
	return mean(s.values), nil
}

// mean returns the arithmetic mean of a non-empty slice. If all values are
// equal it returns that value, which stat.Mean would not always reproduce
// exactly, so that the deviations of a constant sample are exactly 0.
func mean(values []float64) float64 {
	if lo := floats.Min(values); lo == floats.Max(values) {
		return lo
	}
	return stat.Mean(values, nil)
}

// SumSquaredDeviation returns the sum of squared differences between each
// value and the mean of the sample.
func (s *SampleStatistics) SumSquaredDeviation() (float64, error) {
	mean, err := s.Mean()
	if err != nil {
		return 0, fmt.Errorf("SumSquaredDeviation: %w", err)
	}
	var sum float64
	for _, x := range s.values {
		d := x - mean
		sum += d * d
	}
	return sum, nil
}

// Variance returns the population variance SumSquaredDeviation / n.
func (s *SampleStatistics) Variance() (float64, error) {
	ssd, err := s.SumSquaredDeviation()
	if err != nil {
		return 0, fmt.Errorf("Variance: %w", err)
	}
	return ssd / float64(len(s.values)), nil
}

// StandardDeviation returns the population standard deviation
// sqrt(SumSquaredDeviation / n).
func (s *SampleStatistics) StandardDeviation() (float64, error) {
	variance, err := s.Variance()
	if err != nil {
		return 0, fmt.Errorf("StandardDeviation: %w", err)
	}
	return math.Sqrt(variance), nil
}

// Summary returns the mean, sum of squared deviations and standard deviation
// of the sample.
func (s *SampleStatistics) Summary() (Summary, error) {
	mean, err := s.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("Summary: %w", err)
	}
	ssd, err := s.SumSquaredDeviation()
	if err != nil {
		return Summary{}, fmt.Errorf("Summary: %w", err)
	}
	return Summary{
		Mean:                mean,
		SumSquaredDeviation: ssd,
		StandardDeviation:   math.Sqrt(ssd / float64(len(s.values))),
	}, nil
}
