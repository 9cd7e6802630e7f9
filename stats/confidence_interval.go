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

	log "github.com/golang/glog"
	"github.com/google/statstoolkit/go/checks"
	"github.com/google/statstoolkit/go/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// criticalValues maps the supported confidence levels to their z critical
// values. The values are rounded to two decimals and are used as is.
var criticalValues = map[float64]float64{
	0.90: 1.65,
	0.95: 1.96,
	0.99: 2.81,
}

// CriticalValue returns the z critical value for confidenceLevel, which must
// be exactly one of 0.90, 0.95 or 0.99.
func CriticalValue(confidenceLevel float64) (float64, error) {
	z, ok := criticalValues[confidenceLevel]
	if !ok {
		return 0, fmt.Errorf("%w: confidence level is %v, please pick a confidence level: 0.90, 0.95, or 0.99",
			checks.ErrUnrecognizedOption, confidenceLevel)
	}
	return z, nil
}

// ConfidenceInterval is a confidence interval for the population mean.
type ConfidenceInterval struct {
	LowerBound, UpperBound float64
	ConfidenceLevel        float64
	SampleSize             int // Size of the random subsample.
	SampleMean             float64
	MarginOfError          float64
}

// String describes the interval in words.
func (ci *ConfidenceInterval) String() string {
	return fmt.Sprintf("The confidence interval is [%v, %v]. %.0f%% of confidence intervals computed"+
		" this way will include the population mean parameter.",
		ci.LowerBound, ci.UpperBound, ci.ConfidenceLevel*100)
}

// ConfidenceInterval treats the stored values as the population and returns
// a confidence interval for its mean at confidenceLevel, which must be one of
// 0.90, 0.95 or 0.99.
//
// The interval is centered on the mean of a subsample of n values drawn
// uniformly at random without replacement from the population, and its
// margin of error is z * sd / sqrt(n), where sd is the population standard
// deviation of all stored values. Successive calls draw different
// subsamples unless the Source is reseeded.
func (s *SampleStatistics) ConfidenceInterval(n int, confidenceLevel float64) (*ConfidenceInterval, error) {
	z, err := CriticalValue(confidenceLevel)
	if err != nil {
		return nil, fmt.Errorf("ConfidenceInterval: %w", err)
	}
	if err := checks.CheckNonEmpty(s.values); err != nil {
		return nil, fmt.Errorf("ConfidenceInterval: %w", err)
	}
	if err := checks.CheckSampleSize(n, len(s.values)); err != nil {
		return nil, fmt.Errorf("ConfidenceInterval: %w", err)
	}
	popSd, err := s.StandardDeviation()
	if err != nil {
		return nil, fmt.Errorf("ConfidenceInterval: %w", err)
	}
	if popSd == 0 {
		log.Warningf("ConfidenceInterval: all %d values are equal, the interval has zero width", len(s.values))
	}

	sampleMean := mean(s.subsample(n))
	margin := z * popSd / math.Sqrt(float64(n))
	return &ConfidenceInterval{
		LowerBound:      sampleMean - margin,
		UpperBound:      sampleMean + margin,
		ConfidenceLevel: confidenceLevel,
		SampleSize:      n,
		SampleMean:      sampleMean,
		MarginOfError:   margin,
	}, nil
}

// subsample returns n distinct elements of s.values chosen uniformly at
// random, for 1 <= n <= len(s.values).
func (s *SampleStatistics) subsample(n int) []float64 {
	src := s.src
	if src == nil {
		src = rand.Secure()
	}
	idxs := make([]int, n)
	sampleuv.WithoutReplacement(idxs, len(s.values), src)
	sub := make([]float64, n)
	for i, idx := range idxs {
		sub[i] = s.values[idx]
	}
	return sub
}
