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

// Package stats provides descriptive and inferential statistics over an
// in-memory sample of float64 values: percentiles, five-number summaries,
// mean and dispersion measures, confidence intervals for the mean and
// one-sample z-tests.
//
// All errors returned by this package wrap one of the sentinel errors of
// package checks.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/statstoolkit/go/checks"
)

// Percentile returns the value at percentile q of data, for q in [0, 1].
//
// The values are sorted and q is mapped to the fractional rank
// q*(len(data)-1). If the rank falls between two elements, the result is
// linearly interpolated between them. data is not modified.
func Percentile(data []float64, q float64) (float64, error) {
	if err := checks.CheckNonEmpty(data); err != nil {
		return 0, fmt.Errorf("Percentile: %w", err)
	}
	if err := checks.CheckPercentile(q); err != nil {
		return 0, fmt.Errorf("Percentile: %w", err)
	}
	return percentileOfSorted(sortedCopy(data), q), nil
}

// percentileOfSorted expects a non-empty ascending slice and q in [0, 1].
func percentileOfSorted(sorted []float64, q float64) float64 {
	idx := q * float64(len(sorted)-1)
	lowerIdx := math.Floor(idx)
	if idx == lowerIdx {
		return sorted[int(idx)]
	}
	lower, upper := sorted[int(lowerIdx)], sorted[int(math.Ceil(idx))]
	return lower + (upper-lower)*(idx-lowerIdx)
}

func sortedCopy(data []float64) []float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return sorted
}
