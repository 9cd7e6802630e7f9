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

	log "github.com/golang/glog"
	"github.com/google/statstoolkit/go/checks"
	"gonum.org/v1/gonum/floats"
)

// Keys of the map returned by FiveNumberSummary.Map.
const (
	MinimumKey            = "Minimum"
	FirstQuartileKey      = "First Quartile"
	SecondQuartileKey     = "Second Quartile"
	ThirdQuartileKey      = "Third Quartile"
	MaximumKey            = "Maximum"
	InterquartileRangeKey = "Interquartile Range"
)

// FiveNumberSummary holds the minimum, the three quartiles and the maximum
// of a sample, together with its interquartile range.
type FiveNumberSummary struct {
	Minimum            float64
	FirstQuartile      float64
	SecondQuartile     float64 // The median.
	ThirdQuartile      float64
	Maximum            float64
	InterquartileRange float64 // ThirdQuartile - FirstQuartile.
}

// NewFiveNumberSummary computes the five-number summary of data. Quartiles
// are computed the same way as Percentile. data is not modified.
func NewFiveNumberSummary(data []float64) (*FiveNumberSummary, error) {
	if err := checks.CheckNonEmpty(data); err != nil {
		return nil, fmt.Errorf("NewFiveNumberSummary: %w", err)
	}
	sorted := sortedCopy(data)
	q1 := percentileOfSorted(sorted, 0.25)
	q3 := percentileOfSorted(sorted, 0.75)
	summary := &FiveNumberSummary{
		Minimum:            floats.Min(data),
		FirstQuartile:      q1,
		SecondQuartile:     percentileOfSorted(sorted, 0.5),
		ThirdQuartile:      q3,
		Maximum:            floats.Max(data),
		InterquartileRange: q3 - q1,
	}
	if summary.Minimum == summary.Maximum {
		log.Warningf("NewFiveNumberSummary: all %d values are equal to %v", len(data), summary.Minimum)
	}
	return summary, nil
}

// Map returns the summary keyed by MinimumKey, FirstQuartileKey,
// SecondQuartileKey, ThirdQuartileKey, MaximumKey and InterquartileRangeKey.
func (s *FiveNumberSummary) Map() map[string]float64 {
	return map[string]float64{
		MinimumKey:            s.Minimum,
		FirstQuartileKey:      s.FirstQuartile,
		SecondQuartileKey:     s.SecondQuartile,
		ThirdQuartileKey:      s.ThirdQuartile,
		MaximumKey:            s.Maximum,
		InterquartileRangeKey: s.InterquartileRange,
	}
}
