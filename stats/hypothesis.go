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
	"strconv"

	log "github.com/golang/glog"
	"github.com/google/statstoolkit/go/checks"
	"gonum.org/v1/gonum/stat/distuv"
)

// Comparison symbols accepted by HypothesisTest. They give the direction of
// the alternative hypothesis.
const (
	Less     = "<"
	Greater  = ">"
	NotEqual = "!="
)

// NormalCDF returns the cumulative distribution function of the standard
// normal distribution at z.
func NormalCDF(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}

// HypothesisTestResult is the outcome of a one-sample z-test.
type HypothesisTestResult struct {
	NullMean   float64
	SampleMean float64
	Comparison string // One of Less, Greater or NotEqual.
	N          int
	Alpha      float64 // 1 - confidence level.
	ZScore     float64
	PValue     float64
	// Reject is true if PValue <= Alpha, i.e. the null hypothesis is rejected
	// in favor of "μ Comparison NullMean".
	Reject bool
}

// String returns the verdict of the test, e.g. "Reject the null hypothesis.
// There is sufficient evidence to conclude that μ > 50."
func (r *HypothesisTestResult) String() string {
	mu := strconv.FormatFloat(r.NullMean, 'f', -1, 64)
	if r.Reject {
		return fmt.Sprintf("Reject the null hypothesis. There is sufficient evidence to conclude that μ %s %s.", r.Comparison, mu)
	}
	return fmt.Sprintf("Fail to reject the null hypothesis. There is insufficient evidence to conclude that μ %s %s.", r.Comparison, mu)
}

// HypothesisTest performs a one-sample z-test of the null hypothesis that the
// population mean equals nullMean, against the alternative given by
// comparison, using a sample of size n with mean sampleMean and standard
// deviation sd.
//
// The p-value is Φ(z) for Less and 1-Φ(z) for Greater, where Φ is NormalCDF
// and z = (sampleMean-nullMean)/(sd/sqrt(n)). For NotEqual it is 2Φ(z). Note
// that this is not the usual two-tailed p-value 2(1-Φ(|z|)): it is only
// meaningful for z <= 0 and exceeds 1 for z > 0, in which case the null
// hypothesis is never rejected.
func HypothesisTest(nullMean, sampleMean float64, comparison string, confidenceLevel float64, n int, sd float64) (*HypothesisTestResult, error) {
	if err := checks.CheckComparison(comparison); err != nil {
		return nil, fmt.Errorf("HypothesisTest: %w", err)
	}
	if err := checks.CheckConfidenceLevel(confidenceLevel); err != nil {
		return nil, fmt.Errorf("HypothesisTest: %w", err)
	}
	if err := checks.CheckCount(n); err != nil {
		return nil, fmt.Errorf("HypothesisTest: %w", err)
	}
	if err := checks.CheckStandardDeviation(sd); err != nil {
		return nil, fmt.Errorf("HypothesisTest: %w", err)
	}

	alpha := 1 - confidenceLevel
	z := (sampleMean - nullMean) / (sd / math.Sqrt(float64(n)))
	var p float64
	switch comparison {
	case Less:
		p = NormalCDF(z)
	case Greater:
		p = 1 - NormalCDF(z)
	case NotEqual:
		// TODO: switch to 2*(1-Φ(|z|)) once callers no longer depend on
		// the current values.
		p = 2 * NormalCDF(z)
		if p > 1 {
			log.Warningf("HypothesisTest: p-value %v for comparison %q exceeds 1 (z = %v)", p, comparison, z)
		}
	}
	return &HypothesisTestResult{
		NullMean:   nullMean,
		SampleMean: sampleMean,
		Comparison: comparison,
		N:          n,
		Alpha:      alpha,
		ZScore:     z,
		PValue:     p,
		Reject:     p <= alpha,
	}, nil
}
