//
// Copyright 2020 Google LLC
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

// Package checks contains argument checks for the statistical functions.
//
// Every error returned by this package wraps one of ErrEmptySample,
// ErrOutOfRange or ErrUnrecognizedOption, so callers can classify failures
// with errors.Is.
package checks

import (
	"errors"
	"fmt"
	"math"

	log "github.com/golang/glog"
)

var (
	// ErrEmptySample is returned when an operation needs at least one value.
	ErrEmptySample = errors.New("empty sample")
	// ErrOutOfRange is returned when a numeric argument lies outside its domain.
	ErrOutOfRange = errors.New("argument out of range")
	// ErrUnrecognizedOption is returned when an argument is not one of a fixed set of choices.
	ErrUnrecognizedOption = errors.New("unrecognized option")
)

// CheckNonEmpty returns an error if values is empty.
func CheckNonEmpty(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: data list is empty", ErrEmptySample)
	}
	return nil
}

// CheckPercentile returns an error if q is not within [0, 1].
func CheckPercentile(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return fmt.Errorf("%w: percentile is %f, must be between 0 and 1", ErrOutOfRange, q)
	}
	return nil
}

// CheckSampleSize returns an error if n is not within [1, populationSize].
func CheckSampleSize(n, populationSize int) error {
	if n < 1 || n > populationSize {
		return fmt.Errorf("%w: sample size is %d, must be within [1, %d]", ErrOutOfRange, n, populationSize)
	}
	if n == populationSize {
		log.V(1).Infof("Sample size is equal to the population size %d: the whole population will be used as the sample", populationSize)
	}
	return nil
}

// CheckCount returns an error if n is less than 1.
func CheckCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: sample size is %d, must be at least 1", ErrOutOfRange, n)
	}
	return nil
}

// CheckConfidenceLevel returns an error if confidenceLevel is not within (0, 1) and finite.
func CheckConfidenceLevel(confidenceLevel float64) error {
	if confidenceLevel <= 0 || confidenceLevel >= 1 || math.IsNaN(confidenceLevel) || math.IsInf(confidenceLevel, 0) {
		return fmt.Errorf("%w: confidence level is %f, must be within (0, 1) and finite", ErrOutOfRange, confidenceLevel)
	}
	return nil
}

// CheckStandardDeviation returns an error if sd is nonpositive or not finite.
func CheckStandardDeviation(sd float64) error {
	if sd <= 0 || math.IsNaN(sd) || math.IsInf(sd, 0) {
		return fmt.Errorf("%w: standard deviation is %f, must be strictly positive and finite", ErrOutOfRange, sd)
	}
	return nil
}

// CheckComparison returns an error if symbol is not one of "<", ">" or "!=".
func CheckComparison(symbol string) error {
	switch symbol {
	case "<", ">", "!=":
		return nil
	}
	return fmt.Errorf("%w: invalid comparison symbol %q, use '<', '>', or '!='", ErrUnrecognizedOption, symbol)
}
