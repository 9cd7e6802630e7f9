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
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/statstoolkit/go/rand"
)

// This file contains values and functions shared by the tests of this package.

var (
	tenten = math.Pow10(-10)
	// oneToTen is the sample 1, 2, ..., 10.
	oneToTen = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
)

func approxEqual(x, y float64) bool {
	return cmp.Equal(x, y, cmpopts.EquateApprox(0, tenten))
}

func seededSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}
