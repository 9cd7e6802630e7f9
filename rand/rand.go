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

// Package rand provides the sources of randomness used for drawing random
// subsamples.
//
// Callers that need reproducible results use NewSource with a fixed seed.
// Everything else uses Secure, which reads from crypto/rand.
package rand

import (
	"bufio"
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	log "github.com/golang/glog"
	exprand "golang.org/x/exp/rand"
)

// Source is a source of uniformly distributed uint64 values.
type Source = exprand.Source

var (
	randBufLock sync.Mutex
	randBuf     io.Reader = bufio.NewReaderSize(cryptorand.Reader, 65536)
)

func readRandBuf(b []byte) (int, error) {
	randBufLock.Lock()
	defer randBufLock.Unlock()
	return io.ReadFull(randBuf, b)
}

// U64 returns a uniformly random uint64.
func U64() uint64 {
	var r [8]uint8
	if _, err := readRandBuf(r[:]); err != nil {
		log.Fatalf("out of randomness, should never happen: %v", err)
	}
	return binary.LittleEndian.Uint64(r[:])
}

// NewSource returns a deterministic Source seeded with seed. Two sources
// created with the same seed produce the same sequence.
func NewSource(seed uint64) Source {
	return exprand.NewSource(seed)
}

// Secure returns a Source backed by crypto/rand. It is safe for concurrent use.
func Secure() Source {
	return secureSource{}
}

// secureSource implements a cryptographically secure Source.
type secureSource struct{}

// Uint64 returns a uniformly random uint64.
func (secureSource) Uint64() uint64 {
	return U64()
}

// Seed is a no-op.
func (secureSource) Seed(_ uint64) {}
