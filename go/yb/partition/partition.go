/*
Copyright 2026 The YugabyteDB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package partition maps key values to the internal hash-code space used to
// route requests to tablets.
//
// Two hash identities exist for a partition: the user-visible CQL token, a
// signed 64-bit value, and the internal hash code, an unsigned 16-bit value
// in [0, MaxHashCode]. The CQL token space maps linearly onto the internal
// space; both orderings agree.
package partition

import (
	"github.com/cespare/xxhash/v2"
)

// MaxHashCode is the largest internal hash code.
const MaxHashCode uint16 = 0xFFFF

// CqlToHashCode converts a user-visible CQL token to an internal hash code.
// The mapping is linear: the smallest token maps to 0, the largest to
// MaxHashCode.
func CqlToHashCode(cqlHash int64) uint16 {
	hash := uint16(cqlHash >> 48)
	hash ^= 0x8000
	return hash
}

// HashCodeToCqlValue converts an internal hash code back to the smallest CQL
// token that maps to it. It is the left inverse of CqlToHashCode:
// CqlToHashCode(HashCodeToCqlValue(h)) == h for every h.
func HashCodeToCqlValue(hash uint16) int64 {
	return int64(uint64(hash^0x8000) << 48)
}

// HashColumnCompoundValue hashes the encoded hash-key columns of a row to an
// internal hash code. Deterministic and total; used by the router to pick a
// tablet when key columns are bound exactly.
func HashColumnCompoundValue(encodedColumns []byte) uint16 {
	return uint16(xxhash.Sum64(encodedColumns) & uint64(MaxHashCode))
}
