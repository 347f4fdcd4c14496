/*
Copyright 2025 The Viewdex Authors.

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

package viewindex

import (
	"strconv"
	"strings"
)

// Mask is a bitset of the predicate kinds the optimizer can push into a
// view scan for one outer column.
type Mask int

const (
	// MaskEquality is a null-safe equality predicate on the column.
	MaskEquality Mask = 1 << iota
	// MaskRangeStart is a lower-bound predicate. Strict lower bounds are
	// weakened to "greater or equal"; discarding boundary-equal rows is
	// the caller's residual obligation.
	MaskRangeStart
	// MaskRangeEnd is an upper-bound predicate.
	MaskRangeEnd
	// MaskSpatialIntersect is a spatial intersection predicate.
	MaskSpatialIntersect
)

// MaskVector describes, column by column, which predicate kinds an outer
// query can push into a view scan. A zero entry means no pushdown for that
// column.
type MaskVector []Mask

// Empty reports whether no column has any pushdown bit set. A nil vector
// is empty.
func (mv MaskVector) Empty() bool {
	for _, m := range mv {
		if m != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two vectors are element-wise equal.
func (mv MaskVector) Equal(other MaskVector) bool {
	if len(mv) != len(other) {
		return false
	}
	for i, m := range mv {
		if m != other[i] {
			return false
		}
	}
	return true
}

// Key returns a length-prefixed structural encoding of the vector, suitable
// as a cache key: two vectors produce the same key iff they are Equal.
func (mv MaskVector) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(mv)))
	for _, m := range mv {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(m)))
	}
	return b.String()
}
