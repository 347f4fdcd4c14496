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

package plan

import (
	"strconv"
	"strings"

	"github.com/xwb1989/sqlparser/dependency/sqltypes"

	"github.com/viewdex/viewdex/go/vdx/vderrors"
)

// CompareValues compares two values null-safely: NULL equals NULL and sorts
// before everything else. Numbers compare numerically, everything else by
// its textual representation.
func CompareValues(a, b sqltypes.Value) (int, error) {
	switch {
	case a.IsNull() && b.IsNull():
		return 0, nil
	case a.IsNull():
		return -1, nil
	case b.IsNull():
		return 1, nil
	}
	if isNumeric(a) && isNumeric(b) {
		if a.IsIntegral() && b.IsIntegral() {
			av, aerr := strconv.ParseInt(a.ToString(), 10, 64)
			bv, berr := strconv.ParseInt(b.ToString(), 10, 64)
			if aerr == nil && berr == nil {
				return compareOrdered(av, bv), nil
			}
			// fall through to float comparison on overflow
		}
		av, err := strconv.ParseFloat(a.ToString(), 64)
		if err != nil {
			return 0, vderrors.Wrapf(err, "cannot compare %v", a)
		}
		bv, err := strconv.ParseFloat(b.ToString(), 64)
		if err != nil {
			return 0, vderrors.Wrapf(err, "cannot compare %v", b)
		}
		return compareOrdered(av, bv), nil
	}
	return strings.Compare(a.ToString(), b.ToString()), nil
}

func isNumeric(v sqltypes.Value) bool {
	return v.IsIntegral() || v.IsFloat()
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
