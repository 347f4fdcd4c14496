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
	"github.com/xwb1989/sqlparser/dependency/sqltypes"
)

// Parameter is one positional parameter slot of a compiled plan.
type Parameter struct {
	// Index is the zero-based slot position.
	Index int
	// Value is the currently bound value, NULL until bound.
	Value sqltypes.Value
}

// NewParameter returns an unbound parameter for the given slot.
func NewParameter(index int) *Parameter {
	return &Parameter{Index: index, Value: sqltypes.NULL}
}

// Bind sets the value of the parameter at the given slot. A slot beyond the
// end of the list is ignored: the compiler may have optimized the parameter
// away, as in "select * from (select null as x) where x = 1".
func Bind(params []*Parameter, index int, value sqltypes.Value) {
	if index < 0 || index >= len(params) {
		return
	}
	params[index].Value = value
}
