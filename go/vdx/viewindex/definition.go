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
	"fmt"
	"sync/atomic"

	"github.com/viewdex/viewdex/go/vdx/plan"
)

// View is the logical view a Definition belongs to. It is implemented by
// the schema layer that owns the view object.
type View interface {
	// Name is the name the view is referenced by in queries.
	Name() string

	// ParameterOffset is the number of parameter slots the surrounding
	// statement reserves ahead of this view's own parameters.
	ParameterOffset() int

	// Recursion returns the view's recursion-state holder. All index
	// instances over the same view share it, because the recursive step
	// refers back to the view by name and must see the same state no
	// matter which instance drives the scan.
	Recursion() *RecursionState
}

// Definition is the stored query of a view. The SQL text, column list and
// original parameters never change after creation; only the recursion flag
// may be toggled when the view is redefined.
type Definition struct {
	view               View
	sql                string
	columns            []string
	originalParameters []*plan.Parameter
	recursive          atomic.Bool
}

// NewDefinition creates a definition for the given view.
// originalParameters are the parameters already present in the stored text,
// whose values the outer statement computes per query instance.
func NewDefinition(view View, sql string, columns []string, originalParameters []*plan.Parameter, recursive bool) *Definition {
	d := &Definition{
		view:               view,
		sql:                sql,
		columns:            columns,
		originalParameters: originalParameters,
	}
	d.recursive.Store(recursive)
	return d
}

// View returns the owning logical view.
func (d *Definition) View() View { return d.view }

// SQL returns the stored query text.
func (d *Definition) SQL() string { return d.sql }

// Columns returns the view's column names.
func (d *Definition) Columns() []string { return d.columns }

// ColumnName returns the name of the idx-th view column, or a positional
// placeholder if the definition does not carry names.
func (d *Definition) ColumnName(idx int) string {
	if idx >= 0 && idx < len(d.columns) {
		return d.columns[idx]
	}
	return fmt.Sprintf("C%d", idx)
}

// OriginalParameters returns the parameters present in the stored text.
func (d *Definition) OriginalParameters() []*plan.Parameter {
	return d.originalParameters
}

// IsRecursive reports whether the view is marked recursive.
func (d *Definition) IsRecursive() bool { return d.recursive.Load() }

// SetRecursive toggles the recursion flag. Called when the view is
// redefined.
func (d *Definition) SetRecursive(recursive bool) { d.recursive.Store(recursive) }
