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

// Package plan defines the boundary between the view-index machinery and
// the SQL plan compiler that serves it. The compiler lives outside this
// module; its compiled plans are consumed as opaque values through the
// CompiledPlan interface.
package plan

import (
	"context"
)

// Session is the per-session handle into the plan compiler. Preparing a
// query binds the resulting plan to this session; plans are never shared
// across sessions.
type Session interface {
	// Prepare compiles sql into an executable plan. When
	// allowGlobalConditions is true the compiler must prepare the
	// statement so that conditions textually appended to it participate
	// in its own optimization.
	Prepare(sql string, allowGlobalConditions bool) (CompiledPlan, error)
}

// CompiledPlan is a prepared statement produced by the plan compiler.
// Implementations are opaque to this module.
type CompiledPlan interface {
	// Cost is the compiler's estimate for executing the plan.
	Cost() float64

	// Parameters returns the plan's parameter slots in binding order.
	// The returned slice is the live parameter list: setting values on
	// its entries binds them for the next Execute.
	Parameters() []*Parameter

	// PlanText is the canonical re-serialization of the plan.
	PlanText() string

	// Execute runs the plan with the currently bound parameter values
	// on the session that prepared it.
	Execute(ctx context.Context) (RowSet, error)
}
