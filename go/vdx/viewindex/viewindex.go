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
	"context"

	"github.com/viewdex/viewdex/go/vdx/plan"
	"github.com/viewdex/viewdex/go/vdx/vderrors"
)

// Cost reported for any search against a recursive view. Recursive
// evaluation materializes the whole view regardless of the masks, so
// there is nothing for the planner to compare.
const recursiveCost = 1000

// ViewIndex lets a stored view stand in for an indexable relation. A
// prototype index answers cost probes for arbitrary mask vectors; a
// specialized index carries the rewritten plan for one mask vector and
// answers searches.
type ViewIndex struct {
	def     *Definition
	session plan.Session
	masks   MaskVector
	costs   *costCache

	// sp is the rewritten plan. It stays nil on prototypes and on
	// recursive views, which cannot be specialized.
	sp *SpecializedPlan

	prototype bool
}

// NewPrototype returns the index the planner probes for costs. It cannot
// be searched.
func NewPrototype(session plan.Session, def *Definition) *ViewIndex {
	return &ViewIndex{
		def:       def,
		session:   session,
		costs:     newCostCache(costCacheCapacity, costCacheMaxAge),
		prototype: true,
	}
}

// NewSpecialized returns a searchable index for one mask vector. For a
// non-recursive view the specialized plan is built here, so a view text
// the session cannot compile fails fast.
func NewSpecialized(session plan.Session, def *Definition, masks MaskVector) (*ViewIndex, error) {
	vi := &ViewIndex{
		def:     def,
		session: session,
		masks:   masks,
		costs:   newCostCache(costCacheCapacity, costCacheMaxAge),
	}
	if !def.IsRecursive() {
		sp, err := rewrite(session, def, masks, vi.paramOffset())
		if err != nil {
			return nil, err
		}
		vi.sp = sp
	}
	return vi, nil
}

// Specialize derives a searchable index from a prototype.
func (vi *ViewIndex) Specialize(masks MaskVector) (*ViewIndex, error) {
	return NewSpecialized(vi.session, vi.def, masks)
}

// paramOffset is the slot of the first pushed-down parameter: past the
// view's own parameters and past the slots reserved by enclosing views.
func (vi *ViewIndex) paramOffset() int {
	return len(vi.def.OriginalParameters()) + vi.def.View().ParameterOffset()
}

// GetCost estimates the cost of searching with the given mask vector.
// Estimates are cached per mask vector and recomputed once they age out.
func (vi *ViewIndex) GetCost(masks MaskVector) (float64, error) {
	if vi.def.IsRecursive() {
		return recursiveCost, nil
	}
	return vi.costs.estimate(masks, func() (float64, error) {
		sp, err := rewrite(vi.session, vi.def, masks, vi.paramOffset())
		if err != nil {
			return 0, err
		}
		return sp.Plan.Cost(), nil
	})
}

// Find searches the view between first and last. Both bounds are
// inclusive and either may be nil.
func (vi *ViewIndex) Find(ctx context.Context, first, last SearchRow) (*Cursor, error) {
	return vi.find(ctx, first, last, nil)
}

// FindByGeometry searches the view for rows whose pushed-down spatial
// columns intersect the given values.
func (vi *ViewIndex) FindByGeometry(ctx context.Context, intersection SearchRow) (*Cursor, error) {
	return vi.find(ctx, nil, nil, intersection)
}

func (vi *ViewIndex) find(ctx context.Context, first, last, intersection SearchRow) (*Cursor, error) {
	if vi.prototype {
		return nil, vderrors.Errorf(vderrors.CodeFailedPrecondition,
			"prototype index of %q cannot be searched", vi.def.View().Name())
	}
	if vi.def.IsRecursive() {
		rows, err := evaluateRecursive(ctx, vi.session, vi.def)
		if err != nil {
			return nil, err
		}
		return newCursor(rows, nil, first, last), nil
	}

	params := vi.sp.Plan.Parameters()
	for _, op := range vi.def.OriginalParameters() {
		plan.Bind(params, op.Index, op.Value)
	}

	// Bind the pushed-down slots in the exact order rewrite allocated
	// them: per column, equality, range start, range end, spatial.
	slot := vi.sp.ParamOffset
	for col, mask := range vi.masks {
		if mask == 0 {
			continue
		}
		if mask&MaskEquality != 0 {
			plan.Bind(params, slot, first.Value(col))
			slot++
		}
		if mask&MaskRangeStart != 0 {
			plan.Bind(params, slot, first.Value(col))
			slot++
		}
		if mask&MaskRangeEnd != 0 {
			plan.Bind(params, slot, last.Value(col))
			slot++
		}
		if mask&MaskSpatialIntersect != 0 {
			plan.Bind(params, slot, intersection.Value(col))
			slot++
		}
	}

	rows, err := vi.sp.Plan.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return newCursor(rows, vi.sp.ColumnIDs, first, last), nil
}

// Add rejects row insertion: views are read-only.
func (vi *ViewIndex) Add(plan.Row) error {
	return vi.unsupported("add")
}

// Remove rejects row deletion: views are read-only.
func (vi *ViewIndex) Remove(plan.Row) error {
	return vi.unsupported("remove")
}

// Truncate rejects bulk deletion: views are read-only.
func (vi *ViewIndex) Truncate() error {
	return vi.unsupported("truncate")
}

// CheckRename rejects renaming the index.
func (vi *ViewIndex) CheckRename() error {
	return vi.unsupported("rename")
}

// FindFirstOrLast rejects min/max scans; the view's rows carry no order.
func (vi *ViewIndex) FindFirstOrLast(bool) (*Cursor, error) {
	return nil, vi.unsupported("first/last scan")
}

func (vi *ViewIndex) unsupported(op string) error {
	return vderrors.Errorf(vderrors.CodeUnimplemented, "view %q: %s not supported", vi.def.View().Name(), op)
}

// PlanSQL returns the compiled plan description for the specialized
// query, or the stored view text when no plan has been built.
func (vi *ViewIndex) PlanSQL() string {
	if vi.sp != nil {
		return vi.sp.Plan.PlanText()
	}
	return vi.def.SQL()
}

// Columns returns the pushed-down index columns, equality columns first.
func (vi *ViewIndex) Columns() []string {
	if vi.sp == nil {
		return nil
	}
	return vi.sp.Columns
}

// Definition returns the indexed view definition.
func (vi *ViewIndex) Definition() *Definition {
	return vi.def
}

func (vi *ViewIndex) IsPrototype() bool { return vi.prototype }

func (vi *ViewIndex) NeedRebuild() bool { return false }

func (vi *ViewIndex) CanGetFirstOrLast() bool { return false }

func (vi *ViewIndex) RowCountApproximation() int64 { return 0 }

func (vi *ViewIndex) DiskSpaceUsed() int64 { return 0 }

// Close releases nothing today; plans are owned by the session.
func (vi *ViewIndex) Close() {}
