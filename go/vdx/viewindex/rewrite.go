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

	"github.com/xwb1989/sqlparser"

	"github.com/viewdex/viewdex/go/vdx/log"
	"github.com/viewdex/viewdex/go/vdx/plan"
	"github.com/viewdex/viewdex/go/vdx/vderrors"
)

// SpecializedPlan is a compiled plan bound to one mask vector: the view's
// stored query with the pushed-down predicates appended as parameterized
// conditions.
type SpecializedPlan struct {
	// Plan is the rewritten compiled plan (or the unmodified base plan
	// when nothing could be pushed down).
	Plan plan.CompiledPlan

	// Columns lists the logical index columns the plan pushes down:
	// columns with an equality condition first, then the range and
	// spatial columns. Binding code relies on this order.
	Columns []string

	// ColumnIDs holds the outer-column ids aligned with Columns.
	ColumnIDs []int

	// ParamOffset is the slot of the first pushed-down parameter.
	ParamOffset int
}

// rewrite builds the specialized plan for the given mask vector. Pushed
// parameters occupy consecutive slots from paramBaseOffset, one per
// condition, in column order with equality ahead of range conditions for
// the same column. A query that forbids global conditions (row limit,
// explicit ordering, a projection that cannot be position-mapped) yields
// the base plan with no pushed columns.
//
// Preparation errors, including a malformed stored view text, are
// propagated unchanged.
func rewrite(session plan.Session, def *Definition, masks MaskVector, paramBaseOffset int) (*SpecializedPlan, error) {
	base, err := session.Prepare(def.SQL(), true)
	if err != nil {
		return nil, err
	}
	sp := &SpecializedPlan{Plan: base, ParamOffset: paramBaseOffset}
	if masks.Empty() {
		return sp, nil
	}

	stmt, err := parseQuery(def.SQL())
	if err != nil {
		return nil, err
	}
	if !allowsGlobalConditions(stmt) {
		return sp, nil
	}
	for col, mask := range masks {
		if mask != 0 && !injectable(stmt, col) {
			log.V(2).Infof("viewindex: cannot map column %d of %q for pushdown", col, def.View().Name())
			return sp, nil
		}
	}

	slot := paramBaseOffset
	for col, mask := range masks {
		if mask == 0 {
			continue
		}
		if mask&MaskEquality != 0 {
			addGlobalCondition(stmt, col, comparison(sqlparser.NullSafeEqualStr, slot))
			slot++
		}
		if mask&MaskRangeStart != 0 {
			// strict lower bounds arrive already weakened to >=
			addGlobalCondition(stmt, col, comparison(sqlparser.GreaterEqualStr, slot))
			slot++
		}
		if mask&MaskRangeEnd != 0 {
			addGlobalCondition(stmt, col, comparison(sqlparser.LessEqualStr, slot))
			slot++
		}
		if mask&MaskSpatialIntersect != 0 {
			addGlobalCondition(stmt, col, spatialIntersects(slot))
			slot++
		}
	}

	// Re-prepare the re-serialized text so the injected conditions take
	// part in the base query's own optimization.
	rewritten, err := session.Prepare(sqlparser.String(stmt), true)
	if err != nil {
		return nil, err
	}
	sp.Plan = rewritten

	// Two phases: first the columns that contributed an equality
	// condition, then the range and spatial columns.
	for phase := 0; phase < 2; phase++ {
		for col, mask := range masks {
			if mask == 0 {
				continue
			}
			if (mask&MaskEquality != 0) != (phase == 0) {
				continue
			}
			sp.Columns = append(sp.Columns, def.ColumnName(col))
			sp.ColumnIDs = append(sp.ColumnIDs, col)
		}
	}
	return sp, nil
}

func parseQuery(sql string) (sqlparser.SelectStatement, error) {
	stmt, err := sqlparser.Parse(sql)
	if err != nil {
		return nil, vderrors.Wrapf(err, "parsing view definition")
	}
	sel, ok := stmt.(sqlparser.SelectStatement)
	if !ok {
		return nil, vderrors.Errorf(vderrors.CodeInvalidArgument, "view definition is not a query: %s", sql)
	}
	return sel, nil
}

// allowsGlobalConditions reports whether appending conditions would leave
// the statement's semantics intact: a row limit or explicit ordering on
// any arm forbids injection.
func allowsGlobalConditions(stmt sqlparser.SelectStatement) bool {
	switch node := stmt.(type) {
	case *sqlparser.Select:
		return node.Limit == nil && len(node.OrderBy) == 0
	case *sqlparser.Union:
		return node.Limit == nil && len(node.OrderBy) == 0 &&
			allowsGlobalConditions(node.Left) && allowsGlobalConditions(node.Right)
	case *sqlparser.ParenSelect:
		return allowsGlobalConditions(node.Select)
	default:
		return false
	}
}

// injectable reports whether every select arm projects an expression at
// position col that a condition can be written against. An unexpanded *
// cannot be position-mapped.
func injectable(stmt sqlparser.SelectStatement, col int) bool {
	switch node := stmt.(type) {
	case *sqlparser.Select:
		if col < 0 || col >= len(node.SelectExprs) {
			return false
		}
		_, ok := node.SelectExprs[col].(*sqlparser.AliasedExpr)
		return ok
	case *sqlparser.Union:
		return injectable(node.Left, col) && injectable(node.Right, col)
	case *sqlparser.ParenSelect:
		return injectable(node.Select, col)
	default:
		return false
	}
}

// addGlobalCondition ANDs the condition built by build onto every select
// arm, each arm conditioned on its own projected expression for col.
func addGlobalCondition(stmt sqlparser.SelectStatement, col int, build func(left sqlparser.Expr) sqlparser.Expr) {
	switch node := stmt.(type) {
	case *sqlparser.Select:
		left := node.SelectExprs[col].(*sqlparser.AliasedExpr).Expr
		node.AddWhere(build(left))
	case *sqlparser.Union:
		addGlobalCondition(node.Left, col, build)
		addGlobalCondition(node.Right, col, build)
	case *sqlparser.ParenSelect:
		addGlobalCondition(node.Select, col, build)
	}
}

func comparison(op string, slot int) func(left sqlparser.Expr) sqlparser.Expr {
	return func(left sqlparser.Expr) sqlparser.Expr {
		return &sqlparser.ComparisonExpr{Operator: op, Left: left, Right: pushedArg(slot)}
	}
}

func spatialIntersects(slot int) func(left sqlparser.Expr) sqlparser.Expr {
	return func(left sqlparser.Expr) sqlparser.Expr {
		return &sqlparser.FuncExpr{
			Name: sqlparser.NewColIdent("ST_Intersects"),
			Exprs: sqlparser.SelectExprs{
				&sqlparser.AliasedExpr{Expr: left},
				&sqlparser.AliasedExpr{Expr: pushedArg(slot)},
			},
		}
	}
}

// pushedArg is the bind placeholder for the pushed parameter at the given
// zero-based slot.
func pushedArg(slot int) sqlparser.Expr {
	return sqlparser.NewValArg([]byte(fmt.Sprintf(":v%d", slot+1)))
}
