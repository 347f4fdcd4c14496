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
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/viewdex/viewdex/go/vdx/log"
	"github.com/viewdex/viewdex/go/vdx/plan"
	"github.com/viewdex/viewdex/go/vdx/vderrors"
)

// decomposeRecursive splits a recursive view's stored query into its
// anchor and recursive step. Only a top-level UNION ALL qualifies.
func decomposeRecursive(sql string) (anchor, step sqlparser.SelectStatement, err error) {
	stmt, err := parseQuery(sql)
	if err != nil {
		return nil, nil, err
	}
	union, ok := stmt.(*sqlparser.Union)
	if !ok || union.Type != sqlparser.UnionAllStr {
		return nil, nil, vderrors.Errorf(vderrors.CodeInvalidArgument,
			"recursive queries without UNION ALL are not supported: %s", sql)
	}
	return union.Left, union.Right, nil
}

// referencesView reports whether the statement reads from the named
// table. The recursive step stops iterating once its expansion no longer
// mentions the view itself.
func referencesView(stmt sqlparser.SelectStatement, name string) bool {
	found := false
	_ = sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		if tn, ok := node.(sqlparser.TableName); ok && strings.EqualFold(tn.Name.String(), name) {
			found = true
			return false, nil
		}
		return true, nil
	}, stmt)
	return found
}

// evaluateRecursive materializes a recursive view: it runs the anchor
// once, then re-runs the step until a round adds no rows, accumulating
// every row along the way. Each finished round is published on the
// view's recursion state so that step executions started by the plan
// compiler read the previous round instead of recursing further.
//
// If an evaluation is already in flight on this view, the current
// intermediate rows are handed back directly; that is how the step's own
// scan of the view sees the previous round.
func evaluateRecursive(ctx context.Context, session plan.Session, def *Definition) (plan.RowSet, error) {
	state := def.View().Recursion()
	if rs := state.Current(); rs != nil {
		rs.Reset()
		return rs, nil
	}

	anchor, step, err := decomposeRecursive(def.SQL())
	if err != nil {
		return nil, err
	}
	release, err := state.acquire(ctx)
	if err != nil {
		return nil, vderrors.Wrapf(err, "acquiring recursion state of %q", def.View().Name())
	}
	defer release()

	anchorPlan, err := session.Prepare(sqlparser.String(anchor), false)
	if err != nil {
		return nil, err
	}
	stepPlan, err := session.Prepare(sqlparser.String(step), false)
	if err != nil {
		return nil, err
	}
	selfRef := referencesView(step, def.View().Name())

	acc := plan.NewBuffer()
	seed := plan.NewBuffer()
	rows, err := anchorPlan.Execute(ctx)
	if err != nil {
		return nil, err
	}
	copyRows(rows, acc, seed)
	rows.Close()
	seed.Done()
	state.publish(seed)

	for iter := 1; ; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, vderrors.Wrapf(err, "recursive evaluation of %q canceled", def.View().Name())
		}
		if iter == recursionWarnIterations {
			log.Warningf("viewindex: recursive view %q still expanding after %d iterations", def.View().Name(), iter)
		}
		rows, err := stepPlan.Execute(ctx)
		if err != nil {
			return nil, err
		}
		round := plan.NewBuffer()
		n := copyRows(rows, acc, round)
		rows.Close()
		round.Done()
		if n == 0 {
			break
		}
		state.publish(round)
		if !selfRef {
			// a step without a self-reference yields the same rows
			// every round and would never converge
			break
		}
	}
	acc.Done()
	return acc, nil
}

func copyRows(src plan.RowSet, dst ...*plan.Buffer) int {
	n := 0
	for src.Next() {
		row := append(plan.Row(nil), src.Row()...)
		for _, b := range dst {
			b.AddRow(row)
		}
		n++
	}
	return n
}
