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
	"sync"

	"github.com/xwb1989/sqlparser"
	"github.com/xwb1989/sqlparser/dependency/sqltypes"

	"github.com/viewdex/viewdex/go/vdx/plan"
	"github.com/viewdex/viewdex/go/vdx/vderrors"
)

type fakeView struct {
	name      string
	offset    int
	recursion *RecursionState
}

func (v *fakeView) Name() string               { return v.name }
func (v *fakeView) ParameterOffset() int       { return v.offset }
func (v *fakeView) Recursion() *RecursionState { return v.recursion }

func newFakeView(name string) *fakeView {
	return &fakeView{name: name, recursion: NewRecursionState()}
}

// fakeSession compiles by parsing the text and counting its distinct
// bind placeholders. Tests script costs, result rows, and errors per
// statement text, or take over execution entirely with exec.
type fakeSession struct {
	mu       sync.Mutex
	prepared []string
	plans    map[string][]*fakePlan

	costs       map[string]float64
	defaultCost float64
	rows        map[string][]plan.Row
	prepareErr  map[string]error
	execErr     map[string]error
	exec        func(ctx context.Context, p *fakePlan) (plan.RowSet, error)
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		plans:       map[string][]*fakePlan{},
		costs:       map[string]float64{},
		defaultCost: 10,
		rows:        map[string][]plan.Row{},
		prepareErr:  map[string]error{},
		execErr:     map[string]error{},
	}
}

func (s *fakeSession) Prepare(sql string, allowGlobalConditions bool) (plan.CompiledPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prepared = append(s.prepared, sql)
	if err := s.prepareErr[sql]; err != nil {
		return nil, err
	}
	stmt, err := sqlparser.Parse(sql)
	if err != nil {
		return nil, vderrors.Wrapf(err, "compiling %q", sql)
	}
	cost, ok := s.costs[sql]
	if !ok {
		cost = s.defaultCost
	}
	p := &fakePlan{
		session: s,
		sql:     sql,
		cost:    cost,
		params:  make([]*plan.Parameter, countArgs(stmt)),
	}
	for i := range p.params {
		p.params[i] = plan.NewParameter(i)
	}
	s.plans[sql] = append(s.plans[sql], p)
	return p, nil
}

func (s *fakeSession) lastPlan(sql string) *fakePlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	plans := s.plans[sql]
	if len(plans) == 0 {
		return nil
	}
	return plans[len(plans)-1]
}

func (s *fakeSession) prepareCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prepared)
}

func countArgs(stmt sqlparser.Statement) int {
	seen := map[string]bool{}
	_ = sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		if val, ok := node.(*sqlparser.SQLVal); ok && val.Type == sqlparser.ValArg {
			seen[string(val.Val)] = true
		}
		return true, nil
	}, stmt)
	return len(seen)
}

type fakePlan struct {
	session    *fakeSession
	sql        string
	cost       float64
	params     []*plan.Parameter
	bound      []sqltypes.Value
	executions int
}

func (p *fakePlan) Cost() float64                 { return p.cost }
func (p *fakePlan) Parameters() []*plan.Parameter { return p.params }
func (p *fakePlan) PlanText() string              { return p.sql }

func (p *fakePlan) Execute(ctx context.Context) (plan.RowSet, error) {
	p.executions++
	p.bound = make([]sqltypes.Value, len(p.params))
	for i, param := range p.params {
		p.bound[i] = param.Value
	}
	if err := p.session.execErr[p.sql]; err != nil {
		return nil, err
	}
	if p.session.exec != nil {
		return p.session.exec(ctx, p)
	}
	return bufferOf(p.session.rows[p.sql]...), nil
}

func bufferOf(rows ...plan.Row) *plan.Buffer {
	b := plan.NewBuffer()
	for _, row := range rows {
		b.AddRow(row)
	}
	b.Done()
	return b
}

func intRow(vals ...int64) plan.Row {
	row := make(plan.Row, len(vals))
	for i, v := range vals {
		row[i] = sqltypes.NewInt64(v)
	}
	return row
}

func newTestDef(sql string, columns ...string) (*Definition, *fakeView) {
	view := newFakeView("v")
	return NewDefinition(view, sql, columns, nil, false), view
}
