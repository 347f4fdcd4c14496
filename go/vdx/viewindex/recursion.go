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

	"golang.org/x/sync/semaphore"

	"github.com/viewdex/viewdex/go/vdx/plan"
)

// RecursionState is the single slot holding the most recent partial result
// of a view's self-reference while a fixpoint evaluation is running. The
// recursive step's scan of the view reads it through Current.
//
// At most one evaluation may be in flight per view: acquire serializes
// evaluators, blocking until the previous one has cleared the slot (or the
// context is done). The slot is always empty between evaluations.
type RecursionState struct {
	evaluating *semaphore.Weighted

	mu      sync.Mutex
	current plan.RowSet
}

// NewRecursionState returns an empty recursion state.
func NewRecursionState() *RecursionState {
	return &RecursionState{evaluating: semaphore.NewWeighted(1)}
}

// Current returns the partial result the in-flight evaluation last
// published, or nil when no recursive evaluation is running.
func (rs *RecursionState) Current() plan.RowSet {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.current
}

// acquire claims the evaluation slot, blocking while another evaluation is
// in flight. The returned release func clears the slot and frees it; it
// must be called on every exit path so a later unrelated scan never
// observes stale recursive state.
func (rs *RecursionState) acquire(ctx context.Context) (release func(), err error) {
	if err := rs.evaluating.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() {
		rs.clear()
		rs.evaluating.Release(1)
	}, nil
}

// publish replaces the slot's contents with the given rows.
func (rs *RecursionState) publish(rows plan.RowSet) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.current = rows
}

func (rs *RecursionState) clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.current = nil
}
