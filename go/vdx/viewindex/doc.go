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

// Package viewindex lets a stored view take part in query optimization as
// if it were an indexable relation.
//
// A ViewIndex is a virtual index over the view's stored query. During
// optimization a prototype instance answers cost questions for candidate
// predicate-pushdown shapes (MaskVector), memoizing the expensive
// prepare-and-estimate round trips. Once the optimizer commits to a shape,
// a specialized instance rewrites the stored query with the pushed-down
// predicates as appended parameterized conditions and executes it at scan
// time, binding the caller's concrete values.
//
// Views defined as "anchor UNION ALL recursive-step" are evaluated by
// fixpoint iteration instead: the recursive step is re-run against the
// previous round's rows until it produces none, with all rows accumulated
// in memory.
package viewindex
