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
	"github.com/xwb1989/sqlparser/dependency/sqltypes"

	"github.com/viewdex/viewdex/go/vdx/plan"
)

// SearchRow holds per-column bound values, aligned with the view's
// columns. A null value means the column is unbound.
type SearchRow []sqltypes.Value

// Value returns the bound value for col, or NULL when col is out of
// range or the search row itself is nil.
func (sr SearchRow) Value(col int) sqltypes.Value {
	if col < 0 || col >= len(sr) {
		return sqltypes.NULL
	}
	return sr[col]
}

// Cursor iterates the rows of an executed plan, re-checking the search
// bounds on the pushed-down columns. Both bounds are inclusive: strict
// lower bounds were weakened before pushdown, and the weakening is never
// re-tightened here, so boundary rows pass through to the caller.
type Cursor struct {
	rows        plan.RowSet
	columnIDs   []int
	first, last SearchRow
	current     plan.Row
}

func newCursor(rows plan.RowSet, columnIDs []int, first, last SearchRow) *Cursor {
	return &Cursor{rows: rows, columnIDs: columnIDs, first: first, last: last}
}

// Next advances to the next row within bounds. It returns false when the
// underlying rows are exhausted.
func (c *Cursor) Next() (bool, error) {
	for c.rows.Next() {
		row := c.rows.Row()
		ok, err := c.inBounds(row)
		if err != nil {
			return false, err
		}
		if ok {
			c.current = row
			return true, nil
		}
	}
	c.current = nil
	return false, nil
}

// Row returns the row Next advanced to.
func (c *Cursor) Row() plan.Row {
	return c.current
}

func (c *Cursor) Close() {
	c.rows.Close()
}

func (c *Cursor) inBounds(row plan.Row) (bool, error) {
	if c.first != nil {
		cmp, err := c.compareSearch(row, c.first)
		if err != nil {
			return false, err
		}
		if cmp < 0 {
			return false, nil
		}
	}
	if c.last != nil {
		cmp, err := c.compareSearch(row, c.last)
		if err != nil {
			return false, err
		}
		if cmp > 0 {
			return false, nil
		}
	}
	return true, nil
}

// compareSearch orders the row against a search row lexicographically
// over the index columns. An unbound column ends the comparison: rows
// equal on every bound prefix column compare as equal.
func (c *Cursor) compareSearch(row plan.Row, bound SearchRow) (int, error) {
	for _, col := range c.columnIDs {
		v := bound.Value(col)
		if v.IsNull() {
			return 0, nil
		}
		cmp, err := plan.CompareValues(row[col], v)
		if err != nil {
			return 0, err
		}
		if cmp != 0 {
			return cmp, nil
		}
	}
	return 0, nil
}
