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

// Row is one logical row of values.
type Row = []sqltypes.Value

// RowSet is a forward-iterable set of rows, as produced by executing a
// compiled plan.
type RowSet interface {
	// Next advances to the next row, returning false at the end.
	Next() bool
	// Row returns the current row. Only valid after Next returned true.
	Row() Row
	// Reset rewinds the set so it can be read again.
	Reset()
	// Len returns the total number of rows.
	Len() int
	// Close releases the underlying resources.
	Close()
}

// Buffer is an in-memory RowSet that holds an unbounded number of rows and
// never spills to secondary storage, so it can be read repeatedly across
// fixpoint iterations before being finalized.
type Buffer struct {
	rows []Row
	pos  int
	done bool
}

var _ RowSet = (*Buffer)(nil)

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// AddRow appends a row. It must not be called after Done.
func (b *Buffer) AddRow(row Row) {
	if b.done {
		panic("plan.Buffer: AddRow after Done")
	}
	b.rows = append(b.rows, row)
}

// Done finalizes the buffer; no more rows may be added.
func (b *Buffer) Done() {
	b.done = true
	b.pos = 0
}

// Next advances to the next row.
func (b *Buffer) Next() bool {
	if b.pos >= len(b.rows) {
		return false
	}
	b.pos++
	return true
}

// Row returns the current row.
func (b *Buffer) Row() Row {
	return b.rows[b.pos-1]
}

// Reset rewinds the buffer to the first row.
func (b *Buffer) Reset() {
	b.pos = 0
}

// Len returns the number of buffered rows.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// Close drops the buffered rows.
func (b *Buffer) Close() {
	b.rows = nil
	b.pos = 0
}
