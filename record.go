package memtab

import (
	"iter"
	"slices"
	"strings"
)

// Record is an ordered tuple of values, one per table column. Tables hold
// records by pointer, and index lookups yield the very pointer the table
// stores.
type Record struct {
	values []Value
	owner  *Table
}

// NewRecord builds a record from values. The record takes ownership of
// the values' buffers.
func NewRecord(values ...Value) *Record {
	return &Record{values: slices.Clone(values)}
}

func (r *Record) Len() int {
	return len(r.values)
}

// At returns the value in slot i, or Null when i is out of range.
func (r *Record) At(i int) Value {
	if i < 0 || i >= len(r.values) {
		return Value{}
	}
	return r.values[i]
}

// Values returns a copy of the slot slice; buffers are shared.
func (r *Record) Values() []Value {
	return slices.Clone(r.values)
}

func (r *Record) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range r.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy that shares nothing with r and belongs to no
// table.
func (r *Record) Clone() *Record {
	out := &Record{values: make([]Value, len(r.values))}
	for i, v := range r.values {
		out.values[i] = v.Clone()
	}
	return out
}

func (r *Record) Equal(o *Record) bool {
	return slices.EqualFunc(r.values, o.values, Value.Equal)
}

// String renders the record as tab-separated values.
func (r *Record) String() string {
	var buf strings.Builder
	r.appendText(&buf)
	return buf.String()
}

func (r *Record) appendText(buf *strings.Builder) {
	for i, v := range r.values {
		if i > 0 {
			buf.WriteByte('\t')
		}
		buf.WriteString(v.String())
	}
}

func (r *Record) padTo(n int) {
	for len(r.values) < n {
		r.values = append(r.values, Value{})
	}
}

// Table returns the table the record is stored in, or nil.
func (r *Record) Table() *Table {
	return r.owner
}
