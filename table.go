package memtab

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Table is a named, schema-bearing collection of records plus zero or
// more hash indexes. Records are addressed by position, which is their
// ordinal in insertion order and shifts down on deletion.
type Table struct {
	db            *Database
	name          string
	columns       []string
	records       []*Record
	indices       []*Index
	indicesByName map[string]*Index
}

func (tbl *Table) Name() string {
	return tbl.name
}

func (tbl *Table) Database() *Database {
	return tbl.db
}

// AddColumn appends a column and extends every existing record with a
// trailing Null. Duplicate names are accepted; name lookups resolve to the
// first column with that name.
func (tbl *Table) AddColumn(name string) {
	tbl.columns = append(tbl.columns, name)
	for _, rec := range tbl.records {
		rec.values = append(rec.values, Value{})
	}
	if tbl.db.verbose {
		tbl.db.logf("memtab: ADD_COLUMN %s.%s (#%d, %d rows)", tbl.name, name, len(tbl.columns)-1, len(tbl.records))
	}
}

func (tbl *Table) Columns() []string {
	return slices.Clone(tbl.columns)
}

func (tbl *Table) ColumnCount() int {
	return len(tbl.columns)
}

func (tbl *Table) ColumnNumber(name string) (int, bool) {
	i := slices.Index(tbl.columns, name)
	return i, i >= 0
}

func (tbl *Table) ColumnName(n int) (string, error) {
	if n < 0 || n >= len(tbl.columns) {
		return "", tableErrf(tbl, "", -1, ErrColumnOutOfRange, "column %d of %d", n, len(tbl.columns))
	}
	return tbl.columns[n], nil
}

// Len returns the number of records.
func (tbl *Table) Len() int {
	return len(tbl.records)
}

func (tbl *Table) Record(pos int) (*Record, error) {
	if pos < 0 || pos >= len(tbl.records) {
		return nil, tableErrf(tbl, "", pos, ErrPositionOutOfRange, "")
	}
	return tbl.records[pos], nil
}

// All iterates over records in position order. Each call starts a fresh
// pass.
func (tbl *Table) All() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		for pos := 0; pos < len(tbl.records); pos++ {
			if !yield(pos, tbl.records[pos]) {
				return
			}
		}
	}
}

// Index returns the index created on the named column, or nil.
func (tbl *Table) Index(column string) *Index {
	return tbl.indicesByName[column]
}

// Indexes returns indexes in creation order.
func (tbl *Table) Indexes() []*Index {
	return slices.Clone(tbl.indices)
}

// WriteTo renders the table as tab-separated text: a header line of column
// names, then one line per record.
func (tbl *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tbl.String())
	return int64(n), err
}

func (tbl *Table) String() string {
	var buf strings.Builder
	for _, col := range tbl.columns {
		buf.WriteString(col)
		buf.WriteByte('\t')
	}
	buf.WriteByte('\n')
	for _, rec := range tbl.records {
		for _, v := range rec.values {
			buf.WriteString(v.String())
			buf.WriteByte('\t')
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

func (tbl *Table) GoString() string {
	return fmt.Sprintf("<table %s: %d columns, %d rows, %d indexes>", tbl.name, len(tbl.columns), len(tbl.records), len(tbl.indices))
}
