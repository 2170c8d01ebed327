package memtab

import (
	"iter"
	"slices"
)

// Index groups record positions of one table column by the hash of the
// value in that column. It never compares the values themselves: two
// different values with equal hashes share a bucket, and lookups through
// the index return both. Use Table.FindEqual to filter those out.
//
// Positions are assigned in insertion order and shift down when a record
// is deleted. The index is not updated on delete; see Stale.
type Index struct {
	table   *Table
	name    string
	column  int
	buckets map[uint64][]int
	entries int
	stale   bool
}

func newIndex(tbl *Table, name string, column int) *Index {
	return &Index{
		table:   tbl,
		name:    name,
		column:  column,
		buckets: make(map[uint64][]int),
	}
}

func (idx *Index) Table() *Table {
	return idx.table
}

func (idx *Index) ShortName() string {
	return idx.name
}

func (idx *Index) FullName() string {
	return idx.table.name + "." + idx.name
}

// Column returns the column number the index was bound to at creation.
func (idx *Index) Column() int {
	return idx.column
}

// Stale reports whether a record was deleted since the index was last
// built. A stale index may yield the wrong records or miss some; call
// Table.RebuildIndexes to fix it.
func (idx *Index) Stale() bool {
	return idx.stale
}

func (idx *Index) BucketCount() int {
	return len(idx.buckets)
}

func (idx *Index) EntryCount() int {
	return idx.entries
}

// Positions returns a copy of the bucket for the given hash, in insertion
// order.
func (idx *Index) Positions(hash uint64) []int {
	return slices.Clone(idx.buckets[hash])
}

// Buckets iterates over all buckets in unspecified order.
func (idx *Index) Buckets() iter.Seq2[uint64, []int] {
	return func(yield func(uint64, []int) bool) {
		for h, positions := range idx.buckets {
			if !yield(h, slices.Clone(positions)) {
				return
			}
		}
	}
}

func (idx *Index) add(rec *Record, pos int) {
	h := rec.At(idx.column).Hash()
	idx.buckets[h] = append(idx.buckets[h], pos)
	idx.entries++
}

func (idx *Index) fill(records []*Record) {
	clear(idx.buckets)
	idx.entries = 0
	for pos, rec := range records {
		idx.add(rec, pos)
	}
	idx.stale = false
}

// lookup yields the positions in the bucket of probe's hash that still
// refer to a record.
func (idx *Index) lookup(probe Value) iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		bucket := idx.buckets[probe.Hash()]
		for _, pos := range bucket {
			if pos >= len(idx.table.records) {
				continue
			}
			if !yield(pos, idx.table.records[pos]) {
				return
			}
		}
	}
}
