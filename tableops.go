package memtab

import (
	"iter"
	"slices"
)

// Insert appends rec at the next position and adds it to every index.
// Records shorter than the schema are padded with Null; longer ones fail
// with ErrInvalidRecord, as does a record already stored in a table. The
// table keeps rec itself, not a copy.
func (tbl *Table) Insert(rec *Record) (int, error) {
	if rec == nil {
		rec = &Record{}
	}
	if rec.owner != nil {
		return -1, tableErrf(tbl, "", -1, ErrInvalidRecord, "record already stored in table %s", rec.owner.name)
	}
	if n, m := len(rec.values), len(tbl.columns); n > m {
		return -1, tableErrf(tbl, "", -1, ErrInvalidRecord, "record has %d values, table has %d columns", n, m)
	}
	rec.padTo(len(tbl.columns))
	rec.owner = tbl

	pos := len(tbl.records)
	tbl.records = append(tbl.records, rec)
	for _, idx := range tbl.indices {
		idx.add(rec, pos)
	}

	if tbl.db.verbose {
		tbl.db.logf("memtab: INSERT %s/%d => %v", tbl.name, pos, rec)
	}
	return pos, nil
}

// InsertValues is a shorthand for Insert(NewRecord(values...)).
func (tbl *Table) InsertValues(values ...Value) (int, error) {
	return tbl.Insert(NewRecord(values...))
}

// CreateIndex builds a hash index over the named column with one pass over
// the current records. The index is named after the column.
func (tbl *Table) CreateIndex(column string) (*Index, error) {
	col, ok := tbl.ColumnNumber(column)
	if !ok {
		return nil, tableErrf(tbl, column, -1, ErrColumnNotFound, "")
	}
	if tbl.indicesByName[column] != nil {
		return nil, tableErrf(tbl, column, -1, ErrIndexAlreadyExists, "")
	}

	idx := newIndex(tbl, column, col)
	idx.fill(tbl.records)
	tbl.indices = append(tbl.indices, idx)
	tbl.indicesByName[column] = idx

	if tbl.db.verbose {
		tbl.db.logf("memtab: INDEX %s (column #%d) => %d entries, %d buckets", idx.FullName(), col, idx.entries, len(idx.buckets))
	}
	return idx, nil
}

// FindByIndex yields (position, record) for every record in the bucket of
// probe's hash, in the order they were added to the bucket. It yields
// nothing when the column has no index.
//
// Matching is by hash, not by value: a record whose value differs from
// probe but hashes the same is yielded too. After a deletion the index is
// stale until RebuildIndexes, and the yielded records may be unrelated to
// probe; positions past the end of the table are skipped.
func (tbl *Table) FindByIndex(column string, probe Value) iter.Seq2[int, *Record] {
	idx := tbl.indicesByName[column]
	if idx == nil {
		return func(yield func(int, *Record) bool) {}
	}
	if tbl.db.verbose {
		tbl.db.logf("memtab: LOOKUP %s/%#v => %d candidates", idx.FullName(), probe, len(idx.buckets[probe.Hash()]))
	}
	return idx.lookup(probe)
}

// FindEqual is FindByIndex restricted to records whose value in the
// indexed column is Equal to probe.
func (tbl *Table) FindEqual(column string, probe Value) iter.Seq2[int, *Record] {
	idx := tbl.indicesByName[column]
	if idx == nil {
		return func(yield func(int, *Record) bool) {}
	}
	return func(yield func(int, *Record) bool) {
		for pos, rec := range idx.lookup(probe) {
			if !rec.At(idx.column).Equal(probe) {
				continue
			}
			if !yield(pos, rec) {
				return
			}
		}
	}
}

// DeleteRecord removes the record at pos; later records move down by one.
// Indexes are not updated: every index of the table becomes stale and
// keeps pointing at the old positions until RebuildIndexes is called.
func (tbl *Table) DeleteRecord(pos int) error {
	if pos < 0 || pos >= len(tbl.records) {
		return tableErrf(tbl, "", pos, ErrPositionOutOfRange, "cannot delete, table has %d records", len(tbl.records))
	}
	rec := tbl.records[pos]
	tbl.records = slices.Delete(tbl.records, pos, pos+1)
	rec.owner = nil

	if tbl.db.verbose {
		tbl.db.logf("memtab: DELETE %s/%d => %v", tbl.name, pos, rec)
	}
	if len(tbl.indices) > 0 {
		for _, idx := range tbl.indices {
			idx.stale = true
		}
		tbl.db.logger.Warn("memtab: indexes are stale after delete, call RebuildIndexes",
			"table", tbl.name, "pos", pos, "indexes", len(tbl.indices))
	}
	return nil
}

// RebuildIndexes refills every index from the current records, clearing
// the stale mark left by deletions.
func (tbl *Table) RebuildIndexes() {
	for _, idx := range tbl.indices {
		idx.fill(tbl.records)
		if tbl.db.verbose {
			tbl.db.logf("memtab: REINDEX %s => %d entries, %d buckets", idx.FullName(), idx.entries, len(idx.buckets))
		}
	}
}
