package memtab

import (
	"fmt"
	"slices"
	"strings"
)

type DumpFlags uint64

const (
	DumpTableHeaders = DumpFlags(1 << iota)
	DumpRows
	DumpStats
	DumpIndices
	DumpIndexRows

	DumpAll = DumpFlags(0xFFFFFFFFFFFFFFFF)
)

var (
	dumpSep1 = strings.Repeat("=", 80)
	dumpSep2 = strings.Repeat("-", 60)
)

func (f DumpFlags) Contains(v DumpFlags) bool {
	return (f & v) == v
}

func (db *Database) Dump(f DumpFlags) string {
	var buf strings.Builder
	for _, tbl := range db.tables {
		dumpTable(&buf, db.name+".", f, tbl)
	}
	return buf.String()
}

func (tbl *Table) Dump(f DumpFlags) string {
	var buf strings.Builder
	dumpTable(&buf, "", f, tbl)
	return buf.String()
}

func dumpTable(w *strings.Builder, prefix string, f DumpFlags, tbl *Table) {
	prefix = prefix + tbl.Name()
	s := tbl.Stats()

	if f.Contains(DumpTableHeaders) {
		fmt.Fprintln(w, dumpSep1)
		fmt.Fprintf(w, "%s (%d rows) [%s]\n", prefix, s.Rows, strings.Join(tbl.columns, ", "))
	}
	if f.Contains(DumpStats) {
		fmt.Fprintf(w, "%s.stats: columns = %d, data_size = %d, indexes = %d, index_buckets = %d, index_entries = %d, stale_indexes = %d, digest = %016x\n", prefix, s.Columns, s.DataSize, s.Indexes, s.IndexBuckets, s.IndexEntries, s.StaleIndexes, tbl.Digest())
	}

	if f.Contains(DumpRows) {
		if f.Contains(DumpStats) {
			fmt.Fprintln(w, dumpSep2)
		}
		for pos, rec := range tbl.All() {
			fmt.Fprintf(w, "%s.%d = ", prefix, pos)
			rec.appendText(w)
			w.WriteByte('\n')
		}
	}

	if f.Contains(DumpIndices) {
		for _, idx := range tbl.indices {
			dumpIndex(w, prefix, f, idx)
		}
	}
}

func dumpIndex(w *strings.Builder, prefix string, f DumpFlags, idx *Index) {
	fmt.Fprintln(w, dumpSep2)
	prefix = prefix + ".i." + idx.ShortName()

	fmt.Fprintf(w, "%s (column #%d, %d buckets)%s\n", prefix, idx.column, len(idx.buckets), map[bool]string{false: "", true: " STALE"}[idx.stale])

	if f.Contains(DumpIndexRows) {
		hashes := make([]uint64, 0, len(idx.buckets))
		for h := range idx.buckets {
			hashes = append(hashes, h)
		}
		slices.Sort(hashes)
		for _, h := range hashes {
			fmt.Fprintf(w, "%s.%016x => %v\n", prefix, h, idx.buckets[h])
		}
	}
}
