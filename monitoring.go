package memtab

import (
	"github.com/cespare/xxhash/v2"
)

type TableStats struct {
	Rows    int
	Columns int
	Indexes int

	// DataSize is the sum of Value.Size over all slots.
	DataSize     int
	IndexBuckets int
	IndexEntries int
	StaleIndexes int
}

func (tbl *Table) Stats() TableStats {
	s := TableStats{
		Rows:    len(tbl.records),
		Columns: len(tbl.columns),
		Indexes: len(tbl.indices),
	}
	for _, rec := range tbl.records {
		for _, v := range rec.values {
			s.DataSize += v.Size()
		}
	}
	for _, idx := range tbl.indices {
		s.IndexBuckets += len(idx.buckets)
		s.IndexEntries += idx.entries
		if idx.stale {
			s.StaleIndexes++
		}
	}
	return s
}

// Digest fingerprints the table's column names and record contents in
// position order. Two tables with equal digests almost certainly hold the
// same data; indexes do not contribute.
func (tbl *Table) Digest() uint64 {
	d := xxhash.New()
	for _, col := range tbl.columns {
		d.WriteString(col)
		d.Write([]byte{0})
	}
	buf := recordBytesPool.Get().([]byte)
	defer func() { releaseRecordBytes(buf) }()
	for _, rec := range tbl.records {
		buf = EncodeRecord(buf[:0], rec)
		d.Write(buf)
	}
	return d.Sum64()
}
