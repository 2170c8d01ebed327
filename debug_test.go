package memtab

import (
	"strings"
	"testing"
)

func TestTableStatsAndDigest(t *testing.T) {
	tbl := setup(t, "id", "name")
	must(tbl.InsertValues(Int64(1), String("foo")))
	must(tbl.InsertValues(Int64(2), String("bar")))
	must(tbl.CreateIndex("name"))

	s := tbl.Stats()
	deepEqual(t, s, TableStats{
		Rows:         2,
		Columns:      2,
		Indexes:      1,
		DataSize:     8 + 4 + 8 + 4,
		IndexBuckets: 2,
		IndexEntries: 2,
	})

	d1 := tbl.Digest()
	if d1 != tbl.Digest() {
		t.Errorf("Digest is not stable")
	}

	other := setup(t, "id", "name")
	must(other.InsertValues(Int64(1), String("foo")))
	must(other.InsertValues(Int64(2), String("bar")))
	if other.Digest() != d1 {
		t.Errorf("equal tables have different digests")
	}

	must(other.InsertValues(Int64(3)))
	if other.Digest() == d1 {
		t.Errorf("Digest did not change after insert")
	}

	renamed := setup(t, "id", "title")
	must(renamed.InsertValues(Int64(1), String("foo")))
	must(renamed.InsertValues(Int64(2), String("bar")))
	if renamed.Digest() == d1 {
		t.Errorf("Digest ignores column names")
	}
}

func TestDumpFlagsAndDump(t *testing.T) {
	if !DumpTableHeaders.Contains(DumpTableHeaders) || DumpTableHeaders.Contains(DumpRows) {
		t.Fatalf("DumpFlags.Contains returned unexpected results")
	}

	db := New("data_base", Options{})
	tbl := db.CreateTable("Users")
	tbl.AddColumn("id")
	tbl.AddColumn("email")
	must(tbl.InsertValues(Int64(1), String("foo@example.com")))
	must(tbl.CreateIndex("email"))

	out := db.Dump(DumpAll)
	for _, want := range []string{
		"data_base.Users (1 rows) [id, email]",
		"data_base.Users.0 = 1\tfoo@example.com",
		"data_base.Users.i.email (column #1, 1 buckets)",
		"index_entries = 1",
		"=> [0]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output missing %q; got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "STALE") {
		t.Errorf("fresh index dumped as stale:\n%s", out)
	}

	must(tbl.InsertValues(Int64(2)))
	if err := tbl.DeleteRecord(0); err != nil {
		t.Fatal(err)
	}
	out = tbl.Dump(DumpIndices)
	if !strings.Contains(out, "Users.i.email (column #1, 2 buckets) STALE") {
		t.Errorf("Dump(DumpIndices) after delete = %q, wanted STALE marker", out)
	}
	if strings.Contains(out, "foo@example.com") {
		t.Errorf("Dump(DumpIndices) includes rows:\n%s", out)
	}
}
