package memtab

import (
	"fmt"
	"testing"
)

func TestDB(t *testing.T) {
	db := New("data_base", Options{Logf: t.Logf, Verbose: true})
	deepEqual(t, db.Name(), "data_base")

	users := db.CreateTable("users")
	users.AddColumn("id")
	users.AddColumn("email")
	must(users.CreateIndex("email"))

	hosts := db.CreateTable("hosts")
	dup := db.CreateTable("users")

	deepEqual(t, db.Tables(), []*Table{users, hosts, dup})
	if db.TableNamed("users") != users {
		t.Errorf("TableNamed(users) did not return the first table")
	}
	if db.TableNamed("nope") != nil {
		t.Errorf("TableNamed(nope) != nil")
	}
	if users.Database() != db {
		t.Errorf("users.Database() != db")
	}

	must(users.InsertValues(Int64(1), String("foo@example.com")))
	must(users.InsertValues(Int64(2), String("bar@example.com")))

	var found []string
	for _, rec := range users.FindEqual("email", String("bar@example.com")) {
		found = append(found, rec.String())
	}
	deepEqual(t, found, []string{"2\tbar@example.com"})

	var names []string
	for tbl := range db.AllTables() {
		names = append(names, tbl.Name())
	}
	deepEqual(t, names, []string{"users", "hosts", "users"})
}

func TestDB_InitialCapacity(t *testing.T) {
	db := New("d", Options{InitialCapacity: 64})
	tbl := db.CreateTable("t")
	deepEqual(t, cap(tbl.records), 64)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on negative InitialCapacity")
		}
	}()
	New("d", Options{InitialCapacity: -1})
}

// Mirrors the shape of the bulk insert + point lookup benchmark.
func TestDB_BulkInsertAndLookup(t *testing.T) {
	db := New("data_base", Options{InitialCapacity: 1000})
	tbl := db.CreateTable("test_table")
	tbl.AddColumn("id")
	tbl.AddColumn("host")
	tbl.AddColumn("ip")
	tbl.AddColumn("num")
	must(tbl.CreateIndex("id"))
	must(tbl.CreateIndex("num"))

	for i := range 1000 {
		must(tbl.InsertValues(Int64(int64(i)), String("myhost"), String("192.168.1.1"), Int32(int32(i*7919%1000))))
	}

	for _, probe := range []int{0, 1, 499, 999} {
		var hits []int
		for pos, rec := range tbl.FindEqual("id", Int64(int64(probe))) {
			hits = append(hits, pos)
			deepEqual(t, rec.At(0).String(), fmt.Sprint(probe))
		}
		deepEqual(t, hits, []int{probe})
	}

	var n int
	for _, rec := range tbl.FindEqual("num", Int32(919)) {
		deepEqual(t, rec.At(3).String(), "919")
		n++
	}
	deepEqual(t, n, 1)

	s := tbl.Stats()
	deepEqual(t, s.Rows, 1000)
	deepEqual(t, s.IndexEntries, 2000)
}

func BenchmarkInsert(b *testing.B) {
	db := New("bench", Options{})
	tbl := db.CreateTable("t")
	tbl.AddColumn("id")
	tbl.AddColumn("host")
	must(tbl.CreateIndex("id"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		must(tbl.InsertValues(Int64(int64(i)), String("myhost")))
	}
}

func BenchmarkFindByIndex(b *testing.B) {
	db := New("bench", Options{})
	tbl := db.CreateTable("t")
	tbl.AddColumn("id")
	must(tbl.CreateIndex("id"))
	for i := range 100000 {
		must(tbl.InsertValues(Int64(int64(i))))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range tbl.FindByIndex("id", Int64(int64(i%100000))) {
		}
	}
}
